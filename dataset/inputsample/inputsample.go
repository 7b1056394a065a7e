/*
Package inputsample provides records whose feature values are read from an
io.Reader as they are needed, such as when a user answers the questions of
a tree on a terminal.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/arbor/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(f feature.Feature, value string, reason error) error
}

/*
Sample represents a record whose feature values are read from a reader.
A feature value will be requested using a FeatureValueRequester before
reading it, and is only read once.
*/
type Sample struct {
	obtainedValues        map[int]interface{}
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
}

/*
New takes an io.Reader and a FeatureValueRequester and returns a Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines will be read from the
reader until one is accepted by the Parse method of the feature.
Lines that are not accepted will be rejected with the
FeatureValueRequester's RejectValueFor method.
*/
func New(r io.Reader, featureValueRequester FeatureValueRequester) *Sample {
	return &Sample{make(map[int]interface{}), bufio.NewScanner(r), featureValueRequester}
}

/*
ValueFor takes a feature and returns the value of the sample for it, reading
it if it had not been read yet. An error is returned if the requester fails
or the reader is exhausted before an accepted value is read.
*/
func (s *Sample) ValueFor(f feature.Feature) (interface{}, error) {
	value, ok := s.obtainedValues[f.Index()]
	if ok {
		return value, nil
	}
	err := s.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return nil, err
	}
	for s.scanner.Scan() {
		line := s.scanner.Text()
		value, perr := f.Parse(line)
		if perr == nil {
			s.obtainedValues[f.Index()] = value
			return value, nil
		}
		err = s.featureValueRequester.RejectValueFor(f, line, perr)
		if err != nil {
			return nil, err
		}
	}
	err = s.scanner.Err()
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("EOF when requesting value for %s", f.Name())
}
