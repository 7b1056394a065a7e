/*
Package csv reads and writes dataset.Set records as comma separated values.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
)

/*
Writer is an interface for a destination to which records
can be written.
*/
type Writer interface {
	// Write will attempt to write the given records
	// and will return the actually written number of
	// records and an error (if not all records could
	// be written)
	Write([]dataset.Record) (int, error)
	// Count returns the total number of records written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and a feature.Metadata and returns
the features for the columns in the CSV header along with the set of records
parsed from the rest of the rows, or an error.

The header or first row of the CSV content is expected to consist of the names
of the columns, the last of them being the label. Every field is parsed with
the feature for its column, so columns not declared on the metadata (which
may be nil) are inferred field by field: numbers become float64 values and
anything else is kept as a string.
*/
func ReadSet(reader io.Reader, md feature.Metadata) ([]feature.Feature, dataset.Set, error) {
	var s dataset.Set
	features, err := ReadSetByRecord(reader, md, func(_ int, r dataset.Record) (bool, error) {
		s = append(s, r)
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return features, s, nil
}

/*
ReadSetByRecord takes an io.Reader for a CSV stream, a feature.Metadata and a
lambda function on an integer and a dataset.Record that returns a boolean value.
It parses the records from the reader and for each it calls the lambda function
with the record and its index as parameters. If the lambda function returns true,
it will continue processing the next record, otherwise it will stop. It returns
the features for the columns in the header and an error if something goes wrong
when reading the stream or parsing a record.
*/
func ReadSetByRecord(reader io.Reader, md feature.Metadata, lambda func(int, dataset.Record) (bool, error)) ([]feature.Feature, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("parsing header: expected at least a feature and a label column, got %d columns", len(header))
	}
	features := md.Features(header)
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		record, err := parseRecordFromCSVRow(row, features)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, record)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return features, nil
}

/*
ReadSetFromFilePath takes a filepath string and a feature.Metadata,
opens the file to which the filepath points to and uses ReadSet to return
the features and records read from it, or an error. If the filepath is ""
os.Stdin is read instead.
*/
func ReadSetFromFilePath(filepath string, md feature.Metadata) ([]feature.Feature, dataset.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading set: %v", err)
		}
		defer f.Close()
	}
	features, s, err := ReadSet(f, md)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return features, s, err
}

/*
NewWriter takes an io.Writer and a slice of feature.Features and
returns a Writer that will write records on the io.Writer, after
a header with the names of the features.
*/
func NewWriter(writer io.Writer, features []feature.Feature) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, len(features))
	for i, f := range features {
		record[i] = f.Name()
	}
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{w: w}, nil
}

/*
WriteSet takes a writer, a dataset.Set and a slice of features and
dumps to the writer the set in CSV format. It returns an error if something
went wrong when writing to the writer.
*/
func WriteSet(writer io.Writer, s dataset.Set, features []feature.Feature) error {
	cw, err := NewWriter(writer, features)
	if err != nil {
		return err
	}
	_, err = cw.Write(s)
	if err != nil {
		return err
	}
	return cw.Flush()
}

func parseRecordFromCSVRow(row []string, features []feature.Feature) (dataset.Record, error) {
	record := make(dataset.Record, len(features))
	for i, f := range features {
		value, err := f.Parse(row[i])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for feature %s: %v", row[i], f.Name(), err)
		}
		record[i] = value
	}
	return record, nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(records []dataset.Record) (int, error) {
	for n, r := range records {
		err := cw.writeRecord(r)
		if err != nil {
			return n, err
		}
	}
	return len(records), nil
}

func (cw *csvWriter) writeRecord(r dataset.Record) error {
	row := make([]string, len(r))
	for j, v := range r {
		if f, ok := v.(float64); ok {
			row[j] = strconv.FormatFloat(f, 'g', -1, 64)
		} else {
			row[j] = fmt.Sprintf("%v", v)
		}
	}
	err := cw.w.Write(row)
	if err != nil {
		return fmt.Errorf("writing CSV row for record %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
