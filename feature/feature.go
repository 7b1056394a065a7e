package feature

import (
	"fmt"
	"strconv"
	"strings"
)

/*
Feature represents a column of a record that can be observed and used to
split a set of records.

Its Name method returns the name of the column, its Index method returns the
position of the column on a record and its Parse method takes the raw text of
a field and returns the value to use for it on a record (a float64 or a
string) or an error.
*/
type Feature interface {
	Name() string
	Index() int
	Parse(string) (interface{}, error)
}

/*
DiscreteFeature represents a column whose values are always taken as text.
When available values are given, only those are accepted.
*/
type DiscreteFeature struct {
	name            string
	index           int
	availableValues []string
}

/*
ContinuousFeature represents a column whose values must be numeric.
*/
type ContinuousFeature struct {
	name  string
	index int
}

/*
InferredFeature represents a column for which no type has been declared: each
field is taken as a number if it can be parsed as one, and as text otherwise.
*/
type InferredFeature struct {
	name  string
	index int
}

/*
NewDiscreteFeature takes a name string, a column index and a slice of
available value strings and returns a discrete feature with them. A nil or
empty slice of available values accepts any value.
*/
func NewDiscreteFeature(name string, index int, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, index, availableValues}
}

/*
NewContinuousFeature takes a name string and a column index and returns a
continuous feature with them.
*/
func NewContinuousFeature(name string, index int) *ContinuousFeature {
	return &ContinuousFeature{name, index}
}

/*
NewInferredFeature takes a name string and a column index and returns a
feature whose values are parsed with ParseValue.
*/
func NewInferredFeature(name string, index int) *InferredFeature {
	return &InferredFeature{name, index}
}

/*
Columns takes a number of columns and returns a slice of inferred features
named after their index, for records that come without a header.
*/
func Columns(n int) []Feature {
	features := make([]Feature, n)
	for i := range features {
		features[i] = NewInferredFeature(strconv.Itoa(i), i)
	}
	return features
}

/*
ParseValue takes the raw text of a field and returns it as a float64 if it
can be parsed as a number, or as the trimmed string otherwise.
*/
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Name returns a string with the name of the feature
func (df *DiscreteFeature) Name() string {
	return df.name
}

// Index returns the position of the feature on a record
func (df *DiscreteFeature) Index() int {
	return df.index
}

/*
Parse takes the raw text of a field and returns it trimmed as a string. If the
feature has available values and the text is not among them, an error is
returned.
*/
func (df *DiscreteFeature) Parse(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if len(df.availableValues) == 0 {
		return s, nil
	}
	for _, av := range df.availableValues {
		if av == s {
			return s, nil
		}
	}
	return nil, fmt.Errorf("discrete feature %s got unknown value %s", df.name, s)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}

// Name returns a string with the name of the feature
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

// Index returns the position of the feature on a record
func (cf *ContinuousFeature) Index() int {
	return cf.index
}

/*
Parse takes the raw text of a field and returns it as a float64, or an error
if it cannot be parsed as a number.
*/
func (cf *ContinuousFeature) Parse(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("continuous feature %s expects a number, got %q", cf.name, s)
	}
	return f, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

// Name returns a string with the name of the feature
func (inf *InferredFeature) Name() string {
	return inf.name
}

// Index returns the position of the feature on a record
func (inf *InferredFeature) Index() int {
	return inf.index
}

// Parse uses ParseValue on the given text, it never fails.
func (inf *InferredFeature) Parse(s string) (interface{}, error) {
	return ParseValue(s), nil
}

func (inf *InferredFeature) String() string {
	return inf.name
}
