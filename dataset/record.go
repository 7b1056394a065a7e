package dataset

import (
	"fmt"
)

/*
Record represents a row of tabular data. Every field holds a float64 or a
string; the last field is the class label and the preceding ones are
features.
*/
type Record []interface{}

/*
Label returns the class label of the record formatted as a string.
*/
func (r Record) Label() string {
	return fmt.Sprintf("%v", r[len(r)-1])
}

/*
ValueAt takes a column index and returns the value of the record for it.
*/
func (r Record) ValueAt(i int) interface{} {
	return r[i]
}

func (r Record) String() string {
	return fmt.Sprintf("%v", []interface{}(r))
}
