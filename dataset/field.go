package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pbanos/arbor/feature"
)

/*
FieldValue takes a feature and a raw value as returned by a database driver
and returns the value to use for it on a record or an error.

Numbers are kept as float64 unless the feature is discrete, in which case
they are formatted as text and parsed by the feature like any other text.
Missing (nil) values are not supported.
*/
func FieldValue(f feature.Feature, v interface{}) (interface{}, error) {
	var text string
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("missing value for feature %s", f.Name())
	case int:
		return numericFieldValue(f, float64(v), strconv.Itoa(v))
	case int32:
		return numericFieldValue(f, float64(v), strconv.FormatInt(int64(v), 10))
	case int64:
		return numericFieldValue(f, float64(v), strconv.FormatInt(v, 10))
	case float64:
		return numericFieldValue(f, v, strconv.FormatFloat(v, 'g', -1, 64))
	case []byte:
		text = string(v)
	case string:
		text = v
	case bool:
		text = strconv.FormatBool(v)
	case time.Time:
		text = v.Format(time.RFC3339)
	default:
		return nil, fmt.Errorf("unsupported %T value for feature %s", v, f.Name())
	}
	return f.Parse(text)
}

func numericFieldValue(f feature.Feature, v float64, text string) (interface{}, error) {
	if _, ok := f.(*feature.DiscreteFeature); ok {
		return f.Parse(text)
	}
	return v, nil
}
