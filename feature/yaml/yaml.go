/*
Package yaml provides methods to parse feature.Metadata
declarations from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/arbor/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with feature declarations in YML and
returns the feature.Metadata parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each column with its name and either a
string value of 'continuous' for numeric columns or a list of valid values
for discrete columns. An empty list declares a discrete column that takes any
value. Columns not mentioned are inferred.
*/
func ReadMetadata(md []byte) (feature.Metadata, error) {
	metadata := struct {
		Features map[string]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	result := make(feature.Metadata, len(metadata.Features))
	for fn, vs := range metadata.Features {
		switch values := vs.(type) {
		case string:
			if values != "continuous" {
				return nil, fmt.Errorf("invalid declaration %q for feature %s", values, fn)
			}
			result[fn] = feature.Declaration{Continuous: true}
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			result[fn] = feature.Declaration{Values: stringVs}
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T", vs)
		}
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (feature.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return metadata, err
}
