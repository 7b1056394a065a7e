package feature

/*
Declaration describes the type of a column: continuous columns only take
numbers, discrete ones take text, optionally restricted to a set of values.
*/
type Declaration struct {
	Continuous bool
	Values     []string
}

/*
Metadata maps column names to their declarations.
*/
type Metadata map[string]Declaration

/*
Features takes the header of a record source and returns the features for
its columns: a declared column becomes a ContinuousFeature or a
DiscreteFeature, any other column an InferredFeature. A nil Metadata infers
every column.
*/
func (md Metadata) Features(header []string) []Feature {
	features := make([]Feature, len(header))
	for i, name := range header {
		d, ok := md[name]
		switch {
		case !ok:
			features[i] = NewInferredFeature(name, i)
		case d.Continuous:
			features[i] = NewContinuousFeature(name, i)
		default:
			features[i] = NewDiscreteFeature(name, i, d.Values)
		}
	}
	return features
}

/*
Names takes a slice of features and returns a map from column index to
feature name, as used to render trees.
*/
func Names(features []Feature) map[int]string {
	names := make(map[int]string, len(features))
	for _, f := range features {
		names[f.Index()] = f.Name()
	}
	return names
}
