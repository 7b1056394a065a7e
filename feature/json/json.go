package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/arbor/feature"
)

/*
CriteriaEncodeDecoder is an interface for objects
that allow encoding criteria into slices of
bytes and decoding them back to criteria.
*/
type CriteriaEncodeDecoder interface {

	//Encode receives a feature.Criterion
	// and returns a slice of bytes with the criterion
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(feature.Criterion) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a feature.Criterion decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (feature.Criterion, error)
}

type jsonCriteriaEncodeDecoder []feature.Feature

type jsonCriterion struct {
	Type      string   `json:"t"`
	Feature   int      `json:"f"`
	Name      string   `json:"n"`
	Threshold *float64 `json:"th,omitempty"`
	Value     *string  `json:"v,omitempty"`
}

// NewCriteriaEncodeDecoder takes a slice of feature.Feature and returns a
// CriteriaEncodeDecoder that marshals and unmarshals
// criteria into/from slices of bytes as JSON.
// Specifically, criteria are encoded as a JSON object
// with an "f" property set to the column index of the feature,
// an "n" property with its name and a "t" property that can be
// either "continuous" or "discrete":
//  * If the criterion is continuous it will have a "th"
//  property with its threshold
//  * If the criterion is discrete it will have a "v"
//  property with the value to match
// When decoding, the feature at the encoded index in the given
// slice is used. If there is none, an inferred feature with the
// encoded name and index is built instead.
func NewCriteriaEncodeDecoder(features []feature.Feature) CriteriaEncodeDecoder {
	return jsonCriteriaEncodeDecoder(features)
}

func (jced jsonCriteriaEncodeDecoder) Encode(fc feature.Criterion) ([]byte, error) {
	switch c := fc.(type) {
	case feature.ContinuousCriterion:
		th := c.Threshold()
		return json.Marshal(&jsonCriterion{
			Type:      "continuous",
			Feature:   c.Feature().Index(),
			Name:      c.Feature().Name(),
			Threshold: &th,
		})
	case feature.DiscreteCriterion:
		v := fmt.Sprintf("%v", c.Value())
		return json.Marshal(&jsonCriterion{
			Type:    "discrete",
			Feature: c.Feature().Index(),
			Name:    c.Feature().Name(),
			Value:   &v,
		})
	default:
		return nil, fmt.Errorf("unknown type of feature.Criterion %T", fc)
	}
}

func (jced jsonCriteriaEncodeDecoder) Decode(data []byte) (feature.Criterion, error) {
	jc := &jsonCriterion{}
	err := json.Unmarshal(data, jc)
	if err != nil {
		return nil, err
	}
	return jc.Criterion(jced)
}

func (jc *jsonCriterion) Criterion(features []feature.Feature) (feature.Criterion, error) {
	if jc.Feature < 0 {
		return nil, fmt.Errorf("invalid feature index %d", jc.Feature)
	}
	var f feature.Feature
	if jc.Feature < len(features) {
		f = features[jc.Feature]
	} else {
		f = feature.NewInferredFeature(jc.Name, jc.Feature)
	}
	switch jc.Type {
	case "continuous":
		if jc.Threshold == nil {
			return nil, fmt.Errorf("continuous criterion on feature %s has no threshold", jc.Name)
		}
		return feature.NewContinuousCriterion(f, *jc.Threshold), nil
	case "discrete":
		if jc.Value == nil {
			return nil, fmt.Errorf("discrete criterion on feature %s has no value", jc.Name)
		}
		return feature.NewDiscreteCriterion(f, *jc.Value), nil
	}
	return nil, fmt.Errorf("unknown feature criterion type '%s'", jc.Type)
}
