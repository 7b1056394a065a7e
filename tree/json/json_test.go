package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
	"github.com/pbanos/arbor/tree/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(features []feature.Feature) *tree.Node {
	return tree.NewInternal(
		feature.NewCriterion(features[0], 1.5),
		tree.New("A", map[string]int{"A": 3}),
		tree.NewInternal(
			feature.NewCriterion(features[1], "blue"),
			tree.New("B", map[string]int{"B": 2}),
			tree.New("C", map[string]int{"C": 1, "B": 1}),
			"B",
			map[string]int{"B": 3, "C": 1},
		),
		"A",
		map[string]int{"A": 3, "B": 3, "C": 1},
	)
}

func TestNodeEncodeDecoder(t *testing.T) {
	features := feature.Columns(3)
	ned := json.NewNodeEncodeDecoder(features)
	n := sampleTree(features)
	data, err := ned.Encode(n)
	require.NoError(t, err)

	decoded, err := ned.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, tree.Render(n, nil), tree.Render(decoded, nil))
	assert.Equal(t, 1, decoded.False.False.Error)
	assert.Same(t, features[1], decoded.False.Criterion.Feature())
	_, ok := decoded.Criterion.(feature.ContinuousCriterion)
	assert.True(t, ok)
}

func TestNodeEncodeDecoderRejectsInvalidTrees(t *testing.T) {
	ned := json.NewNodeEncodeDecoder(nil)
	_, err := ned.Decode([]byte(`{"c":{"t":"continuous","f":0,"n":"x","th":1},"t":{"r":"A"},"r":"A"}`))
	assert.Equal(t, tree.ErrSingleBranch, err)

	_, err = ned.Decode([]byte(`{"t":{"r":"A"},"f":{"r":"B"},"r":"A"}`))
	assert.Equal(t, tree.ErrMissingCriterion, err)

	_, err = ned.Decode([]byte(`{"c":{"t":"interval","f":0,"n":"x"},"t":{"r":"A"},"f":{"r":"B"},"r":"A"}`))
	assert.Error(t, err)

	_, err = ned.Decode([]byte(`[`))
	assert.Error(t, err)
}

func TestWriteAndReadJSONTree(t *testing.T) {
	features := []feature.Feature{
		feature.NewContinuousFeature("size", 0),
		feature.NewDiscreteFeature("colour", 1, []string{"red", "blue"}),
		feature.NewDiscreteFeature("label", 2, nil),
	}
	n := sampleTree(features)
	b := &bytes.Buffer{}
	require.NoError(t, json.WriteJSONTree(n, features, b))
	assert.Contains(t, b.String(), `"columns":["size","colour","label"]`)

	md := feature.Metadata{"colour": {Values: []string{"red", "blue"}}}
	read, readFeatures, err := json.ReadJSONTree(b, md)
	require.NoError(t, err)
	require.Len(t, readFeatures, 3)
	assert.Equal(t, "size", readFeatures[0].Name())
	assert.IsType(t, &feature.DiscreteFeature{}, readFeatures[1])
	assert.Equal(t, tree.Render(n, feature.Names(features)), tree.Render(read, feature.Names(readFeatures)))
	assert.Equal(t, "colour", read.False.Criterion.Feature().Name())
}

func TestWriteJSONTreeNil(t *testing.T) {
	assert.Equal(t, tree.ErrNilTree, json.WriteJSONTree(nil, nil, &bytes.Buffer{}))
}

func TestReadJSONTreeWithoutRoot(t *testing.T) {
	_, _, err := json.ReadJSONTree(strings.NewReader(`{"columns":["x","y"]}`), nil)
	assert.Error(t, err)
}
