package arbor_test

import (
	"fmt"
	"testing"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger []string

func (rl *recordingLogger) Logf(format string, a ...interface{}) {
	*rl = append(*rl, fmt.Sprintf(format, a...))
}

func TestGrowSplitsOnBestThreshold(t *testing.T) {
	for _, m := range []arbor.Metric{arbor.Entropy, arbor.Gini} {
		t.Run(m.String(), func(t *testing.T) {
			n := arbor.Grow(mixedSet(), m)
			require.NoError(t, tree.Validate(n))
			require.False(t, n.IsLeaf())
			assert.Equal(t, 0, n.Feature())
			assert.Equal(t, 1.0, n.Value())
			assert.Equal(t, "A", n.Result)
			assert.Equal(t, map[string]int{"A": 3, "B": 3}, n.Results)
			assert.Equal(t, 3, n.Error)

			require.True(t, n.True.IsLeaf())
			assert.Equal(t, "A", n.True.Result)
			assert.Equal(t, map[string]int{"A": 2, "B": 1}, n.True.Results)
			assert.Equal(t, 1, n.True.Error)

			require.True(t, n.False.IsLeaf())
			assert.Equal(t, "B", n.False.Result)
			assert.Equal(t, map[string]int{"A": 1, "B": 2}, n.False.Results)
			assert.Equal(t, 1, n.False.Error)
			assert.Equal(t, 2, tree.CountLeaves(n))
		})
	}
}

func TestGrowFitsTrainingSet(t *testing.T) {
	s := noisySet(3, 120)
	n := arbor.Grow(s, arbor.Entropy)
	require.NoError(t, tree.Validate(n))
	errCount := tree.Evaluate(n.Clone(), s)
	var leafErrors int
	for _, l := range tree.Leaves(n) {
		leafErrors += l.Error
		assert.NotZero(t, l.Total(), "leaves are grown from non-empty sets")
	}
	assert.Equal(t, leafErrors, errCount)
	assert.LessOrEqual(t, errCount, n.Error)
}

func TestGrowEmptySet(t *testing.T) {
	n := arbor.Grow(nil, arbor.Gini)
	require.True(t, n.IsLeaf())
	assert.Equal(t, "", n.Result)
	assert.Empty(t, n.Results)
	assert.Equal(t, 0, n.Error)
}

func TestGrowSingleRecord(t *testing.T) {
	n := arbor.Grow(set(dataset.Record{2.5, "red", "yes"}), arbor.Entropy)
	require.True(t, n.IsLeaf())
	assert.Equal(t, "yes", n.Result)
	assert.Equal(t, map[string]int{"yes": 1}, n.Results)
}

func TestGrowConstantFeature(t *testing.T) {
	n := arbor.Grow(set(
		dataset.Record{1.0, "A"},
		dataset.Record{1.0, "B"},
		dataset.Record{1.0, "B"},
	), arbor.Entropy)
	require.True(t, n.IsLeaf())
	assert.Equal(t, "B", n.Result)
	assert.Equal(t, 1, n.Error)
}

func TestGrowLabelIndependentFeature(t *testing.T) {
	n := arbor.Grow(set(
		dataset.Record{1.0, "A"},
		dataset.Record{0.0, "A"},
		dataset.Record{1.0, "B"},
		dataset.Record{0.0, "B"},
	), arbor.Gini)
	require.True(t, n.IsLeaf(), "splits without positive gain are not taken")
	assert.Equal(t, "A", n.Result, "ties go to the label seen first")
	assert.Equal(t, 2, n.Error)
}

func TestGrowCategoricalFeature(t *testing.T) {
	n := arbor.Grow(set(
		dataset.Record{"red", "yes"},
		dataset.Record{"blue", "no"},
		dataset.Record{"red", "yes"},
		dataset.Record{"green", "no"},
	), arbor.Entropy)
	require.False(t, n.IsLeaf())
	_, ok := n.Criterion.(feature.DiscreteCriterion)
	require.True(t, ok)
	assert.Equal(t, "red", n.Value())
	assert.Equal(t, map[string]int{"yes": 2}, n.True.Results)
	assert.Equal(t, map[string]int{"no": 2}, n.False.Results)
}

func TestGrowKeepsFirstOfEqualSplits(t *testing.T) {
	n := arbor.Grow(set(
		dataset.Record{1.0, 1.0, "A"},
		dataset.Record{0.0, 0.0, "B"},
	), arbor.Entropy)
	require.False(t, n.IsLeaf())
	assert.Equal(t, 0, n.Feature())
}

func TestGrowIsDeterministic(t *testing.T) {
	s := noisySet(11, 80)
	assert.Equal(t, tree.Render(arbor.Grow(s, arbor.Gini), nil), tree.Render(arbor.Grow(s, arbor.Gini), nil))
}

func TestGrowerWithFeaturesAndLogger(t *testing.T) {
	s := set(
		dataset.Record{1.0, 1.0, "A"},
		dataset.Record{0.0, 1.0, "B"},
		dataset.Record{1.0, 0.0, "A"},
		dataset.Record{0.0, 0.0, "B"},
	)
	logger := &recordingLogger{}
	g := &arbor.Grower{
		Metric:   arbor.Gini,
		Features: []feature.Feature{feature.NewInferredFeature("y", 1)},
		Logger:   logger,
	}
	n := g.Grow(s)
	require.True(t, n.IsLeaf(), "the only feature available does not separate labels")
	require.Len(t, *logger, 1)
	assert.Contains(t, (*logger)[0], "1 leaves")

	g.Features = []feature.Feature{feature.NewInferredFeature("x", 0)}
	n = g.Grow(s)
	require.False(t, n.IsLeaf())
	assert.Equal(t, "x", n.Criterion.Feature().Name())
}

func TestGrowSplitsIntegerValuesOnThresholds(t *testing.T) {
	s := set(
		dataset.Record{3, "A"},
		dataset.Record{2, "A"},
		dataset.Record{1, "B"},
		dataset.Record{0, "B"},
	)
	n := arbor.Grow(s, arbor.Gini)
	require.NoError(t, tree.Validate(n))
	require.False(t, n.IsLeaf())
	_, ok := n.Criterion.(feature.ContinuousCriterion)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Value())
	assert.Equal(t, 2, tree.CountLeaves(n))
	assert.Equal(t, map[string]int{"A": 2}, n.True.Results)
	assert.Equal(t, map[string]int{"B": 2}, n.False.Results)
	assert.Equal(t, "A", n.Predict(dataset.Record{5, ""}))
	assert.Equal(t, "B", n.Predict(dataset.Record{int64(1), ""}))
}
