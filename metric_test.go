package arbor_test

import (
	"math"
	"testing"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricScore(t *testing.T) {
	even := set(dataset.Record{1.0, "A"}, dataset.Record{2.0, "B"})
	pure := set(dataset.Record{1.0, "A"}, dataset.Record{2.0, "A"}, dataset.Record{3.0, "A"})
	three := set(dataset.Record{1.0, "A"}, dataset.Record{2.0, "B"}, dataset.Record{3.0, "C"})
	tests := []struct {
		name   string
		metric arbor.Metric
		set    dataset.Set
		want   float64
	}{
		{"entropy of even labels", arbor.Entropy, even, 1.0},
		{"gini of even labels", arbor.Gini, even, 0.5},
		{"entropy of a single label", arbor.Entropy, pure, 0.0},
		{"gini of a single label", arbor.Gini, pure, 0.0},
		{"entropy of three even labels", arbor.Entropy, three, math.Log2(3)},
		{"gini of three even labels", arbor.Gini, three, 2.0 / 3.0},
		{"entropy of an empty set", arbor.Entropy, nil, 0.0},
		{"gini of an empty set", arbor.Gini, nil, 0.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.metric.Score(tc.set), 1e-9)
		})
	}
}

func TestMetricScoreIsNonNegative(t *testing.T) {
	s := noisySet(7, 50)
	for _, m := range []arbor.Metric{arbor.Entropy, arbor.Gini} {
		for i := range s {
			assert.GreaterOrEqual(t, m.Score(s[:i]), 0.0, "%s of %d records", m, i)
		}
	}
}

func TestParseMetric(t *testing.T) {
	m, err := arbor.ParseMetric("gini")
	require.NoError(t, err)
	assert.Equal(t, arbor.Gini, m)
	assert.Equal(t, "gini", m.String())

	m, err = arbor.ParseMetric("entropy")
	require.NoError(t, err)
	assert.Equal(t, arbor.Entropy, m)
	assert.Equal(t, "entropy", m.String())

	_, err = arbor.ParseMetric("variance")
	assert.Error(t, err)
}
