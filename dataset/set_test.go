package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() dataset.Set {
	return dataset.Set{
		{1.0, "red", "B"},
		{2.0, "blue", "A"},
		{1.0, "blue", "A"},
		{3.0, "red", "B"},
		{0.5, "green", "C"},
	}
}

func TestRecord(t *testing.T) {
	r := dataset.Record{1.0, "red", 2.0}
	assert.Equal(t, "2", r.Label())
	assert.Equal(t, "red", r.ValueAt(1))
	assert.Equal(t, "[1 red 2]", r.String())
}

func TestCounts(t *testing.T) {
	s := sampleSet()
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, 2, s.FeatureCount())
	assert.Equal(t, 0, dataset.Set(nil).FeatureCount())
	assert.Equal(t, map[string]int{"A": 2, "B": 2, "C": 1}, s.CountLabels())
	assert.Equal(t, []string{"B", "A", "C"}, s.Labels())
	assert.Empty(t, dataset.Set(nil).CountLabels())
}

func TestMajority(t *testing.T) {
	assert.Equal(t, "B", sampleSet().Majority(), "ties go to the label seen first")
	s := append(sampleSet(), dataset.Record{0.0, "red", "A"})
	assert.Equal(t, "A", s.Majority())
	assert.Equal(t, "", dataset.Set(nil).Majority())
}

func TestFeatureValues(t *testing.T) {
	s := sampleSet()
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0, 0.5}, s.FeatureValues(0))
	assert.Equal(t, []interface{}{"red", "blue", "green"}, s.FeatureValues(1))
}

func TestDivide(t *testing.T) {
	s := sampleSet()
	tests := []struct {
		name      string
		criterion feature.Criterion
		trueSet   dataset.Set
	}{
		{
			"numeric threshold",
			feature.NewCriterion(feature.NewInferredFeature("x", 0), 1.0),
			dataset.Set{s[0], s[1], s[2], s[3]},
		},
		{
			"categorical value",
			feature.NewCriterion(feature.NewInferredFeature("colour", 1), "blue"),
			dataset.Set{s[1], s[2]},
		},
		{
			"threshold on text",
			feature.NewCriterion(feature.NewInferredFeature("colour", 1), 1.0),
			nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trueSet, falseSet := s.Divide(tc.criterion)
			assert.Equal(t, tc.trueSet, trueSet)
			assert.Equal(t, len(s), len(trueSet)+len(falseSet))
			for _, r := range falseSet {
				assert.False(t, tc.criterion.SatisfiedBy(r.ValueAt(tc.criterion.Feature().Index())))
			}
		})
	}
}

func TestShuffle(t *testing.T) {
	s := sampleSet()
	shuffled := s.Shuffle(rand.New(rand.NewSource(1)))
	assert.ElementsMatch(t, s, shuffled)
	assert.Equal(t, sampleSet(), s, "the set is not modified")
	assert.Equal(t, shuffled, s.Shuffle(rand.New(rand.NewSource(1))), "same seed, same order")
}

func TestSplit(t *testing.T) {
	s := sampleSet()
	parts, err := s.Split(2, 0, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, s[:2], parts[0])
	assert.Empty(t, parts[1])
	assert.Equal(t, s[2:], parts[2])

	_, err = s.Split(4, 2)
	assert.Error(t, err)
	_, err = s.Split(-1)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sampleSet().Validate())
	assert.Error(t, dataset.Set(nil).Validate())
	assert.Error(t, dataset.Set{{"A"}}.Validate())
	assert.Error(t, dataset.Set{{1.0, "A"}, {1.0, 2.0, "A"}}.Validate())
	assert.Error(t, dataset.Set{{1, "A"}}.Validate())
}

func TestFieldValue(t *testing.T) {
	inferred := feature.NewInferredFeature("x", 0)
	discrete := feature.NewDiscreteFeature("grade", 1, nil)
	continuous := feature.NewContinuousFeature("size", 2)
	tests := []struct {
		name string
		f    feature.Feature
		raw  interface{}
		want interface{}
	}{
		{"int", inferred, int64(3), 3.0},
		{"float", inferred, 2.5, 2.5},
		{"numeric text", inferred, []byte("4"), 4.0},
		{"text", inferred, "red", "red"},
		{"bool", inferred, true, "true"},
		{"discrete int", discrete, int64(3), "3"},
		{"continuous text", continuous, "1.25", 1.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := dataset.FieldValue(tc.f, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
	_, err := dataset.FieldValue(inferred, nil)
	assert.Error(t, err)
	_, err = dataset.FieldValue(continuous, "big")
	assert.Error(t, err)
	_, err = dataset.FieldValue(inferred, struct{}{})
	assert.Error(t, err)
}
