package arbor

import (
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
)

/*
Partition represents a division of a set of records in two according to a
criterion, along with the impurity reduction it achieves
*/
type Partition struct {
	Criterion       feature.Criterion
	True            dataset.Set
	False           dataset.Set
	informationGain float64
}

/*
Gain returns the reduction of impurity achieved by the partition.
*/
func (p *Partition) Gain() float64 {
	return p.informationGain
}

/*
NewPartition takes a set of records, its impurity score, a criterion and a
metric and returns the partition of the set by the criterion. The gain of the
partition is the given score minus the impurity of each side weighted by its
share of the records.
*/
func NewPartition(s dataset.Set, score float64, c feature.Criterion, m Metric) *Partition {
	trueSet, falseSet := s.Divide(c)
	total := float64(len(s))
	gain := score
	gain -= float64(len(trueSet)) / total * m.Score(trueSet)
	gain -= float64(len(falseSet)) / total * m.Score(falseSet)
	return &Partition{c, trueSet, falseSet, gain}
}

/*
bestPartition takes a non-empty set of records, its impurity score, the
features to consider and a metric and returns the partition with the highest
positive gain among those leaving records on both sides, or nil if there is
none. Features are tried in the given order and their values in order of first
occurrence; on equal gains the first partition tried wins.
*/
func bestPartition(s dataset.Set, score float64, features []feature.Feature, m Metric) *Partition {
	var best *Partition
	bestGain := 0.0
	for _, f := range features {
		for _, v := range s.FeatureValues(f.Index()) {
			p := NewPartition(s, score, feature.NewCriterion(f, v), m)
			if len(p.True) == 0 || len(p.False) == 0 {
				continue
			}
			if p.informationGain > bestGain {
				best = p
				bestGain = p.informationGain
			}
		}
	}
	return best
}
