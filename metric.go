package arbor

import (
	"fmt"
	"math"

	"github.com/pbanos/arbor/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*
Metric is an impurity measure of the labels of a set of records: 0 for a set
with a single label and growing as labels get more mixed.
*/
type Metric int

const (
	// Entropy is the Shannon entropy of the label distribution, in bits.
	Entropy Metric = iota
	// Gini is the Gini impurity of the label distribution.
	Gini
)

/*
ParseMetric takes the name of a metric ("entropy" or "gini") and returns the
corresponding Metric or an error if the name is unknown.
*/
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "entropy":
		return Entropy, nil
	case "gini":
		return Gini, nil
	}
	return Entropy, fmt.Errorf("unknown metric %q", name)
}

/*
Score takes a set of records and returns the impurity of their labels
according to the metric. An empty set has impurity 0.
*/
func (m Metric) Score(s dataset.Set) float64 {
	p := labelFrequencies(s)
	if len(p) == 0 {
		return 0.0
	}
	switch m {
	case Gini:
		return 1.0 - floats.Dot(p, p)
	default:
		return stat.Entropy(p) / math.Ln2
	}
}

func (m Metric) String() string {
	switch m {
	case Entropy:
		return "entropy"
	case Gini:
		return "gini"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

func labelFrequencies(s dataset.Set) []float64 {
	if len(s) == 0 {
		return nil
	}
	counts := s.CountLabels()
	total := float64(len(s))
	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		p = append(p, float64(c)/total)
	}
	return p
}
