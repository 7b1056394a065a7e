/*
Package arbor grows binary decision trees from sets of labelled records and
prunes them afterwards.
*/
package arbor

import (
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
)

/*
Logger is the interface wrapping the Logf method, used to report progress.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Grower grows trees with a metric, optionally restricted to some features and
reporting on a Logger.
*/
type Grower struct {
	// Metric used to score partitions
	Metric Metric
	// Features to split on. When nil, every column of the records
	// but the last one is used, named after its index.
	Features []feature.Feature
	// Logger to report on, may be nil
	Logger Logger
}

/*
Grow takes a set of records and a metric and returns the root of a tree
grown from the records with every feature column available, as described in
Grower's Grow method.
*/
func Grow(s dataset.Set, m Metric) *tree.Node {
	return (&Grower{Metric: m}).Grow(s)
}

/*
Grow takes a set of records and returns the root of a tree grown from them.

Every node gets the label counts of the records reaching it, its majority
label as result and the number of records not carrying it as error. A node
is split with the partition of its records of highest positive gain that
leaves records on both sides. If there is none, it is left as a leaf.

An empty set yields a leaf with an empty result and no counts.
*/
func (g *Grower) Grow(s dataset.Set) *tree.Node {
	features := g.Features
	if features == nil {
		features = feature.Columns(s.FeatureCount())
	}
	n := grow(s, features, g.Metric)
	if g.Logger != nil {
		g.Logger.Logf("Grew tree from %d records with %s: %d leaves, depth %d", len(s), g.Metric, tree.CountLeaves(n), tree.Depth(n))
	}
	return n
}

func grow(s dataset.Set, features []feature.Feature, m Metric) *tree.Node {
	if len(s) == 0 {
		return tree.New("", nil)
	}
	result := s.Majority()
	results := s.CountLabels()
	p := bestPartition(s, m.Score(s), features, m)
	if p == nil {
		return tree.New(result, results)
	}
	return tree.NewInternal(
		p.Criterion,
		grow(p.True, features, m),
		grow(p.False, features, m),
		result,
		results,
	)
}
