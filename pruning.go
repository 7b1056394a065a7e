package arbor

import (
	"fmt"
	"math"

	"github.com/pbanos/arbor/tree"
)

// PruningError represents an error found while pruning a tree
type PruningError string

/*
ErrUnevaluatedNode is the error returned by a pruner that finds an internal
node without records attributed to it (or without counts at all), on which
its estimates cannot be computed. Trees must be grown or evaluated on a
non-empty set before being pruned.
*/
const ErrUnevaluatedNode = PruningError("cannot prune a node without records")

func (pe PruningError) Error() string {
	return string(pe)
}

const (
	continuityCorrection = 0.5
	confidenceFactor     = 1.15
	priorErrors          = 2.0
	priorRecords         = 3.0
)

/*
Pruner is an interface wrapping the Prune method, that can be used to
simplify a tree after it has been grown.

The Prune method takes the root of a tree whose nodes carry the counts of an
evaluation (or of growing) and replaces in place the subtrees it deems
not worth keeping with leaves. It returns an error if the tree cannot be
pruned, in which case it may have been partially pruned.
*/
type Pruner interface {
	Prune(n *tree.Node) error
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(n *tree.Node) error

/*
Prune takes the root of a tree and invokes the PrunerFunc with it to return
its result.
*/
func (pf PrunerFunc) Prune(n *tree.Node) error {
	return pf(n)
}

/*
ParsePruner takes the name of a pruning strategy and returns a Pruner
implementing it, or an error if the name is unknown. Available names are
"reduced-error", "pessimistic-top-down", "pessimistic-bottom-up",
"minimum-error" and "none".
*/
func ParsePruner(name string) (Pruner, error) {
	switch name {
	case "reduced-error":
		return ReducedErrorPruner(), nil
	case "pessimistic-top-down":
		return TopDownPessimisticPruner(), nil
	case "pessimistic-bottom-up":
		return BottomUpPessimisticPruner(), nil
	case "minimum-error":
		return MinimumErrorPruner(), nil
	case "none":
		return NoPruner(), nil
	}
	return nil, fmt.Errorf("unknown pruning strategy %q", name)
}

/*
NoPruner returns a Pruner that leaves trees untouched.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(n *tree.Node) error {
		if n == nil {
			return tree.ErrNilTree
		}
		return nil
	})
}

/*
ReducedErrorPruner returns a Pruner that goes through the tree bottom-up and
turns into a leaf every internal node whose error is not greater than the
sum of the errors of its subtrees' leaves (after pruning them).

The tree is expected to have been evaluated on a set of records not used to
grow it, as on the records used for growing it no subtree has fewer errors
than its root.
*/
func ReducedErrorPruner() Pruner {
	return PrunerFunc(func(n *tree.Node) error {
		if n == nil {
			return tree.ErrNilTree
		}
		_, err := reducedError(n)
		return err
	})
}

func reducedError(n *tree.Node) (int, error) {
	if n.IsLeaf() {
		return n.Error, nil
	}
	if n.Results == nil {
		return 0, ErrUnevaluatedNode
	}
	te, err := reducedError(n.True)
	if err != nil {
		return 0, err
	}
	fe, err := reducedError(n.False)
	if err != nil {
		return 0, err
	}
	if n.Error <= te+fe {
		n.MakeLeaf()
		return n.Error, nil
	}
	return te + fe, nil
}

/*
TopDownPessimisticPruner returns a Pruner that goes through the tree from the
root down and turns into a leaf every internal node whose corrected error
(its error plus 0.5) is within a standard error of the corrected error of its
subtree (the sum of its leaves' errors plus 0.5 each). Subtrees of a pruned
node are not visited.

The pruner is not idempotent. A node is compared with its subtree before
the subtree is simplified, and the simplified subtree may have a higher
corrected error, so pruning an already pruned tree again may turn further
nodes into leaves.
*/
func TopDownPessimisticPruner() Pruner {
	return PrunerFunc(func(n *tree.Node) error {
		if n == nil {
			return tree.ErrNilTree
		}
		return topDownPessimistic(n)
	})
}

func topDownPessimistic(n *tree.Node) error {
	if n.IsLeaf() {
		return nil
	}
	total := float64(n.Total())
	if total == 0 {
		return ErrUnevaluatedNode
	}
	leafError := float64(n.Error) + continuityCorrection
	var subtreeError float64
	for _, l := range tree.Leaves(n) {
		subtreeError += float64(l.Error) + continuityCorrection
	}
	p := math.Max(0, 1-subtreeError/total)
	if leafError <= subtreeError+math.Sqrt(subtreeError*p) {
		n.MakeLeaf()
		return nil
	}
	if err := topDownPessimistic(n.True); err != nil {
		return err
	}
	return topDownPessimistic(n.False)
}

/*
BottomUpPessimisticPruner returns a Pruner that goes through the tree
bottom-up estimating the errors of every node as a leaf with an upper bound
on its Laplace-corrected error rate, and turns into a leaf every internal
node whose estimate is not greater than the sum of its subtrees' estimates
(after pruning them).
*/
func BottomUpPessimisticPruner() Pruner {
	return PrunerFunc(func(n *tree.Node) error {
		if n == nil {
			return tree.ErrNilTree
		}
		bottomUpPessimistic(n)
		return nil
	})
}

func bottomUpPessimistic(n *tree.Node) float64 {
	total := float64(n.Total())
	p := (1 + float64(n.Error)) / (2 + total)
	leafError := total * (p + confidenceFactor*math.Sqrt(math.Max(0, p*(1-p)/(total+2))))
	if n.IsLeaf() {
		return leafError
	}
	subtreeError := bottomUpPessimistic(n.True) + bottomUpPessimistic(n.False)
	if leafError <= subtreeError {
		n.MakeLeaf()
		return leafError
	}
	return subtreeError
}

/*
MinimumErrorPruner returns a Pruner that goes through the tree bottom-up
estimating the error rate of every node as a leaf with an m-estimate (adding
2 errors in 3 records to its counts), and turns into a leaf every internal
node whose estimate is not greater than the average of its subtrees'
estimates weighted by their number of records (after pruning them).
*/
func MinimumErrorPruner() Pruner {
	return PrunerFunc(func(n *tree.Node) error {
		if n == nil {
			return tree.ErrNilTree
		}
		_, _, err := minimumError(n)
		return err
	})
}

func minimumError(n *tree.Node) (int, float64, error) {
	total := n.Total()
	leafRate := (float64(n.Error) + priorErrors) / (float64(total) + priorRecords)
	if n.IsLeaf() {
		return total, leafRate, nil
	}
	if total == 0 {
		return 0, 0, ErrUnevaluatedNode
	}
	tTotal, tRate, err := minimumError(n.True)
	if err != nil {
		return 0, 0, err
	}
	fTotal, fRate, err := minimumError(n.False)
	if err != nil {
		return 0, 0, err
	}
	subtreeRate := float64(tTotal)/float64(total)*tRate + float64(fTotal)/float64(total)*fRate
	if leafRate <= subtreeRate {
		n.MakeLeaf()
		return total, leafRate, nil
	}
	return total, subtreeRate, nil
}
