package tree

import (
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
)

// TreeError represents an error related with the structure of a tree
type TreeError string

/*
ErrNilTree is the error returned when an operation that needs a tree is
given a nil node.
*/
const ErrNilTree = TreeError("nil tree")

/*
ErrSingleBranch is the error returned when a node has one branch but not the
other.
*/
const ErrSingleBranch = TreeError("node with a single branch")

/*
ErrMissingCriterion is the error returned when a node has branches but no
criterion to choose between them.
*/
const ErrMissingCriterion = TreeError("internal node without criterion")

func (te TreeError) Error() string {
	return string(te)
}

/*
Evaluate takes the root of a tree and a set of records and pushes the records
through the tree: every node reached has its Results set to the label counts
of the records reaching it and its Error to the number of those not labelled
with its Result. Nodes not reached by any record get empty counts.

It returns the total number of misclassified records, that is the sum of the
errors of the leaves.
*/
func Evaluate(n *Node, s dataset.Set) int {
	n.Results = s.CountLabels()
	n.Error = misclassified(n.Result, n.Results)
	if n.IsLeaf() {
		return n.Error
	}
	trueSet, falseSet := s.Divide(n.Criterion)
	return Evaluate(n.True, trueSet) + Evaluate(n.False, falseSet)
}

/*
EvaluateCopy works as Evaluate but on a deep copy of the tree, leaving the
given one untouched. It returns the evaluated copy along with the number of
misclassified records.
*/
func EvaluateCopy(n *Node, s dataset.Set) (*Node, int) {
	c := n.Clone()
	return c, Evaluate(c, s)
}

/*
Predict takes a record and returns the label the tree predicts for it: the
result of the leaf the record is routed to.
*/
func (n *Node) Predict(r dataset.Record) string {
	for !n.IsLeaf() {
		if n.Criterion.SatisfiedBy(r.ValueAt(n.Feature())) {
			n = n.True
		} else {
			n = n.False
		}
	}
	return n.Result
}

/*
Ask takes a function that returns the value of a record for a feature and
returns the label the tree predicts for the record, asking only for the
features on the path to its leaf. Errors returned by the function are
returned as is.
*/
func (n *Node) Ask(valueFor func(feature.Feature) (interface{}, error)) (string, error) {
	for !n.IsLeaf() {
		v, err := valueFor(n.Criterion.Feature())
		if err != nil {
			return "", err
		}
		if n.Criterion.SatisfiedBy(v) {
			n = n.True
		} else {
			n = n.False
		}
	}
	return n.Result, nil
}

/*
CountLeaves returns the number of leaves in the tree rooted at the node.
*/
func CountLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return CountLeaves(n.True) + CountLeaves(n.False)
}

/*
Depth returns the number of levels of the tree rooted at the node: 1 for a
single leaf.
*/
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	t, f := Depth(n.True), Depth(n.False)
	if t > f {
		return t + 1
	}
	return f + 1
}

/*
Leaves returns the leaves of the tree rooted at the node, from the leftmost
(all true branches) to the rightmost.
*/
func Leaves(n *Node) []*Node {
	var leaves []*Node
	Traverse(n, false, func(n *Node) error {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return nil
	})
	return leaves
}

// Traverse takes the root of a tree, a bottomup boolean and an
// error-returning function that takes a node as parameter, and
// goes through the tree running the function with every traversed
// node. Traverse will call the function with a parent node before
// calling it for its true and then its false branch if bottomup is
// false, and call it after its branches if bottomup is true.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func Traverse(n *Node, bottomup bool, f func(*Node) error) error {
	if n == nil {
		return nil
	}
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if err := Traverse(n.True, bottomup, f); err != nil {
		return err
	}
	if err := Traverse(n.False, bottomup, f); err != nil {
		return err
	}
	if bottomup {
		return f(n)
	}
	return nil
}

/*
Validate checks the tree rooted at the node is a strict binary tree: every
node is either a leaf without criterion or has a criterion and both branches.
It returns ErrNilTree, ErrSingleBranch or ErrMissingCriterion otherwise.
*/
func Validate(n *Node) error {
	if n == nil {
		return ErrNilTree
	}
	return Traverse(n, false, func(n *Node) error {
		if (n.True == nil) != (n.False == nil) {
			return ErrSingleBranch
		}
		if !n.IsLeaf() && n.Criterion == nil {
			return ErrMissingCriterion
		}
		return nil
	})
}
