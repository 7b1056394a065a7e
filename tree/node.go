package tree

import (
	"github.com/pbanos/arbor/feature"
)

/*
Node is a node of a binary decision tree. A node owns its branches: no
node is shared between two parents.
*/
type Node struct {
	// The question this node asks to route records to its branches,
	// nil on leaves.
	Criterion feature.Criterion
	// The subtree for records satisfying the criterion.
	True *Node
	// The subtree for records not satisfying the criterion.
	False *Node
	// The majority label of the training records that reached the node
	// when it was grown. It is the label predicted for records routed
	// through the node and never changes afterwards.
	Result string
	// The number of records per label attributed to the node by the last
	// evaluation (or by growing, for training records).
	Results map[string]int
	// The number of records in Results whose label is not Result.
	Error int
}

/*
New takes a result label and a map of label counts and returns a leaf node
predicting the label, with its own copy of the counts and its error computed
from them.
*/
func New(result string, results map[string]int) *Node {
	n := &Node{Result: result, Results: make(map[string]int, len(results))}
	for label, count := range results {
		n.Results[label] = count
	}
	n.Error = misclassified(result, n.Results)
	return n
}

/*
NewInternal takes a criterion, the true and false branches, a result label and
a map of label counts and returns an internal node with them.
*/
func NewInternal(c feature.Criterion, trueBranch, falseBranch *Node, result string, results map[string]int) *Node {
	n := New(result, results)
	n.Criterion = c
	n.True = trueBranch
	n.False = falseBranch
	return n
}

/*
IsLeaf returns whether the node has no branches.
*/
func (n *Node) IsLeaf() bool {
	return n.True == nil && n.False == nil
}

/*
Feature returns the column index of the feature the node splits on, or -1
for leaves.
*/
func (n *Node) Feature() int {
	if n.Criterion == nil {
		return -1
	}
	return n.Criterion.Feature().Index()
}

/*
Value returns the value the node compares its feature with, or nil for
leaves.
*/
func (n *Node) Value() interface{} {
	if n.Criterion == nil {
		return nil
	}
	return n.Criterion.Value()
}

/*
Total returns the number of records attributed to the node, that is, the sum
of its label counts.
*/
func (n *Node) Total() int {
	var total int
	for _, c := range n.Results {
		total += c
	}
	return total
}

/*
MakeLeaf drops the branches of the node and its criterion, turning it into a
leaf that keeps its result, counts and error.
*/
func (n *Node) MakeLeaf() {
	n.Criterion = nil
	n.True = nil
	n.False = nil
}

/*
Clone returns a deep copy of the subtree rooted at the node.
*/
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := New(n.Result, n.Results)
	c.Error = n.Error
	c.Criterion = n.Criterion
	c.True = n.True.Clone()
	c.False = n.False.Clone()
	return c
}

func misclassified(result string, results map[string]int) int {
	var e int
	for label, count := range results {
		if label != result {
			e += count
		}
	}
	return e
}
