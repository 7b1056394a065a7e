/*
Package dot renders trees as graphs in the DOT language of Graphviz.
*/
package dot

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
)

const graphName = "arbor"

/*
Render takes the root of a tree and a map from column index to column name
and returns a directed graph in DOT format with a node per tree node. Leaves
are drawn as boxes labelled with their result, counts and error, internal
nodes as ellipses labelled with their question, and every internal node has
a "yes" edge to its true branch and a "no" edge to its false one.
An error is returned if the graph cannot be built.
*/
func Render(n *tree.Node, headings map[int]string) (string, error) {
	if n == nil {
		return "", tree.ErrNilTree
	}
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	var count int
	_, err := addNode(g, n, headings, &count)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

func addNode(g *gographviz.Graph, n *tree.Node, headings map[int]string, count *int) (string, error) {
	id := fmt.Sprintf("n%d", *count)
	*count++
	attrs := map[string]string{"shape": "box", "label": quote(leafLabel(n))}
	if !n.IsLeaf() {
		attrs = map[string]string{"shape": "ellipse", "label": quote(question(n.Criterion, headings))}
	}
	if err := g.AddNode(graphName, id, attrs); err != nil {
		return "", fmt.Errorf("adding node %s: %v", id, err)
	}
	if n.IsLeaf() {
		return id, nil
	}
	for _, branch := range []struct {
		label string
		node  *tree.Node
	}{{"yes", n.True}, {"no", n.False}} {
		childID, err := addNode(g, branch.node, headings, count)
		if err != nil {
			return "", err
		}
		if err := g.AddEdge(id, childID, true, map[string]string{"label": quote(branch.label)}); err != nil {
			return "", fmt.Errorf("adding edge %s -> %s: %v", id, childID, err)
		}
	}
	return id, nil
}

func leafLabel(n *tree.Node) string {
	return fmt.Sprintf("%s\n%v\nerr = %d", n.Result, n.Results, n.Error)
}

func question(c feature.Criterion, headings map[int]string) string {
	column, ok := headings[c.Feature().Index()]
	if !ok {
		column = c.Feature().Name()
	}
	if _, ok := c.(feature.ContinuousCriterion); ok {
		return fmt.Sprintf("%s >= %v", column, c.Value())
	}
	return fmt.Sprintf("%s == %v", column, c.Value())
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
