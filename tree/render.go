package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pbanos/arbor/feature"
)

/*
Render takes the root of a tree and a map from column index to column name
and returns the tree as indented text with a line per node: its result, its
label counts and its error. Internal nodes append their question, followed
by their "yes" (true) and "no" (false) branches indented below them.
Columns missing from the map are named after their feature.
*/
func Render(n *Node, headings map[int]string) string {
	var b strings.Builder
	render(&b, n, headings, "\t\t")
	return b.String()
}

func (n *Node) String() string {
	return Render(n, nil)
}

func render(b *strings.Builder, n *Node, headings map[int]string, indent string) {
	b.WriteString(n.Result)
	b.WriteString(" ")
	if len(n.Results) > 0 {
		b.WriteString(formatResults(n.Results))
		b.WriteString(" ")
	}
	fmt.Fprintf(b, "err = %d", n.Error)
	if n.IsLeaf() {
		return
	}
	fmt.Fprintf(b, " %s ?\n", question(n.Criterion, headings))
	b.WriteString(indent)
	b.WriteString("yes -> ")
	render(b, n.True, headings, indent+"\t\t")
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("no  -> ")
	render(b, n.False, headings, indent+"\t\t")
}

func question(c feature.Criterion, headings map[int]string) string {
	column, ok := headings[c.Feature().Index()]
	if !ok {
		column = c.Feature().Name()
	}
	operator := "=="
	if _, ok := c.(feature.ContinuousCriterion); ok {
		operator = ">="
	}
	return fmt.Sprintf("%s %s %v", column, operator, c.Value())
}

func formatResults(results map[string]int) string {
	labels := make([]string, 0, len(results))
	for label := range results {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%s: %d", label, results[label])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
