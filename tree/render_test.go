package tree_test

import (
	"testing"

	"github.com/pbanos/arbor/tree"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	expected := "A {A: 3, B: 2, C: 1} err = 3 x >= 1 ?\n" +
		"\t\tyes -> A {A: 3} err = 0\n" +
		"\t\tno  -> B {B: 2, C: 1} err = 1 y == blue ?\n" +
		"\t\t\t\tyes -> B {B: 2} err = 0\n" +
		"\t\t\t\tno  -> C {C: 1} err = 0"
	assert.Equal(t, expected, tree.Render(sampleTree(), nil))
	assert.Equal(t, expected, sampleTree().String())
}

func TestRenderWithHeadings(t *testing.T) {
	expected := "A {A: 3, B: 2, C: 1} err = 3 size >= 1 ?\n" +
		"\t\tyes -> A {A: 3} err = 0\n" +
		"\t\tno  -> B {B: 2, C: 1} err = 1 y == blue ?\n" +
		"\t\t\t\tyes -> B {B: 2} err = 0\n" +
		"\t\t\t\tno  -> C {C: 1} err = 0"
	assert.Equal(t, expected, tree.Render(sampleTree(), map[int]string{0: "size"}))
}

func TestRenderLeafWithoutCounts(t *testing.T) {
	assert.Equal(t, "A err = 0", tree.Render(tree.New("A", nil), nil))
}
