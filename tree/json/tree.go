/*
Package json serializes trees as JSON documents.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
)

type jsonTree struct {
	Columns []string         `json:"columns"`
	Root    *json.RawMessage `json:"root"`
}

/*
WriteJSONTree takes the root of a tree, the features of the records it was
grown from and an io.Writer and serializes the given tree as JSON onto the
io.Writer.
A tree is serialized as a JSON object with the following fields:
* "columns": an array with the names of the features, in column order
* "root": the root node of the tree, serialized by a NodeEncodeDecoder
  built with the features
An error is returned if the tree cannot be serialized or written
onto the io.Writer.
*/
func WriteJSONTree(n *tree.Node, features []feature.Feature, w io.Writer) error {
	if n == nil {
		return tree.ErrNilTree
	}
	root, err := NewNodeEncodeDecoder(features).Encode(n)
	if err != nil {
		return err
	}
	rr := json.RawMessage(root)
	jt := &jsonTree{Columns: make([]string, len(features)), Root: &rr}
	for i, f := range features {
		jt.Columns[i] = f.Name()
	}
	return json.NewEncoder(w).Encode(jt)
}

/*
ReadJSONTree takes an io.Reader and a feature.Metadata and unmarshals the
tree in the contents of the io.Reader, returning its root and the features
for its columns (declared by the metadata, which may be nil, or inferred).
The document is expected to be a JSON object as written by WriteJSONTree.
An error is returned if the JSON cannot be read from the io.Reader or
does not contain a valid tree.
*/
func ReadJSONTree(r io.Reader, md feature.Metadata) (*tree.Node, []feature.Feature, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, nil, err
	}
	if jt.Root == nil {
		return nil, nil, fmt.Errorf("no root node available")
	}
	features := md.Features(jt.Columns)
	n, err := NewNodeEncodeDecoder(features).Decode(*jt.Root)
	if err != nil {
		return nil, nil, err
	}
	return n, features, nil
}
