package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/arbor/feature"
	fjson "github.com/pbanos/arbor/feature/json"
	"github.com/pbanos/arbor/tree"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type NodeEncodeDecoder interface {

	//Encode receives the root *tree.Node of a tree
	// and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Node) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns the root *tree.Node of the tree
	//decoded from the slice of bytes or an error if
	//the decoding could not be performed for some reason.
	Decode([]byte) (*tree.Node, error)
}

type nodeEncodeDecoder struct {
	fjson.CriteriaEncodeDecoder
}

type node struct {
	Criterion *json.RawMessage `json:"c,omitempty"`
	True      *node            `json:"t,omitempty"`
	False     *node            `json:"f,omitempty"`
	Result    string           `json:"r"`
	Results   map[string]int   `json:"rs,omitempty"`
	Error     int              `json:"e,omitempty"`
}

/*
NewNodeEncodeDecoder takes a slice of features and returns a NodeEncodeDecoder
that encodes trees as nested JSON objects, using a
feature/json CriteriaEncodeDecoder built with the features to
encode/decode nodes' criteria.
*/
func NewNodeEncodeDecoder(features []feature.Feature) NodeEncodeDecoder {
	return &nodeEncodeDecoder{fjson.NewCriteriaEncodeDecoder(features)}
}

func (ned *nodeEncodeDecoder) Encode(n *tree.Node) ([]byte, error) {
	jn, err := ned.encode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jn)
}

func (ned *nodeEncodeDecoder) Decode(data []byte) (*tree.Node, error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, err
	}
	n, err := ned.decode(jn)
	if err != nil {
		return nil, err
	}
	err = tree.Validate(n)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (ned *nodeEncodeDecoder) encode(n *tree.Node) (*node, error) {
	if n == nil {
		return nil, nil
	}
	jn := &node{Result: n.Result, Error: n.Error}
	if len(n.Results) > 0 {
		jn.Results = n.Results
	}
	if n.Criterion != nil {
		c, err := ned.CriteriaEncodeDecoder.Encode(n.Criterion)
		if err != nil {
			return nil, err
		}
		rc := json.RawMessage(c)
		jn.Criterion = &rc
	}
	var err error
	jn.True, err = ned.encode(n.True)
	if err != nil {
		return nil, err
	}
	jn.False, err = ned.encode(n.False)
	if err != nil {
		return nil, err
	}
	return jn, nil
}

func (ned *nodeEncodeDecoder) decode(jn *node) (*tree.Node, error) {
	if jn == nil {
		return nil, nil
	}
	n := tree.New(jn.Result, jn.Results)
	n.Error = jn.Error
	var err error
	if jn.Criterion != nil {
		n.Criterion, err = ned.CriteriaEncodeDecoder.Decode(*jn.Criterion)
		if err != nil {
			return nil, fmt.Errorf("decoding criterion: %v", err)
		}
	}
	n.True, err = ned.decode(jn.True)
	if err != nil {
		return nil, err
	}
	n.False, err = ned.decode(jn.False)
	if err != nil {
		return nil, err
	}
	return n, nil
}
