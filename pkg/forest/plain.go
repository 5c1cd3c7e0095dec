package forest

import (
	"encoding/json"
	"time"

	"github.com/grovekit/grove/pkg/errors"
	"github.com/grovekit/grove/pkg/observability"
)

// PlainNode is the plain nested serialization shape: a node's value plus
// its children, recursively. It carries no version tag and no parent IDs;
// parent links are rebuilt during construction.
type PlainNode[V Value] struct {
	Value    V              `json:"value"`
	Children []PlainNode[V] `json:"children,omitempty"`
}

// ToPlain converts the forest into plain nested form, one entry per root.
// Parent back-links are omitted, which keeps the representation cycle-free.
func (f *Forest[V]) ToPlain() []PlainNode[V] {
	out := make([]PlainNode[V], len(f.roots))
	for i, root := range f.roots {
		out[i] = plainFromNode(root)
	}
	return out
}

// FromPlain replaces the forest's contents with trees built from the plain
// nested form. Parent links are rebuilt top-down and the index is rebuilt
// from scratch. No events are emitted.
func (f *Forest[V]) FromPlain(roots []PlainNode[V]) {
	f.roots = make([]*Node[V], len(roots))
	for i, pn := range roots {
		f.roots[i] = nodeFromPlain(pn, nil)
	}
	f.reindex()
}

// MarshalPlain encodes the plain nested form as JSON.
func (f *Forest[V]) MarshalPlain() ([]byte, error) {
	start := time.Now()
	data, err := json.Marshal(f.ToPlain())
	observability.Forest().OnSerialize("plain", len(data), time.Since(start), err)
	return data, err
}

// UnmarshalPlain decodes a JSON array of plain nested nodes and replaces
// the forest's contents. Returns CodeMalformedData when the payload is not
// such an array; in that case the forest is unchanged.
func (f *Forest[V]) UnmarshalPlain(data []byte) error {
	var roots []PlainNode[V]
	if err := json.Unmarshal(data, &roots); err != nil {
		return errors.Wrap(errors.CodeMalformedData, err, "decode plain nodes")
	}
	f.FromPlain(roots)
	return nil
}

func plainFromNode[V Value](n *Node[V]) PlainNode[V] {
	pn := PlainNode[V]{Value: n.value}
	if len(n.children) > 0 {
		pn.Children = make([]PlainNode[V], len(n.children))
		for i, c := range n.children {
			pn.Children[i] = plainFromNode(c)
		}
	}
	return pn
}

// nodeFromPlain builds the node for pn with parent as its to-be parent,
// then recurses into children.
func nodeFromPlain[V Value](pn PlainNode[V], parent *Node[V]) *Node[V] {
	n := NewNode(pn.Value)
	n.parent = parent
	if len(pn.Children) > 0 {
		n.children = make([]*Node[V], len(pn.Children))
		for i, c := range pn.Children {
			n.children[i] = nodeFromPlain(c, n)
		}
	}
	return n
}
