package forest

// Node is a vertex in a Forest holding a value of type V.
// A node owns its children (insertion order is meaningful and defines
// traversal and serialization order) and keeps a non-owning back-reference
// to its parent. Exactly one owner holds a node at any time: either its
// parent's child list or the forest's root list.
//
// Nodes are created with NewNode or by the forest's add and deserialization
// operations, and are always manipulated through a Forest. The zero value is
// not usable.
type Node[V Value] struct {
	value    V
	parent   *Node[V]
	children []*Node[V]
}

// NewNode creates a detached node holding value. The node has no parent and
// no children until attached to a forest via AddRoot or linked by a
// deserialization operation.
func NewNode[V Value](value V) *Node[V] {
	return &Node[V]{value: value}
}

// Value returns the value held by the node.
func (n *Node[V]) Value() V { return n.value }

// ID returns the identifier of the node's value.
func (n *Node[V]) ID() string { return n.value.ID() }

// Parent returns the node's parent, or nil for a root.
func (n *Node[V]) Parent() *Node[V] { return n.parent }

// Children returns the node's ordered child list.
// The returned slice is the live list - use it as a read-only view and
// mutate structure through the Forest instead.
func (n *Node[V]) Children() []*Node[V] { return n.children }

// ChildCount returns the number of direct children.
func (n *Node[V]) ChildCount() int { return len(n.children) }

// IsRoot reports whether the node has no parent.
func (n *Node[V]) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the node has no children.
func (n *Node[V]) IsLeaf() bool { return len(n.children) == 0 }

// childIndex returns the position of c in n's child list, or -1.
func (n *Node[V]) childIndex(c *Node[V]) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}
