package forest

import (
	"github.com/grovekit/grove/pkg/errors"
	"github.com/grovekit/grove/pkg/observability"
)

// FormatVersion is the version tag embedded in the versioned nested
// serialization format. Deserialize requires exact equality.
const FormatVersion = 1

// Forest is an in-memory multi-root tree container with indexed lookup.
// It owns an ordered list of root nodes, an identity index (id to node)
// covering every reachable node, and a registry of change-event handlers.
// All mutation, query, traversal, validation and serialization operations
// go through the Forest.
//
// The zero value is not usable - use New. Forest is not safe for concurrent
// use without external synchronization, and event handlers must not call
// back into mutation operations of the same forest.
type Forest[V Value] struct {
	roots   []*Node[V]
	index   map[string]*Node[V]
	subs    map[EventKind][]subscriber[V]
	cloner  ValueCloner[V]
	version int
}

// Option configures a Forest created by New.
type Option[V Value] func(*Forest[V])

// WithCloner sets the value cloner used by CloneNode and Clone.
// Without it, values implementing CloneValue are deep-copied through that
// method and everything else falls back to the clone package's closed-set
// deep copy.
func WithCloner[V Value](fn ValueCloner[V]) Option[V] {
	return func(f *Forest[V]) { f.cloner = fn }
}

// New creates an empty forest.
func New[V Value](opts ...Option[V]) *Forest[V] {
	f := &Forest[V]{
		index:   make(map[string]*Node[V]),
		subs:    make(map[EventKind][]subscriber[V]),
		version: FormatVersion,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Roots returns the ordered root list.
// The returned slice is the live list - use it as a read-only view.
func (f *Forest[V]) Roots() []*Node[V] { return f.roots }

// Count returns the number of nodes reachable from the roots.
// This is the size of the identity index.
func (f *Forest[V]) Count() int { return len(f.index) }

// FindByID returns the node indexed under id, or nil and false.
// Lookup is O(1).
func (f *Forest[V]) FindByID(id string) (*Node[V], bool) {
	n, ok := f.index[id]
	return n, ok
}

// AddRoot attaches node as the last root of the forest and indexes its
// subtree. Any previous parent link on the node is cleared. Root addition
// is structural initialization, so no event is emitted.
//
// Returns CodeInvalidArgument if node is nil or its value has an empty ID.
func (f *Forest[V]) AddRoot(node *Node[V]) error {
	if node == nil {
		return errors.New(errors.CodeInvalidArgument, "node must not be nil")
	}
	if node.ID() == "" {
		return errors.New(errors.CodeInvalidArgument, "node ID must not be empty")
	}
	node.parent = nil
	f.roots = append(f.roots, node)
	f.indexSubtree(node)
	observability.Forest().OnMutation("add_root", node.ID())
	return nil
}

// AddChild creates a node holding value, appends it as the last child of
// parent, indexes it and emits NodeAdded.
//
// Returns CodeInvalidArgument if parent is nil, value's ID is empty, or
// parent is not part of this forest.
func (f *Forest[V]) AddChild(parent *Node[V], value V) (*Node[V], error) {
	if parent == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "parent must not be nil")
	}
	if value.ID() == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "value ID must not be empty")
	}
	if f.index[parent.ID()] != parent {
		return nil, errors.New(errors.CodeInvalidArgument, "parent %q is not part of this forest", parent.ID())
	}
	child := NewNode(value)
	child.parent = parent
	parent.children = append(parent.children, child)
	f.indexSubtree(child)
	observability.Forest().OnMutation("add_child", child.ID())
	f.emit(NodeAdded, child)
	return child, nil
}

// AddChildren applies AddChild for each value in order and returns the
// created nodes. The batch is not atomic: a failure partway leaves the
// children added so far in place.
func (f *Forest[V]) AddChildren(parent *Node[V], values []V) ([]*Node[V], error) {
	nodes := make([]*Node[V], 0, len(values))
	for _, v := range values {
		child, err := f.AddChild(parent, v)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, child)
	}
	return nodes, nil
}

// Remove detaches node from its owner (the root list or its parent's child
// list), un-indexes the whole subtree and emits NodeRemoved with the
// removed subtree's former root.
//
// Returns CodeNotFound if the node is neither a root of this forest nor
// present in its recorded parent's child list.
func (f *Forest[V]) Remove(node *Node[V]) error {
	if node == nil {
		return errors.New(errors.CodeInvalidArgument, "node must not be nil")
	}
	if !f.detach(node) {
		return errors.New(errors.CodeNotFound, "node %q not found in its recorded owner", node.ID())
	}
	f.unindexSubtree(node)
	observability.Forest().OnMutation("remove", node.ID())
	f.emit(NodeRemoved, node)
	return nil
}

// RemoveChildren removes each node via Remove after verifying that every
// node's recorded parent is parent.
//
// Returns CodeInvalidArgument on the first node whose parent is not parent;
// in that case no node has been removed.
func (f *Forest[V]) RemoveChildren(parent *Node[V], nodes []*Node[V]) error {
	if parent == nil {
		return errors.New(errors.CodeInvalidArgument, "parent must not be nil")
	}
	for _, n := range nodes {
		if n == nil || n.parent != parent {
			return errors.New(errors.CodeInvalidArgument, "node is not a child of %q", parent.ID())
		}
	}
	for _, n := range nodes {
		if err := f.Remove(n); err != nil {
			return err
		}
	}
	return nil
}

// Clear un-indexes every subtree and empties the root list.
// No events are emitted.
func (f *Forest[V]) Clear() {
	for _, root := range f.roots {
		f.unindexSubtree(root)
	}
	f.roots = nil
	observability.Forest().OnMutation("clear", "")
}

// Move detaches node from its current owner and appends it as the last
// child of newParent, then emits NodeMoved. The transfer is atomic from the
// caller's point of view: on error the forest is unchanged.
//
// Returns CodeCircularReference if newParent is node itself or a descendant
// of node, CodeInvalidArgument if newParent is not part of this forest, and
// CodeNotFound if node is not attached to this forest.
func (f *Forest[V]) Move(node, newParent *Node[V]) error {
	if node == nil || newParent == nil {
		return errors.New(errors.CodeInvalidArgument, "node and newParent must not be nil")
	}
	if f.index[newParent.ID()] != newParent {
		return errors.New(errors.CodeInvalidArgument, "newParent %q is not part of this forest", newParent.ID())
	}
	if node == newParent {
		return errors.New(errors.CodeCircularReference, "cannot move node %q into itself", node.ID())
	}
	// Walk newParent's ancestor chain looking for node.
	for anc := newParent.parent; anc != nil; anc = anc.parent {
		if anc == node {
			return errors.New(errors.CodeCircularReference,
				"cannot move node %q under its own descendant %q", node.ID(), newParent.ID())
		}
	}
	if !f.detach(node) {
		return errors.New(errors.CodeNotFound, "node %q not found in its recorded owner", node.ID())
	}
	node.parent = newParent
	newParent.children = append(newParent.children, node)
	observability.Forest().OnMutation("move", node.ID())
	f.emit(NodeMoved, node)
	return nil
}

// Replace swaps the value held by node and emits NodeUpdated.
// If the identifier changes, the index entry moves to the new ID.
//
// Returns CodeInvalidArgument if the new value's ID is empty, and
// CodeNotFound if node is not part of this forest.
func (f *Forest[V]) Replace(node *Node[V], value V) error {
	if node == nil {
		return errors.New(errors.CodeInvalidArgument, "node must not be nil")
	}
	if value.ID() == "" {
		return errors.New(errors.CodeInvalidArgument, "value ID must not be empty")
	}
	if f.index[node.ID()] != node {
		return errors.New(errors.CodeNotFound, "node %q is not part of this forest", node.ID())
	}
	delete(f.index, node.ID())
	node.value = value
	f.index[node.ID()] = node
	observability.Forest().OnMutation("replace", node.ID())
	f.emit(NodeUpdated, node)
	return nil
}

// detach removes node from its owner and reports whether it was attached.
// Roots leave the root list; other nodes leave their recorded parent's
// child list. The parent pointer is left untouched for the caller to reuse.
func (f *Forest[V]) detach(node *Node[V]) bool {
	if node.parent == nil {
		for i, root := range f.roots {
			if root == node {
				f.roots = append(f.roots[:i], f.roots[i+1:]...)
				return true
			}
		}
		return false
	}
	i := node.parent.childIndex(node)
	if i < 0 {
		return false
	}
	p := node.parent
	p.children = append(p.children[:i], p.children[i+1:]...)
	return true
}

// indexSubtree inserts every node of the subtree rooted at n into the
// identity index. A colliding ID silently overwrites the previous entry;
// Validate reports duplicates as an inconsistency instead.
func (f *Forest[V]) indexSubtree(n *Node[V]) {
	f.index[n.ID()] = n
	for _, c := range n.children {
		f.indexSubtree(c)
	}
}

// unindexSubtree is the mirror walk removing the subtree's entries.
// An entry is only removed if it still points at the node being removed,
// so a duplicate ID elsewhere keeps its index slot.
func (f *Forest[V]) unindexSubtree(n *Node[V]) {
	if f.index[n.ID()] == n {
		delete(f.index, n.ID())
	}
	for _, c := range n.children {
		f.unindexSubtree(c)
	}
}

// reindex rebuilds the identity index from scratch over all roots.
// Used by the deserialization paths after a wholesale replacement.
func (f *Forest[V]) reindex() {
	f.index = make(map[string]*Node[V])
	for _, root := range f.roots {
		f.indexSubtree(root)
	}
}
