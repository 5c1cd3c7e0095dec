package forest

import "github.com/grovekit/grove/pkg/clone"

// ValueCloner returns a structurally independent deep copy of a value.
// It is the forest's injected cloning capability: the forest itself never
// inspects value internals.
type ValueCloner[V Value] func(V) V

// cloneValue copies a value through the configured cloner, falling back to
// the value's own CloneValue method and then to the clone package's
// closed-set deep copy. Values outside that set are copied by assignment.
func (f *Forest[V]) cloneValue(v V) V {
	if f.cloner != nil {
		return f.cloner(v)
	}
	if c, ok := any(v).(interface{ CloneValue() V }); ok {
		return c.CloneValue()
	}
	if dv, ok := clone.Deep(v).(V); ok {
		return dv
	}
	return v
}

// CloneNode returns a deep copy of n's subtree. The copy's root has no
// parent link; child linkage within the copied subtree is preserved.
// The copy is detached: attach it with AddRoot or discard it freely.
func (f *Forest[V]) CloneNode(n *Node[V]) *Node[V] {
	if n == nil {
		return nil
	}
	out := NewNode(f.cloneValue(n.value))
	if len(n.children) > 0 {
		out.children = make([]*Node[V], len(n.children))
		for i, c := range n.children {
			cc := f.CloneNode(c)
			cc.parent = out
			out.children[i] = cc
		}
	}
	return out
}

// Clone returns a new forest whose trees are deep copies of f's trees.
// The cloner and format version carry over; event subscriptions do not.
func (f *Forest[V]) Clone() *Forest[V] {
	out := New[V]()
	out.cloner = f.cloner
	out.version = f.version
	for _, root := range f.roots {
		_ = out.AddRoot(f.CloneNode(root))
	}
	return out
}
