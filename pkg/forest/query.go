package forest

// Find returns the first node satisfying pred in pre-order traversal order.
// The order is deterministic: roots in root order, then each subtree
// parent-before-children.
func (f *Forest[V]) Find(pred func(*Node[V]) bool) (*Node[V], bool) {
	var found *Node[V]
	f.Walk(PreOrder, func(n *Node[V], _ int) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Filter collects every node satisfying pred, in pre-order.
func (f *Forest[V]) Filter(pred func(*Node[V]) bool) []*Node[V] {
	var out []*Node[V]
	f.Walk(PreOrder, func(n *Node[V], _ int) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// MapNodes applies fn to every node in pre-order, passing the node's depth,
// and collects the results. It is a package-level function because Go
// methods cannot introduce the result type parameter.
func MapNodes[V Value, T any](f *Forest[V], fn func(*Node[V], int) T) []T {
	var out []T
	f.Walk(PreOrder, func(n *Node[V], depth int) bool {
		out = append(out, fn(n, depth))
		return true
	})
	return out
}

// Path walks parent links from n to its root and returns the chain in
// root-to-node order (root first, n last). A root's path is just the root.
func (f *Forest[V]) Path(n *Node[V]) []*Node[V] {
	if n == nil {
		return nil
	}
	var path []*Node[V]
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	reverse(path)
	return path
}

// Ancestors returns n's ancestor chain ordered nearest-first: parent,
// grandparent, up to the root. A root has no ancestors.
func (f *Forest[V]) Ancestors(n *Node[V]) []*Node[V] {
	if n == nil {
		return nil
	}
	var out []*Node[V]
	for cur := n.parent; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Descendants returns every node of n's subtree except n itself, in
// pre-order.
func (f *Forest[V]) Descendants(n *Node[V]) []*Node[V] {
	if n == nil {
		return nil
	}
	var out []*Node[V]
	f.WalkSubtree(n, PreOrder, func(d *Node[V], _ int) bool {
		if d != n {
			out = append(out, d)
		}
		return true
	})
	return out
}

// IsAncestorOf reports whether x appears on y's ancestor walk.
// A node is not its own ancestor.
func (f *Forest[V]) IsAncestorOf(x, y *Node[V]) bool {
	if x == nil || y == nil {
		return false
	}
	for cur := y.parent; cur != nil; cur = cur.parent {
		if cur == x {
			return true
		}
	}
	return false
}

// PathBetween returns the node sequence from a to b through their deepest
// common ancestor: a, up to (and including) the common ancestor exactly
// once, then down to b. Returns nil and false when the two nodes live in
// different trees.
func (f *Forest[V]) PathBetween(a, b *Node[V]) ([]*Node[V], bool) {
	pathA := f.Path(a)
	pathB := f.Path(b)
	if len(pathA) == 0 || len(pathB) == 0 || pathA[0] != pathB[0] {
		return nil, false
	}
	// Longest common prefix of the two root-to-node paths.
	last := 0
	for last+1 < len(pathA) && last+1 < len(pathB) && pathA[last+1] == pathB[last+1] {
		last++
	}
	up := pathA[last:]
	out := make([]*Node[V], 0, len(up)+len(pathB)-last-1)
	for i := len(up) - 1; i >= 0; i-- {
		out = append(out, up[i])
	}
	out = append(out, pathB[last+1:]...)
	return out, true
}

// Siblings returns the other members of n's owner sequence: for a child,
// the other entries of its parent's child list; for a root, the other
// roots. Order follows the owner sequence.
func (f *Forest[V]) Siblings(n *Node[V]) []*Node[V] {
	seq := f.ownerSequence(n)
	if seq == nil {
		return nil
	}
	out := make([]*Node[V], 0, len(seq)-1)
	for _, s := range seq {
		if s != n {
			out = append(out, s)
		}
	}
	return out
}

// NextSibling returns the node after n in its owner sequence, or nil and
// false at the boundary.
func (f *Forest[V]) NextSibling(n *Node[V]) (*Node[V], bool) {
	seq := f.ownerSequence(n)
	for i, s := range seq {
		if s == n && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return nil, false
}

// PrevSibling returns the node before n in its owner sequence, or nil and
// false at the boundary.
func (f *Forest[V]) PrevSibling(n *Node[V]) (*Node[V], bool) {
	seq := f.ownerSequence(n)
	for i, s := range seq {
		if s == n && i > 0 {
			return seq[i-1], true
		}
	}
	return nil, false
}

// ownerSequence returns the sequence that owns n: its parent's child list,
// or the forest's root list for a root.
func (f *Forest[V]) ownerSequence(n *Node[V]) []*Node[V] {
	if n == nil {
		return nil
	}
	if n.parent != nil {
		return n.parent.children
	}
	return f.roots
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
