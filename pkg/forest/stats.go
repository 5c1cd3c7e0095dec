package forest

// Stats aggregates structural measurements of a forest.
type Stats struct {
	Nodes  int `json:"nodes"`  // Total reachable nodes (index size)
	Roots  int `json:"roots"`  // Number of roots
	Leaves int `json:"leaves"` // Nodes without children
	Depth  int `json:"depth"`  // Maximum depth (roots are at 0)
	Width  int `json:"width"`  // Maximum node count on a single depth level
}

// Depth returns the maximum depth seen during a full traversal.
// Roots are at depth 0; an empty forest reports 0.
func (f *Forest[V]) Depth() int {
	maxDepth := 0
	f.Walk(BreadthFirst, func(_ *Node[V], depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	return maxDepth
}

// Width returns the maximum number of nodes sharing a depth level.
func (f *Forest[V]) Width() int {
	counts := f.levelCounts()
	width := 0
	for _, c := range counts {
		if c > width {
			width = c
		}
	}
	return width
}

// NodesAtDepth collects the nodes at exactly depth d, in breadth-first
// order.
func (f *Forest[V]) NodesAtDepth(d int) []*Node[V] {
	if d < 0 {
		return nil
	}
	var out []*Node[V]
	f.WalkToDepth(BreadthFirst, d, func(n *Node[V], depth int) bool {
		if depth == d {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Statistics computes the aggregate measurements in a single traversal.
func (f *Forest[V]) Statistics() Stats {
	s := Stats{Nodes: len(f.index), Roots: len(f.roots)}
	levels := map[int]int{}
	f.Walk(BreadthFirst, func(n *Node[V], depth int) bool {
		levels[depth]++
		if n.IsLeaf() {
			s.Leaves++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return true
	})
	for _, c := range levels {
		if c > s.Width {
			s.Width = c
		}
	}
	return s
}

func (f *Forest[V]) levelCounts() map[int]int {
	counts := map[int]int{}
	f.Walk(BreadthFirst, func(_ *Node[V], depth int) bool {
		counts[depth]++
		return true
	})
	return counts
}
