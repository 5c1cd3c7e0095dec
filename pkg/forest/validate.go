package forest

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Report is the outcome of Validate. Findings are advisory data, not
// errors: a forest with findings remains usable, and callers decide how to
// react.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate performs one combined walk over the forest collecting every
// structural inconsistency instead of stopping at the first:
//
//   - circular references (a node appearing in its own ancestor path)
//   - parent-consistency (a child whose parent pointer is not its owner)
//   - roots carrying a non-nil parent
//   - duplicate IDs, reported with their occurrence count
//
// The walk tracks the current path as a set, so cycles are detected even
// though a global visited set skips subtrees that were already cleared.
func (f *Forest[V]) Validate() Report {
	var errs []string
	visited := mapset.NewThreadUnsafeSet[*Node[V]]()
	idCounts := map[string]int{}
	var idOrder []string

	var walk func(n *Node[V], path mapset.Set[*Node[V]])
	walk = func(n *Node[V], path mapset.Set[*Node[V]]) {
		if path.Contains(n) {
			errs = append(errs, fmt.Sprintf("circular reference at node %q", n.ID()))
			return
		}
		if visited.Contains(n) {
			return
		}
		visited.Add(n)
		if idCounts[n.ID()] == 0 {
			idOrder = append(idOrder, n.ID())
		}
		idCounts[n.ID()]++
		path.Add(n)
		for _, c := range n.children {
			if c.parent != n {
				errs = append(errs, fmt.Sprintf("node %q is a child of %q but records a different parent", c.ID(), n.ID()))
			}
			walk(c, path)
		}
		path.Remove(n)
	}

	for _, root := range f.roots {
		if root.parent != nil {
			errs = append(errs, fmt.Sprintf("root %q has a parent", root.ID()))
		}
		walk(root, mapset.NewThreadUnsafeSet[*Node[V]]())
	}

	sort.Strings(idOrder)
	for _, id := range idOrder {
		if idCounts[id] > 1 {
			errs = append(errs, fmt.Sprintf("duplicate id %q (%d occurrences)", id, idCounts[id]))
		}
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}

// HasCycle reports whether any node is its own ancestor. Unlike Validate,
// this checks strictly for cycles and ignores other inconsistencies.
func (f *Forest[V]) HasCycle() bool {
	visited := mapset.NewThreadUnsafeSet[*Node[V]]()
	var cyclic bool

	var walk func(n *Node[V], path mapset.Set[*Node[V]])
	walk = func(n *Node[V], path mapset.Set[*Node[V]]) {
		if cyclic {
			return
		}
		if path.Contains(n) {
			cyclic = true
			return
		}
		if visited.Contains(n) {
			return
		}
		visited.Add(n)
		path.Add(n)
		for _, c := range n.children {
			walk(c, path)
		}
		path.Remove(n)
	}

	for _, root := range f.roots {
		walk(root, mapset.NewThreadUnsafeSet[*Node[V]]())
	}
	return cyclic
}
