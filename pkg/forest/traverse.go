package forest

import (
	"time"

	"github.com/grovekit/grove/pkg/observability"
)

// Order selects a traversal strategy.
type Order int

const (
	// PreOrder visits a parent before its children, siblings in child order.
	PreOrder Order = iota
	// PostOrder visits all descendants of a node before the node itself.
	PostOrder
	// BreadthFirst visits nodes level by level, roots first.
	BreadthFirst
)

// String returns the order's name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// NoDepthLimit disables the depth bound of WalkToDepth.
const NoDepthLimit = -1

// Visitor receives each visited node together with its depth (roots are at
// depth 0). Returning false stops the walk.
type Visitor[V Value] func(n *Node[V], depth int) bool

// Walk traverses every node of the forest in the given order.
// Traversal never mutates the structure; visitors that mutate child lists
// mid-walk get no ordering guarantees.
func (f *Forest[V]) Walk(order Order, visit Visitor[V]) {
	f.WalkToDepth(order, NoDepthLimit, visit)
}

// WalkToDepth traverses like Walk but stops descending below maxDepth:
// a node at maxDepth is visited, its children are not. Pass NoDepthLimit
// (or any negative value) for an unbounded walk.
//
// All three strategies are iterative, so arbitrarily deep trees do not
// exhaust the goroutine stack.
func (f *Forest[V]) WalkToDepth(order Order, maxDepth int, visit Visitor[V]) {
	start := time.Now()
	visited := 0
	counting := func(n *Node[V], depth int) bool {
		visited++
		return visit(n, depth)
	}
	switch order {
	case PostOrder:
		for _, root := range f.roots {
			if !walkPost(root, 0, maxDepth, counting) {
				break
			}
		}
	case BreadthFirst:
		walkBreadth(f.roots, maxDepth, counting)
	default:
		for _, root := range f.roots {
			if !walkPre(root, 0, maxDepth, counting) {
				break
			}
		}
	}
	observability.Forest().OnTraversal(order.String(), visited, time.Since(start))
}

// WalkSubtree traverses the subtree rooted at n (including n) in the given
// order, with no depth bound.
func (f *Forest[V]) WalkSubtree(n *Node[V], order Order, visit Visitor[V]) {
	if n == nil {
		return
	}
	switch order {
	case PostOrder:
		walkPost(n, 0, NoDepthLimit, visit)
	case BreadthFirst:
		walkBreadth([]*Node[V]{n}, NoDepthLimit, visit)
	default:
		walkPre(n, 0, NoDepthLimit, visit)
	}
}

type frame[V Value] struct {
	node  *Node[V]
	depth int
}

// walkPre visits the subtree with an explicit stack: visit on pop, push
// children in reverse so the leftmost child is processed next.
func walkPre[V Value](root *Node[V], depth, maxDepth int, visit Visitor[V]) bool {
	stack := []frame[V]{{root, depth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top.node, top.depth) {
			return false
		}
		if maxDepth >= 0 && top.depth >= maxDepth {
			continue
		}
		for i := len(top.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame[V]{top.node.children[i], top.depth + 1})
		}
	}
	return true
}

// walkPost runs two passes: the first records the pop order of a pre-order
// walk that pushes children in natural order, the second replays that
// record in reverse. The replay visits every descendant before its parent,
// siblings in child order.
func walkPost[V Value](root *Node[V], depth, maxDepth int, visit Visitor[V]) bool {
	var record []frame[V]
	stack := []frame[V]{{root, depth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		record = append(record, top)
		if maxDepth >= 0 && top.depth >= maxDepth {
			continue
		}
		for _, c := range top.node.children {
			stack = append(stack, frame[V]{c, top.depth + 1})
		}
	}
	for i := len(record) - 1; i >= 0; i-- {
		if !visit(record[i].node, record[i].depth) {
			return false
		}
	}
	return true
}

// walkBreadth expands a FIFO queue seeded with one entry per root.
func walkBreadth[V Value](roots []*Node[V], maxDepth int, visit Visitor[V]) {
	queue := make([]frame[V], 0, len(roots))
	for _, root := range roots {
		queue = append(queue, frame[V]{root, 0})
	}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if !visit(head.node, head.depth) {
			return
		}
		if maxDepth >= 0 && head.depth >= maxDepth {
			continue
		}
		for _, c := range head.node.children {
			queue = append(queue, frame[V]{c, head.depth + 1})
		}
	}
}
