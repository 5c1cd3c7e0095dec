package forest_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/grovekit/grove/pkg/forest"
)

func collect(f *forest.Forest[forest.Item], order forest.Order, maxDepth int) []string {
	var ids []string
	f.WalkToDepth(order, maxDepth, func(n *forest.Node[forest.Item], _ int) bool {
		ids = append(ids, n.ID())
		return true
	})
	return ids
}

func TestWalkOrders(t *testing.T) {
	f, _ := buildSample(t) // 1 -> [2, 3 -> [4]]

	tests := []struct {
		name  string
		order forest.Order
		want  []string
	}{
		{"PreOrder", forest.PreOrder, []string{"1", "2", "3", "4"}},
		{"PostOrder", forest.PostOrder, []string{"2", "4", "3", "1"}},
		{"BreadthFirst", forest.BreadthFirst, []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(f, tt.order, forest.NoDepthLimit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestWalkDepthBound(t *testing.T) {
	f, _ := buildSample(t)

	tests := []struct {
		name     string
		order    forest.Order
		maxDepth int
		want     []string
	}{
		{"PreDepth0", forest.PreOrder, 0, []string{"1"}},
		{"PreDepth1", forest.PreOrder, 1, []string{"1", "2", "3"}},
		{"PostDepth1", forest.PostOrder, 1, []string{"2", "3", "1"}},
		{"BFSDepth1", forest.BreadthFirst, 1, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(f, tt.order, tt.maxDepth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkMultipleRoots(t *testing.T) {
	f := forest.New[forest.Item]()
	r1 := forest.NewNode(item("r1"))
	r2 := forest.NewNode(item("r2"))
	if err := f.AddRoot(r1); err != nil {
		t.Fatal(err)
	}
	if err := f.AddRoot(r2); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddChild(r1, item("c1")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddChild(r2, item("c2")); err != nil {
		t.Fatal(err)
	}

	// Roots are processed root-by-root in root order.
	if got := collect(f, forest.PostOrder, forest.NoDepthLimit); !reflect.DeepEqual(got, []string{"c1", "r1", "c2", "r2"}) {
		t.Errorf("post-order = %v", got)
	}
	// Breadth-first interleaves levels across roots.
	if got := collect(f, forest.BreadthFirst, forest.NoDepthLimit); !reflect.DeepEqual(got, []string{"r1", "r2", "c1", "c2"}) {
		t.Errorf("breadth-first = %v", got)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	f, _ := buildSample(t)
	var seen []string
	f.Walk(forest.PreOrder, func(n *forest.Node[forest.Item], _ int) bool {
		seen = append(seen, n.ID())
		return n.ID() != "2"
	})
	if !reflect.DeepEqual(seen, []string{"1", "2"}) {
		t.Errorf("early stop visited %v, want [1 2]", seen)
	}
}

func TestWalkDepths(t *testing.T) {
	f, _ := buildSample(t)
	depths := map[string]int{}
	f.Walk(forest.BreadthFirst, func(n *forest.Node[forest.Item], depth int) bool {
		depths[n.ID()] = depth
		return true
	})
	want := map[string]int{"1": 0, "2": 1, "3": 1, "4": 2}
	if !reflect.DeepEqual(depths, want) {
		t.Errorf("depths = %v, want %v", depths, want)
	}
}

func TestWalkDeepTree(t *testing.T) {
	// Iterative traversal must survive trees far deeper than the stack
	// would allow for naive recursion with large frames.
	f := forest.New[forest.Item]()
	cur := forest.NewNode(item("d0"))
	if err := f.AddRoot(cur); err != nil {
		t.Fatal(err)
	}
	const depth = 50000
	for i := 1; i <= depth; i++ {
		next, err := f.AddChild(cur, forest.Item{UID: "d" + strconv.Itoa(i)})
		if err != nil {
			t.Fatal(err)
		}
		cur = next
	}

	for _, order := range []forest.Order{forest.PreOrder, forest.PostOrder, forest.BreadthFirst} {
		visited := 0
		f.Walk(order, func(*forest.Node[forest.Item], int) bool {
			visited++
			return true
		})
		if visited != depth+1 {
			t.Errorf("%s visited %d, want %d", order, visited, depth+1)
		}
	}
}

