package forest_test

import (
	"fmt"

	"github.com/grovekit/grove/pkg/forest"
)

func ExampleForest_basic() {
	// Build the forest 1 -> [2, 3 -> [4]].
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "1"})
	_ = f.AddRoot(root)
	_, _ = f.AddChild(root, forest.Item{UID: "2"})
	n3, _ := f.AddChild(root, forest.Item{UID: "3"})
	_, _ = f.AddChild(n3, forest.Item{UID: "4"})

	fmt.Println("Nodes:", f.Count())
	fmt.Println("Depth:", f.Depth())
	fmt.Println("Width:", f.Width())
	// Output:
	// Nodes: 4
	// Depth: 2
	// Width: 2
}

func ExampleForest_Walk() {
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "a"})
	_ = f.AddRoot(root)
	_, _ = f.AddChild(root, forest.Item{UID: "b"})
	_, _ = f.AddChild(root, forest.Item{UID: "c"})

	f.Walk(forest.PreOrder, func(n *forest.Node[forest.Item], depth int) bool {
		fmt.Printf("%d %s\n", depth, n.ID())
		return true
	})
	// Output:
	// 0 a
	// 1 b
	// 1 c
}

func ExampleForest_Move() {
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "root"})
	_ = f.AddRoot(root)
	a, _ := f.AddChild(root, forest.Item{UID: "a"})
	b, _ := f.AddChild(root, forest.Item{UID: "b"})

	// Reparent b under a; moving a under its own descendant fails.
	fmt.Println("move b under a:", f.Move(b, a))
	fmt.Println("move a under b:", f.Move(a, b) != nil)
	// Output:
	// move b under a: <nil>
	// move a under b: true
}

func ExampleForest_Serialize() {
	f := forest.New[forest.Item]()
	_ = f.AddRoot(forest.NewNode(forest.Item{UID: "only"}))

	data, _ := f.Serialize()
	fmt.Println(string(data))

	restored := forest.New[forest.Item]()
	_ = restored.Deserialize(data)
	fmt.Println("restored:", restored.Count())
	// Output:
	// {"version":1,"roots":[{"value":{"id":"only"}}]}
	// restored: 1
}

func ExampleForest_On() {
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "root"})
	_ = f.AddRoot(root)

	sub := f.On(forest.NodeAdded, func(e forest.Event[forest.Item]) {
		fmt.Println("added:", e.Node.ID())
	})
	_, _ = f.AddChild(root, forest.Item{UID: "child"})
	f.Off(sub)
	_, _ = f.AddChild(root, forest.Item{UID: "silent"})
	// Output:
	// added: child
}
