package forest_test

import (
	"testing"

	"github.com/grovekit/grove/pkg/forest"
)

func TestCloneNode(t *testing.T) {
	f, nodes := buildSample(t)

	cloned := f.CloneNode(nodes["3"])
	if cloned == nil {
		t.Fatal("CloneNode returned nil")
	}
	if cloned == nodes["3"] {
		t.Fatal("clone is the original node")
	}
	if cloned.Parent() != nil {
		t.Error("clone root should have no parent")
	}
	if cloned.ChildCount() != 1 || cloned.Children()[0].ID() != "4" {
		t.Fatal("clone lost its subtree")
	}
	if cloned.Children()[0].Parent() != cloned {
		t.Error("child linkage within the clone not preserved")
	}
	if cloned.Children()[0] == nodes["4"] {
		t.Error("clone shares a node with the original")
	}
}

func TestCloneNodeDeepCopiesMetadata(t *testing.T) {
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "r", Meta: forest.Metadata{"tags": []any{"a"}}})
	if err := f.AddRoot(root); err != nil {
		t.Fatal(err)
	}

	cloned := f.CloneNode(root)
	tags := cloned.Value().Meta["tags"].([]any)
	tags[0] = "mutated"

	if root.Value().Meta["tags"].([]any)[0] != "a" {
		t.Error("mutating the clone's metadata leaked into the original")
	}
}

func TestCloneNodeDeepCopiesNestedMetadata(t *testing.T) {
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "r", Meta: forest.Metadata{
		"nested": forest.Metadata{"k": "v"},
	}})
	if err := f.AddRoot(root); err != nil {
		t.Fatal(err)
	}

	cloned := f.CloneNode(root)
	nested := cloned.Value().Meta["nested"].(forest.Metadata)
	nested["k"] = "mutated"

	if root.Value().Meta["nested"].(forest.Metadata)["k"] != "v" {
		t.Error("mutating the clone's nested metadata leaked into the original")
	}
}

func TestCloneForest(t *testing.T) {
	f, _ := buildSample(t)

	copied := f.Clone()
	if copied.Count() != f.Count() {
		t.Fatalf("clone Count = %d, want %d", copied.Count(), f.Count())
	}

	// Mutating the clone leaves the original untouched.
	n2, _ := copied.FindByID("2")
	if err := copied.Remove(n2); err != nil {
		t.Fatal(err)
	}
	if f.Count() != 4 {
		t.Errorf("original Count = %d after mutating clone, want 4", f.Count())
	}
	checkIndexInvariant(t, copied)
}

func TestWithCloner(t *testing.T) {
	calls := 0
	f := forest.New(forest.WithCloner(func(v forest.Item) forest.Item {
		calls++
		return v
	}))
	root := forest.NewNode(item("r"))
	if err := f.AddRoot(root); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddChild(root, item("c")); err != nil {
		t.Fatal(err)
	}

	f.CloneNode(root)
	if calls != 2 {
		t.Errorf("cloner calls = %d, want 2", calls)
	}
}

func TestCloneNilNode(t *testing.T) {
	f := forest.New[forest.Item]()
	if f.CloneNode(nil) != nil {
		t.Error("CloneNode(nil) should be nil")
	}
}
