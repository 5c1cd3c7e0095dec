package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovekit/grove/pkg/forest"
)

func browseForest(t *testing.T) *forest.Forest[forest.Item] {
	t.Helper()
	f := forest.New[forest.Item]()
	root := forest.NewNode(forest.Item{UID: "root"})
	if err := f.AddRoot(root); err != nil {
		t.Fatal(err)
	}
	branch, err := f.AddChild(root, forest.Item{UID: "branch"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddChild(branch, forest.Item{UID: "leaf"}); err != nil {
		t.Fatal(err)
	}
	return f
}

func rowIDs(m treeModel) []string {
	ids := make([]string, len(m.rows))
	for i, r := range m.rows {
		ids[i] = r.node.ID()
	}
	return ids
}

func TestTreeModelInitialRows(t *testing.T) {
	m := newTreeModel(browseForest(t))

	// Roots start expanded, deeper levels collapsed.
	got := rowIDs(m)
	want := []string{"root", "branch"}
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rows = %v, want %v", got, want)
		}
	}
}

func TestTreeModelExpand(t *testing.T) {
	m := newTreeModel(browseForest(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(treeModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(treeModel)

	if len(m.rows) != 3 || m.rows[2].node.ID() != "leaf" {
		t.Errorf("rows after expand = %v", rowIDs(m))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(treeModel)
	if len(m.rows) != 2 {
		t.Errorf("rows after collapse = %v", rowIDs(m))
	}
}

func TestTreeModelCursorBounds(t *testing.T) {
	m := newTreeModel(browseForest(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(treeModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	for range 5 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(treeModel)
	}
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.rows)-1)
	}
}

func TestTreeModelQuit(t *testing.T) {
	m := newTreeModel(browseForest(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
