// Package render turns forests into human-facing representations: ASCII
// trees for terminals and DOT/SVG for external tooling.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovekit/grove/pkg/forest"
)

var (
	styleBranch = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleNodeID = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleLeaf   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// TreeOptions configures ASCII tree output.
type TreeOptions struct {
	// Styled applies terminal colors via lipgloss. Leave false for plain
	// output suitable for piping or tests.
	Styled bool
}

// Tree renders the forest as a box-drawing ASCII tree, one block per root:
//
//	a
//	├── b
//	└── c
//	    └── d
//
// Children appear in insertion order, matching traversal and serialization
// order.
func Tree[V forest.Value](f *forest.Forest[V], opts TreeOptions) string {
	var b strings.Builder
	for _, root := range f.Roots() {
		b.WriteString(nodeLabel(root, opts))
		b.WriteByte('\n')
		writeChildren(&b, root, "", opts)
	}
	return b.String()
}

func writeChildren[V forest.Value](b *strings.Builder, n *forest.Node[V], prefix string, opts TreeOptions) {
	children := n.Children()
	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		if opts.Styled {
			branch = styleBranch.Render(branch)
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(nodeLabel(c, opts))
		b.WriteByte('\n')
		writeChildren(b, c, prefix+indent, opts)
	}
}

func nodeLabel[V forest.Value](n *forest.Node[V], opts TreeOptions) string {
	if !opts.Styled {
		return n.ID()
	}
	if n.IsLeaf() {
		return styleLeaf.Render(n.ID())
	}
	return styleNodeID.Render(n.ID())
}
