package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/grovekit/grove/pkg/forest"
)

// DOTOptions configures DOT output.
type DOTOptions struct {
	// Detailed includes each node's depth and child count in its label.
	// When false, only the node ID is shown.
	Detailed bool
}

// ToDOT converts a forest to Graphviz DOT format, one edge per
// parent-child link. The resulting DOT string can be rendered with
// [RenderSVG].
func ToDOT[V forest.Value](f *forest.Forest[V], opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	f.Walk(forest.PreOrder, func(n *forest.Node[V], depth int) bool {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID(), dotLabel(n, depth, opts.Detailed))
		return true
	})

	buf.WriteString("\n")
	f.Walk(forest.PreOrder, func(n *forest.Node[V], _ int) bool {
		if n.Parent() != nil {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Parent().ID(), n.ID())
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel[V forest.Value](n *forest.Node[V], depth int, detailed bool) string {
	if !detailed {
		return n.ID()
	}
	parts := []string{
		fmt.Sprintf("depth: %d", depth),
		fmt.Sprintf("children: %d", n.ChildCount()),
	}
	return n.ID() + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
