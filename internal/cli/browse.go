package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/pkg/forest"
)

// newBrowseCmd creates the browse command, an interactive terminal explorer
// for forest files.
func newBrowseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore a forest file interactively in the terminal",
		Long: `Explore a forest file interactively.

Navigate with the arrow keys (or j/k), expand and collapse subtrees with
enter or space, and quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readForest(args[0], format)
			if err != nil {
				return err
			}
			if f.Count() == 0 {
				printWarning("%s is empty", args[0])
				return nil
			}

			model := newTreeModel(f)
			if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNested, "input format: nested, flat, plain")

	return cmd
}

// treeRow is one visible line in the browser: a node plus its display depth.
type treeRow struct {
	node  *forest.Node[forest.Item]
	depth int
}

// treeModel is the bubbletea model for the interactive tree browser.
// Only rows whose ancestors are all expanded are visible; roots are always
// visible.
type treeModel struct {
	forest   *forest.Forest[forest.Item]
	expanded map[string]bool
	rows     []treeRow
	cursor   int
	height   int
	offset   int
}

// newTreeModel creates a browser model with the first level expanded.
func newTreeModel(f *forest.Forest[forest.Item]) treeModel {
	expanded := make(map[string]bool)
	for _, r := range f.Roots() {
		expanded[r.ID()] = true
	}
	m := treeModel{forest: f, expanded: expanded, height: 20}
	m.rebuildRows()
	return m
}

// rebuildRows recomputes the visible rows after an expand or collapse.
func (m *treeModel) rebuildRows() {
	m.rows = m.rows[:0]
	var walk func(n *forest.Node[forest.Item], depth int)
	walk = func(n *forest.Node[forest.Item], depth int) {
		m.rows = append(m.rows, treeRow{node: n, depth: depth})
		if !m.expanded[n.ID()] {
			return
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	for _, r := range m.forest.Roots() {
		walk(r, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			n := m.rows[m.cursor].node
			if !n.IsLeaf() {
				m.expanded[n.ID()] = !m.expanded[n.ID()]
				m.rebuildRows()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m treeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("grove browse"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "  "
		if !row.node.IsLeaf() {
			if m.expanded[row.node.ID()] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		label := row.node.ID()
		if i == m.cursor {
			label = StyleSuccess.Render(label)
		}

		b.WriteString(cursor)
		b.WriteString(strings.Repeat("  ", row.depth))
		b.WriteString(marker)
		b.WriteString(label)
		if n := row.node.ChildCount(); n > 0 {
			b.WriteString(StyleDim.Render(fmt.Sprintf(" (%d)", n)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))
	return b.String()
}
