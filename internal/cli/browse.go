package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sprawl/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GraphBrowserModel - Interactive adjacency list browser
// =============================================================================

// GraphBrowserModel is the bubbletea model for browsing a generated graph.
// Each row shows a node with its outgoing connections; rows scroll when the
// graph is taller than the terminal.
type GraphBrowserModel struct {
	Graph  *graph.Digraph
	Meta   graph.Meta
	Nodes  []int
	Cursor int
	Height int
	Offset int
}

// NewGraphBrowserModel creates a browser model over the graph's nodes.
func NewGraphBrowserModel(g *graph.Digraph, meta graph.Meta) GraphBrowserModel {
	return GraphBrowserModel{
		Graph:  g,
		Meta:   meta,
		Nodes:  g.Nodes(),
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m GraphBrowserModel) Init() tea.Cmd {
	return nil
}

func (m GraphBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Nodes) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m GraphBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generated Graph"))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d nodes, %d edges", m.Graph.NodeCount(), m.Graph.EdgeCount())
	if p := m.Meta.Params; p != nil {
		summary += fmt.Sprintf("  ratio %.2f  connections %d-%d", p.MultiConnectionRatio, p.MinConnections, p.MaxConnections)
	}
	b.WriteString(listDimStyle.Render(summary))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Nodes) {
		end = len(m.Nodes)
	}

	for i := m.Offset; i < end; i++ {
		node := m.Nodes[i]
		targets := m.Graph.Targets(node)

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-4d %s %s", cursor, node, iconArrow, formatTargets(targets))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if len(targets) > 1 {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// formatTargets renders a target list as "[3, 7, 12]", sorted ascending
// to match the plain adjacency listing.
func formatTargets(targets []int) string {
	sorted := slices.Clone(targets)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// browseGraph runs the interactive graph browser until the user quits.
func browseGraph(g *graph.Digraph, meta graph.Meta) error {
	p := tea.NewProgram(NewGraphBrowserModel(g, meta))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("graph browser: %w", err)
	}
	return nil
}
