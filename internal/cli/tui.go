package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/drawnet/drawnet/pkg/gallery"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// Scene Listing
// =============================================================================

// sceneEntry pairs a gallery scene with its display stats.
type sceneEntry struct {
	scene      *gallery.Scene
	name       string
	title      string
	shapes     int
	connectors int
	err        error // build failure; entry is shown dimmed and not selectable
}

// listScenes builds every gallery scene once to collect display stats.
func listScenes() []sceneEntry {
	scenes := gallery.All()
	entries := make([]sceneEntry, 0, len(scenes))
	for _, s := range scenes {
		e := sceneEntry{scene: s, name: s.Name, title: s.Title}
		d, _, err := s.Build()
		if err != nil {
			e.err = err
			entries = append(entries, e)
			continue
		}
		e.shapes = len(d.Shapes())
		if edges, err := d.Edges(); err == nil {
			for _, edge := range edges {
				e.connectors += len(edge.Connectors)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// sceneTable renders entries as a bordered table. cursor is the index of
// the highlighted row within entries, or -1 for none.
func sceneTable(entries []sceneEntry, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for i, e := range entries {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		shapes, connectors := "—", "—"
		if e.err == nil {
			shapes = strconv.Itoa(e.shapes)
			connectors = strconv.Itoa(e.connectors)
		}
		rows = append(rows, []string{marker, e.name, e.title, shapes, connectors})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Scene", "Title", "Shapes", "Connectors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(entries) {
				return lipgloss.NewStyle()
			}
			e := entries[row]
			isCurrent := row == cursor

			base := lipgloss.NewStyle()
			if col >= 3 {
				base = base.Foreground(colorDim)
			}

			switch {
			case e.err != nil:
				return base.Foreground(colorDim)
			case isCurrent:
				if col < 3 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			default:
				return base
			}
		})

	return t.Render()
}

// =============================================================================
// SceneListModel - Interactive scene selection
// =============================================================================

// SceneListModel is the bubbletea model for interactive scene selection.
type SceneListModel struct {
	Entries  []sceneEntry
	Cursor   int
	Selected *gallery.Scene
	Height   int
	Offset   int
}

// NewSceneListModel creates a new scene list model.
func NewSceneListModel(entries []sceneEntry) SceneListModel {
	return SceneListModel{
		Entries: entries,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m SceneListModel) Init() tea.Cmd {
	return nil
}

func (m SceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if entry.err != nil {
				return m, nil
			}
			m.Selected = entry.scene
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	b.WriteString(sceneTable(m.Entries[m.Offset:end], m.Cursor-m.Offset))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
