package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arcgrid/pkg/render/term"
	"github.com/matzehuels/arcgrid/pkg/solutions"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TaskBrowserModel - Interactive task browser
// =============================================================================

// TaskLoader loads one task by ID.
type TaskLoader func(id string) (*task.Task, error)

// TaskBrowserModel is the bubbletea model for browsing tasks. It starts in a
// list of task IDs; enter opens a task and shows one pair at a time.
type TaskBrowserModel struct {
	IDs    []string
	Cursor int
	Height int
	Offset int

	// Detail view state, set while a task is open.
	Task *task.Task
	Pair int // index over train pairs, then test pairs
	Err  error

	load TaskLoader
}

// NewTaskBrowserModel creates a browser over ids using load to open tasks.
func NewTaskBrowserModel(ids []string, load TaskLoader) TaskBrowserModel {
	return TaskBrowserModel{
		IDs:    ids,
		Height: 15,
		load:   load,
	}
}

func (m TaskBrowserModel) Init() tea.Cmd {
	return nil
}

func (m TaskBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Task != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m TaskBrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		if m.Cursor < len(m.IDs)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "enter":
		if len(m.IDs) == 0 {
			return m, nil
		}
		t, err := m.load(m.IDs[m.Cursor])
		m.Err = err
		if err == nil {
			m.Task = t
			m.Pair = 0
		}
	}
	return m, nil
}

func (m TaskBrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.Task.Train) + len(m.Task.Test)
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.Task = nil
	case "left", "h":
		if m.Pair > 0 {
			m.Pair--
		}
	case "right", "l":
		if m.Pair < total-1 {
			m.Pair++
		}
	}
	return m, nil
}

// current returns the open pair and its label.
func (m TaskBrowserModel) current() (task.Pair, string) {
	if n := len(m.Task.Train); m.Pair < n {
		return m.Task.Train[m.Pair], fmt.Sprintf("train %d/%d", m.Pair+1, n)
	}
	i := m.Pair - len(m.Task.Train)
	return m.Task.Test[i], fmt.Sprintf("test %d/%d", i+1, len(m.Task.Test))
}

func (m TaskBrowserModel) View() string {
	if m.Task != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m TaskBrowserModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.IDs))
	for i := m.Offset; i < end; i++ {
		id := m.IDs[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		status := " "
		desc := ""
		if s := solutions.Find(id); s != nil {
			status = StyleSuccess.Render(iconSuccess)
			desc = listDimStyle.Render(s.Description)
		}
		line := fmt.Sprintf("%s%s %-10s %s", cursor, status, id, desc)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.IDs)), len(m.IDs))))
	return b.String()
}

func (m TaskBrowserModel) viewDetail() string {
	var b strings.Builder

	p, label := m.current()
	b.WriteString(StyleTitle.Render(m.Task.ID))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(label))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ pair  esc back  q quit"))
	b.WriteString("\n\n")
	b.WriteString(term.Pair(p.Input, p.Output))
	b.WriteString("\n")
	return b.String()
}
