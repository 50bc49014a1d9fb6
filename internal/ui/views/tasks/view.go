package tasks

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	"coachdash/internal/ui/theme"
)

// ToggleMsg asks the app to flip completion of the item at Index.
type ToggleMsg struct {
	Index int
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true)
	checkStyle  = lipgloss.NewStyle().Foreground(theme.Green).Bold(true)
)

// Model is the action-plan checklist.
type Model struct {
	items  []dashboarddto.ActionItemOutput
	rate   int
	cursor int
	width  int
}

func New() Model {
	return Model{}
}

// SetItems replaces the checklist, keeping the cursor in range.
func (m *Model) SetItems(items []dashboarddto.ActionItemOutput, completionRate int) {
	m.items = items
	m.rate = completionRate
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetWidth(w int) { m.width = w }

// Cursor returns the index of the highlighted item.
func (m Model) Cursor() int { return m.cursor }

// CursorLine is the line of the highlighted item within View, counting the
// pane border and the title block. Items that wrap push later lines down.
func (m Model) CursorLine() int {
	line := 3
	if len(m.items) == 0 {
		return line
	}
	inner := m.width - 4
	for _, item := range m.items[:m.cursor] {
		h := 1
		if inner > 0 {
			h = lipgloss.Height(lipgloss.NewStyle().Width(inner).Render("  [ ] " + item.Text))
		}
		line += h
	}
	return line
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.items) - 1
	case " ", "enter":
		idx := m.items[m.cursor].Index
		return m, func() tea.Msg { return ToggleMsg{Index: idx} }
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("My Action Plan"))
	if len(m.items) > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %d%% complete", m.rate)))
	}
	sb.WriteString("\n\n")
	if len(m.items) == 0 {
		sb.WriteString(theme.Muted.Render("No action items yet") + "\n")
		sb.WriteString(theme.Muted.Render("Your coach will set these in your next session"))
		return m.frame(sb.String())
	}
	for i, item := range m.items {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		box := "[ ]"
		text := item.Text
		if item.Done {
			box = checkStyle.Render("[✓]")
			text = theme.Done.Render(text)
		}
		sb.WriteString(pointer + box + " " + text)
		if i < len(m.items)-1 {
			sb.WriteString("\n")
		}
	}
	return m.frame(sb.String())
}

func (m Model) frame(body string) string {
	style := theme.PaneActive
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(body)
}
