package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	"coachdash/internal/ui/components"
	"coachdash/internal/ui/theme"
	"coachdash/internal/ui/views/overview"
	"coachdash/internal/ui/views/tasks"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type dashboardPort interface {
	Load(ctx context.Context) (dashboarddto.DashboardOutput, error)
	ToggleTask(ctx context.Context, index int) (dashboarddto.DashboardOutput, error)
	ResetTasks(ctx context.Context) (dashboarddto.DashboardOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type loadedMsg struct {
	out dashboarddto.DashboardOutput
	err error
}

type toggledMsg struct {
	index int
	out   dashboarddto.DashboardOutput
	err   error
}

type resetMsg struct {
	out dashboarddto.DashboardOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Insights key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous task")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next task")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle task")),
		Insights: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "dismiss/show insights")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Insights, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Insights, k.PageUp, k.PageDown},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model for the dashboard screen. The data it
// renders is replaced wholesale by every load, toggle or reset result.
type Model struct {
	port   dashboardPort
	layout theme.Layout
	logger zerolog.Logger

	overview overview.Model
	tasks    tasks.Model
	viewport viewport.Model
	spinner  spinner.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette

	data    dashboarddto.DashboardOutput
	loading bool
	status  string
	width   int
	height  int
}

func NewModel(port dashboardPort, layout theme.Layout, logger zerolog.Logger) Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	vp.MouseWheelEnabled = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		layout:   layout,
		logger:   logger,
		overview: overview.New(layout),
		tasks:    tasks.New(),
		viewport: vp,
		spinner:  sp,
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(),
		loading:  true,
		status:   "loading",
	}
}

// Init performs the one-shot load; nothing is re-fetched afterwards.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.resize()

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("load dashboard")
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.apply(msg.out)
		m.status = originStatus(msg.out.Origin)

	case toggledMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Int("index", msg.index).Msg("toggle task")
			m.status = "toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.apply(msg.out)
		m.status = fmt.Sprintf("task %d toggled · %d%% complete", msg.index, msg.out.CompletionRate)
		if len(msg.out.Dangling) > 0 {
			m.status += fmt.Sprintf(" · %d index(es) without an item", len(msg.out.Dangling))
		}

	case resetMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("reset tasks")
			m.status = "reset failed: " + msg.err.Error()
			return m, nil
		}
		m.apply(msg.out)
		m.status = "completed tasks cleared"

	case tasks.ToggleMsg:
		return m, m.toggleCmd(msg.Index)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "i":
			m.toggleInsights()
			return m, nil
		}
		if m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
		m.refresh()
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.loading:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading your dashboard…")
	default:
		content = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	title := theme.Title.Render("My Coaching Journey")
	name := m.data.ClientName
	if name == "" {
		name = "…"
	}
	greeting := "Welcome back, " + name + "!"
	if m.layout.Emoji {
		greeting += " 👋"
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(title + "  " + theme.Muted.Render(greeting))
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.data.Origin == "demo" {
		left = theme.Hot.Render("● demo") + "  " + left
	}
	right := theme.Muted.Render("?:help  space:toggle  i:insights  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderBody() string {
	parts := []string{m.overview.View(), m.tasks.View()}
	if m.layout.ShowQuote {
		quote := lipgloss.NewStyle().Foreground(theme.Lavender).Italic(true).Render("“" + theme.Quote + "”")
		parts = append(parts, "", quote, theme.Muted.Render("— "+theme.QuoteAuthor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "task:toggle":
		if len(parts) < 2 {
			m.status = "usage: task:toggle <index>"
			return m, nil
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid index: " + parts[1]
			return m, nil
		}
		return m, m.toggleCmd(idx)
	case "tasks:reset":
		return m, m.resetCmd()
	case "insights:dismiss":
		m.overview.DismissInsights()
		m.refresh()
		m.status = "insights dismissed"
	case "insights:show":
		m.overview.RestoreInsights()
		m.refresh()
		m.status = "insights shown"
	case "help":
		m.showHelp = true
	case "quit":
		return m, tea.Quit
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) apply(out dashboarddto.DashboardOutput) {
	m.data = out
	m.overview.SetData(out)
	m.tasks.SetItems(out.ActionItems, out.CompletionRate)
	m.refresh()
}

func (m *Model) toggleInsights() {
	if m.overview.InsightsVisible() {
		m.overview.DismissInsights()
		m.status = "insights dismissed"
	} else {
		m.overview.RestoreInsights()
		m.status = "insights shown"
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderBody())
	m.followCursor()
}

// followCursor scrolls the viewport just enough to keep the highlighted
// task on screen.
func (m *Model) followCursor() {
	if m.loading || len(m.data.ActionItems) == 0 || m.viewport.Height <= 0 {
		return
	}
	line := lipgloss.Height(m.overview.View()) + m.tasks.CursorLine()
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *Model) resize() {
	m.overview.SetWidth(m.width)
	m.tasks.SetWidth(m.width)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-2, 1)
	m.refresh()
}

func originStatus(origin string) string {
	switch origin {
	case "demo":
		return "no session found, showing demo data"
	case "default":
		return "no session data yet"
	default:
		return "session loaded"
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Load(context.Background())
		return loadedMsg{out: out, err: err}
	}
}

func (m Model) toggleCmd(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ToggleTask(context.Background(), index)
		return toggledMsg{index: index, out: out, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ResetTasks(context.Background())
		return resetMsg{out: out, err: err}
	}
}
