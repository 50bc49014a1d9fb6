package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	"coachdash/internal/ui/components"
	"coachdash/internal/ui/report"
	"coachdash/internal/ui/theme"
)

// Model renders the score cards, the wheel of life and the insights panel.
// It holds no input state beyond whether insights were dismissed.
type Model struct {
	data      dashboarddto.DashboardOutput
	layout    theme.Layout
	dismissed bool
	width     int
}

func New(layout theme.Layout) Model {
	return Model{layout: layout}
}

func (m *Model) SetData(data dashboarddto.DashboardOutput) { m.data = data }
func (m *Model) SetWidth(w int)                            { m.width = w }

// DismissInsights hides the insights panel until RestoreInsights.
func (m *Model) DismissInsights() { m.dismissed = true }
func (m *Model) RestoreInsights() { m.dismissed = false }

// InsightsVisible reports whether the panel is rendered.
func (m Model) InsightsVisible() bool {
	return m.layout.ShowInsights && !m.dismissed && len(m.data.Insights) > 0
}

func (m Model) View() string {
	parts := []string{m.renderCards(), m.renderWheel()}
	if m.InsightsVisible() {
		parts = append(parts, m.renderInsights())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) contentWidth() int {
	if m.width < 30 {
		return 72
	}
	return m.width
}

func (m Model) renderCards() string {
	cardW := m.contentWidth()/3 - 2
	if cardW < 20 {
		cardW = 20
	}
	gaugeW := cardW - 4
	d := m.data

	readiness := card(cardW, "Readiness Score",
		lipgloss.NewStyle().Foreground(theme.LevelColor(d.ReadinessLevel)).Bold(true).Render(fmt.Sprintf("%d%%", d.Readiness)),
		components.Gauge(float64(d.Readiness), gaugeW, theme.Green),
		theme.Muted.Render(d.ReadinessLevel+" · your commitment level"))

	balance := card(cardW, "Life Balance",
		lipgloss.NewStyle().Foreground(theme.LevelColor(d.BalanceLevel)).Bold(true).Render(d.BalanceDisplay)+theme.Muted.Render("/10"),
		components.Gauge(d.BalanceAverage*10, gaugeW, theme.Mauve),
		theme.Muted.Render(d.BalanceLevel+" · overall satisfaction"))

	done := 0
	for _, item := range d.ActionItems {
		if item.Done {
			done++
		}
	}
	actions := card(cardW, "Action Items",
		theme.Big.Foreground(theme.Blue).Render(fmt.Sprintf("%d", len(d.ActionItems))),
		components.Gauge(float64(d.CompletionRate), gaugeW, theme.Blue),
		theme.Muted.Render(fmt.Sprintf("%d done · %d%% complete", done, d.CompletionRate)))

	return lipgloss.JoinHorizontal(lipgloss.Top, readiness, " ", balance, " ", actions)
}

func card(width int, title, value, gauge, caption string) string {
	body := theme.Title.Render(title) + "\n" + value + "\n" + gauge + "\n" + caption
	return theme.Pane.Width(width).Render(body)
}

func (m Model) renderWheel() string {
	w := m.contentWidth()
	labelW := 0
	for _, a := range m.data.Areas {
		if lw := lipgloss.Width(report.AreaLabel(a.Icon, a.Label, m.layout.Emoji)); lw > labelW {
			labelW = lw
		}
	}
	gaugeW := w - labelW - 14
	if gaugeW < 10 {
		gaugeW = 10
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Your Life Balance") + "\n\n")
	for i, a := range m.data.Areas {
		label := lipgloss.NewStyle().Width(labelW).Render(report.AreaLabel(a.Icon, a.Label, m.layout.Emoji))
		color := theme.AreaColors[i%len(theme.AreaColors)]
		sb.WriteString(fmt.Sprintf("%s  %s %2d/10", label, components.Gauge(float64(a.Score)*10, gaugeW, color), a.Score))
		if i < len(m.data.Areas)-1 {
			sb.WriteString("\n")
		}
	}
	return theme.Pane.Width(w - 2).Render(sb.String())
}

func (m Model) renderInsights() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Insights") + theme.Muted.Render("  i: dismiss") + "\n")
	for _, in := range m.data.Insights {
		accent := lipgloss.NewStyle().Foreground(theme.InsightColor(in.Kind)).Bold(true)
		sb.WriteString("\n" + accent.Render(theme.InsightIcon(in.Kind)+" "+in.Title) + "\n")
		sb.WriteString("  " + theme.Muted.Render(in.Message))
	}
	return theme.Pane.Width(m.contentWidth() - 2).Render(sb.String())
}
