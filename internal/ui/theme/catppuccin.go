package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Mauve    = lipgloss.Color("#cba6f7")
	Pink     = lipgloss.Color("#f5c2e7")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Teal     = lipgloss.Color("#94e2d5")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Big   = lipgloss.NewStyle().Bold(true)
	Done  = lipgloss.NewStyle().Foreground(Subtext0).Strikethrough(true)
)

// AreaColors follows the wheel-of-life display order.
var AreaColors = [8]lipgloss.Color{Mauve, Blue, Green, Pink, Red, Yellow, Lavender, Teal}

// LevelColor maps a readiness or balance band to its accent.
func LevelColor(level string) lipgloss.Color {
	switch level {
	case "Excellent":
		return Green
	case "Good":
		return Sapphire
	case "Fair":
		return Yellow
	default:
		return Red
	}
}

// InsightColor maps an insight kind to its accent.
func InsightColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return Green
	case "warning":
		return Peach
	default:
		return Sapphire
	}
}

// InsightIcon is the marker shown before an insight title.
func InsightIcon(kind string) string {
	switch kind {
	case "success":
		return "✔"
	case "warning":
		return "!"
	default:
		return "➜"
	}
}

const (
	Quote       = "The only impossible journey is the one you never begin."
	QuoteAuthor = "Tony Robbins"
)

// Layout selects the optional dashboard sections.
type Layout struct {
	Emoji        bool
	ShowInsights bool
	ShowQuote    bool
}

func DefaultLayout() Layout {
	return Layout{Emoji: true, ShowInsights: true, ShowQuote: true}
}
