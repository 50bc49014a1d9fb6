package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Gauge draws pct as a solid bar of the given width. Values outside 0-100
// are clamped for drawing only.
func Gauge(pct float64, width int, color lipgloss.Color) string {
	if width < 4 {
		width = 4
	}
	bar := progress.New(progress.WithSolidFill(string(color)), progress.WithoutPercentage())
	bar.Width = width
	bar.EmptyColor = "#45475a"
	return bar.ViewAs(clampPercent(pct) / 100)
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
