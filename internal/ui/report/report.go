// Package report renders a dashboard snapshot outside the TUI: as plain
// text, as a Markdown document with YAML frontmatter, or as Markdown styled
// for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	"coachdash/internal/platform/markdown"
	"coachdash/internal/platform/slug"
	"coachdash/internal/ui/theme"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatPretty   = "pretty"
)

type frontmatter struct {
	Client         string         `yaml:"client"`
	Origin         string         `yaml:"origin"`
	GeneratedAt    string         `yaml:"generated_at"`
	Readiness      int            `yaml:"readiness"`
	ReadinessLevel string         `yaml:"readiness_level"`
	Balance        float64        `yaml:"balance_average"`
	BalanceLevel   string         `yaml:"balance_level"`
	ActionItems    int            `yaml:"action_items"`
	Completed      []int          `yaml:"completed,flow"`
	CompletionRate int            `yaml:"completion_rate"`
	Wheel          map[string]int `yaml:"wheel"`
}

// FileName is the report file name for a client.
func FileName(clientName string) string {
	return slug.Make(clientName) + "-dashboard.md"
}

// Render dispatches on format. width only applies to FormatPretty.
func Render(out dashboarddto.DashboardOutput, layout theme.Layout, format string, at time.Time, width int) (string, error) {
	switch format {
	case "", FormatText:
		return Text(out, layout), nil
	case FormatMarkdown:
		return Markdown(out, layout, at)
	case FormatPretty:
		return Pretty(out, layout, width)
	default:
		return "", fmt.Errorf("unknown format %q (text|markdown|pretty)", format)
	}
}

var generated = markdown.Block{Start: "<!-- coachdash:begin -->", End: "<!-- coachdash:end -->"}

// Markdown renders the full document including frontmatter.
func Markdown(out dashboarddto.DashboardOutput, layout theme.Layout, at time.Time) (string, error) {
	return Merge("", out, layout, at)
}

// Merge regenerates a previously written report. The frontmatter and the
// generated block are replaced; anything else in existing is kept.
func Merge(existing string, out dashboarddto.DashboardOutput, layout theme.Layout, at time.Time) (string, error) {
	wheel := map[string]int{}
	for _, a := range out.Areas {
		wheel[a.Key] = a.Score
	}
	meta := frontmatter{
		Client:         out.ClientName,
		Origin:         out.Origin,
		GeneratedAt:    at.UTC().Format(time.RFC3339),
		Readiness:      out.Readiness,
		ReadinessLevel: out.ReadinessLevel,
		Balance:        out.BalanceAverage,
		BalanceLevel:   out.BalanceLevel,
		ActionItems:    len(out.ActionItems),
		Completed:      append([]int{}, out.Completed...),
		CompletionRate: out.CompletionRate,
		Wheel:          wheel,
	}
	body := generated.Replace(markdown.StripFrontmatter(existing), Body(out, layout))
	return markdown.RenderFrontmatter(meta, body)
}

// Pretty styles the Markdown body for a terminal of the given width.
func Pretty(out dashboarddto.DashboardOutput, layout theme.Layout, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("new markdown renderer: %w", err)
	}
	rendered, err := r.Render(Body(out, layout))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return rendered, nil
}

// Body is the Markdown body without frontmatter.
func Body(out dashboarddto.DashboardOutput, layout theme.Layout) string {
	var sb strings.Builder
	sb.WriteString("# My Coaching Journey\n\n")
	sb.WriteString(fmt.Sprintf("Welcome back, **%s**!\n\n", out.ClientName))

	sb.WriteString("| Metric | Value | Level |\n|---|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Readiness | %d%% | %s |\n", out.Readiness, out.ReadinessLevel))
	sb.WriteString(fmt.Sprintf("| Life balance | %s/10 | %s |\n", out.BalanceDisplay, out.BalanceLevel))
	sb.WriteString(fmt.Sprintf("| Action items | %d | %d%% done |\n\n", len(out.ActionItems), out.CompletionRate))

	sb.WriteString("## Your Life Balance\n\n")
	for _, a := range out.Areas {
		sb.WriteString(fmt.Sprintf("- %s: %d/10 `%s`\n", AreaLabel(a.Icon, a.Label, layout.Emoji), a.Score, Bar(a.Score*10, 20)))
	}
	sb.WriteString("\n")

	if layout.ShowInsights && len(out.Insights) > 0 {
		sb.WriteString("## Insights\n\n")
		for _, in := range out.Insights {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", in.Title, in.Kind, in.Message))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## My Action Plan\n\n")
	if len(out.ActionItems) == 0 {
		sb.WriteString("_No action items yet. Your coach will set these in your next session._\n\n")
	} else {
		for _, item := range out.ActionItems {
			mark := " "
			if item.Done {
				mark = "x"
			}
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", mark, item.Text))
		}
		sb.WriteString("\n")
	}

	if layout.ShowQuote {
		sb.WriteString(fmt.Sprintf("> %q\n>\n> — %s\n", theme.Quote, theme.QuoteAuthor))
	}
	return sb.String()
}

// Text is a compact plain-text rendering for scripts and pipes.
func Text(out dashboarddto.DashboardOutput, layout theme.Layout) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("client:     %s (%s)\n", out.ClientName, out.Origin))
	sb.WriteString(fmt.Sprintf("readiness:  %d%% %s\n", out.Readiness, out.ReadinessLevel))
	sb.WriteString(fmt.Sprintf("balance:    %s/10 %s\n", out.BalanceDisplay, out.BalanceLevel))
	sb.WriteString(fmt.Sprintf("completion: %d%% (%d items)\n", out.CompletionRate, len(out.ActionItems)))
	sb.WriteString("\n")
	for _, a := range out.Areas {
		sb.WriteString(fmt.Sprintf("  %-22s %2d/10 %s\n", AreaLabel(a.Icon, a.Label, layout.Emoji), a.Score, Bar(a.Score*10, 20)))
	}
	if layout.ShowInsights && len(out.Insights) > 0 {
		sb.WriteString("\n")
		for _, in := range out.Insights {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", theme.InsightIcon(in.Kind), in.Title, in.Message))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(Tasks(out))
	if len(out.Dangling) > 0 {
		sb.WriteString(fmt.Sprintf("\n  completed indices without an item: %v\n", out.Dangling))
	}
	return sb.String()
}

// Tasks lists the action items with their completion marks.
func Tasks(out dashboarddto.DashboardOutput) string {
	if len(out.ActionItems) == 0 {
		return "  no action items yet\n"
	}
	var sb strings.Builder
	for _, item := range out.ActionItems {
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("  %d %s %s\n", item.Index, mark, item.Text))
	}
	return sb.String()
}

// AreaLabel prefixes the label with its icon when emoji are enabled.
func AreaLabel(icon, label string, emoji bool) string {
	if emoji && icon != "" {
		return icon + " " + label
	}
	return label
}

// Bar draws pct (clamped to 0-100 for drawing only) as a width-cell bar.
func Bar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
