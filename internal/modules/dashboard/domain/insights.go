package domain

import "fmt"

type InsightKind string

const (
	InsightSuccess InsightKind = "success"
	InsightWarning InsightKind = "warning"
	InsightInfo    InsightKind = "info"
)

type Insight struct {
	Kind    InsightKind
	Title   string
	Message string
}

const focusThreshold = 6

// Insights evaluates every advisory rule in priority order and returns all
// that apply. Readiness between 50 and 79 yields no readiness entry.
func Insights(readiness int, wheel map[string]int, itemCount, completedCount int) []Insight {
	out := []Insight{}
	switch {
	case readiness >= 80:
		out = append(out, Insight{
			Kind:    InsightSuccess,
			Title:   "Excellent readiness",
			Message: "You're primed for transformation. Keep the momentum going.",
		})
	case readiness < 50:
		out = append(out, Insight{
			Kind:    InsightWarning,
			Title:   "Boost your readiness",
			Message: "Revisit your goals with your coach to strengthen your commitment.",
		})
	}

	lowest := LowestAreas(wheel, 2)
	if len(lowest) > 0 && lowest[0].Score < focusThreshold {
		area := lowest[0]
		out = append(out, Insight{
			Kind:    InsightInfo,
			Title:   "Focus on " + area.Area.Label,
			Message: fmt.Sprintf("%s scored %d/10. Small steps here lift your whole wheel.", area.Area.Label, area.Score),
		})
	}

	if itemCount > 0 && completedCount > 0 {
		pct := CompletionRate(completedCount, itemCount)
		out = append(out, Insight{
			Kind:    InsightSuccess,
			Title:   fmt.Sprintf("%d%% tasks completed", pct),
			Message: fmt.Sprintf("You've checked off %d of %d action items.", completedCount, itemCount),
		})
	}
	return out
}
