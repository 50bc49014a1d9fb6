package overview_test

import (
	"strings"
	"testing"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	"coachdash/internal/ui/theme"
	"coachdash/internal/ui/views/overview"
)

func data() dashboarddto.DashboardOutput {
	return dashboarddto.DashboardOutput{
		ClientName:     "Sarah",
		Readiness:      49,
		ReadinessLevel: "Fair",
		Areas: []dashboarddto.AreaOutput{
			{Key: "health", Label: "Health", Icon: "💪", Score: 5},
			{Key: "leisure", Label: "Fun & Leisure", Icon: "🎉", Score: 6},
		},
		BalanceAverage: 6.75,
		BalanceDisplay: "6.8",
		BalanceLevel:   "Good",
		Insights:       []dashboarddto.InsightOutput{{Kind: "warning", Title: "Boost your readiness", Message: "m"}},
	}
}

func TestViewShowsScoresAndInsights(t *testing.T) {
	t.Parallel()
	m := overview.New(theme.DefaultLayout())
	m.SetWidth(100)
	m.SetData(data())
	out := m.View()
	for _, want := range []string{"49%", "6.8", "Health", "Fun & Leisure", "Boost your readiness"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestDismissAndRestoreInsights(t *testing.T) {
	t.Parallel()
	m := overview.New(theme.DefaultLayout())
	m.SetData(data())
	m.DismissInsights()
	if m.InsightsVisible() || strings.Contains(m.View(), "Boost your readiness") {
		t.Fatalf("dismissed insights must be hidden")
	}
	m.RestoreInsights()
	if !m.InsightsVisible() {
		t.Fatalf("restored insights must be visible")
	}
}

func TestLayoutDisablesInsightsAndEmoji(t *testing.T) {
	t.Parallel()
	m := overview.New(theme.Layout{})
	m.SetData(data())
	out := m.View()
	if m.InsightsVisible() || strings.Contains(out, "Boost your readiness") {
		t.Fatalf("layout must hide insights")
	}
	if strings.Contains(out, "💪") {
		t.Fatalf("layout must hide emoji")
	}
}
