package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"coachdash/internal/modules/dashboard/domain"
)

func sarahRecord() domain.SessionRecord {
	return domain.SessionRecord{
		ClientName:      "Sarah",
		ReadinessScores: map[string][]int{"a": {40}, "b": {38}},
		WheelOfLife: map[string]int{
			"spirituality": 7, "career": 8, "family": 6, "relationships": 7,
			"health": 5, "personal": 8, "leisure": 6, "contribution": 7,
		},
		ActionPlan: "Task A\nTask B",
	}
}

func TestDeriveSarahScenario(t *testing.T) {
	t.Parallel()
	profile := domain.NewProfile(sarahRecord(), domain.OriginStored, "Welcome")
	view := domain.Derive(profile, nil)

	if view.ClientName != "Sarah" || view.Readiness != 49 {
		t.Fatalf("unexpected name/readiness: %s %d", view.ClientName, view.Readiness)
	}
	if view.ReadinessLevel != domain.LevelFair {
		t.Fatalf("expected Fair readiness, got %s", view.ReadinessLevel)
	}
	if view.BalanceAverage != 6.75 || view.BalanceDisplay != "6.8" || view.BalanceLevel != domain.LevelGood {
		t.Fatalf("unexpected balance: %v %s %s", view.BalanceAverage, view.BalanceDisplay, view.BalanceLevel)
	}
	want := []domain.ActionItem{{Index: 0, Text: "Task A"}, {Index: 1, Text: "Task B"}}
	if diff := cmp.Diff(want, view.ActionItems); diff != "" {
		t.Fatalf("action items mismatch (-want +got):\n%s", diff)
	}
	if view.CompletionRate != 0 {
		t.Fatalf("expected 0%% completion, got %d", view.CompletionRate)
	}
	if len(view.FocusAreas) != 2 || view.FocusAreas[0].Area.Key != "health" || view.FocusAreas[1].Area.Key != "family" {
		t.Fatalf("unexpected focus areas: %+v", view.FocusAreas)
	}
}

func TestDeriveAcceptsDanglingCompletedIndex(t *testing.T) {
	t.Parallel()
	profile := domain.NewProfile(sarahRecord(), domain.OriginStored, "Welcome")
	view := domain.Derive(profile, domain.CompletedSet{5})
	for _, item := range view.ActionItems {
		if item.Done {
			t.Fatalf("no real item should be done: %+v", item)
		}
	}
	if view.CompletionRate != 50 {
		t.Fatalf("completion counts the set against 2 items, got %d", view.CompletionRate)
	}
	if diff := cmp.Diff([]int{5}, view.Dangling); diff != "" {
		t.Fatalf("dangling mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveZeroItemsIgnoresCompletedSet(t *testing.T) {
	t.Parallel()
	view := domain.Derive(domain.DefaultProfile("Welcome"), domain.CompletedSet{0, 1, 2})
	if view.CompletionRate != 0 {
		t.Fatalf("completion must be 0 with no items, got %d", view.CompletionRate)
	}
	for _, in := range view.Insights {
		if in.Kind == domain.InsightSuccess && in.Title != "Excellent readiness" {
			t.Fatalf("no completion insight without items: %+v", in)
		}
	}
}

func TestNewProfileDefaults(t *testing.T) {
	t.Parallel()
	profile := domain.NewProfile(domain.SessionRecord{ActionPlan: "\nOne\n\n Two \n"}, domain.OriginStored, "Champion")
	if profile.ClientName != "Champion" {
		t.Fatalf("empty name must fall back, got %q", profile.ClientName)
	}
	if diff := cmp.Diff(domain.ZeroWheel(), profile.Wheel); diff != "" {
		t.Fatalf("absent wheel must be all zero (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"One", " Two "}, profile.ActionItems); diff != "" {
		t.Fatalf("only empty lines are dropped (-want +got):\n%s", diff)
	}
}

func TestDemoRecordIsExcellent(t *testing.T) {
	t.Parallel()
	view := domain.Derive(domain.NewProfile(domain.DemoRecord(), domain.OriginDemo, "Welcome"), nil)
	if view.Readiness != 80 || view.ReadinessLevel != domain.LevelExcellent {
		t.Fatalf("demo readiness should be 80/Excellent, got %d/%s", view.Readiness, view.ReadinessLevel)
	}
	if len(view.ActionItems) != 4 || view.Origin != domain.OriginDemo {
		t.Fatalf("unexpected demo view: %+v", view)
	}
}
