package domain

type ActionItem struct {
	Index int
	Text  string
	Done  bool
}

// ViewState is everything one render of the dashboard needs. It is
// recomputed from the profile and completed set after every change.
type ViewState struct {
	Origin         Origin
	ClientName     string
	Readiness      int
	ReadinessLevel Level
	Areas          []AreaScore
	BalanceAverage float64
	BalanceDisplay string
	BalanceLevel   Level
	ActionItems    []ActionItem
	Completed      CompletedSet
	Dangling       []int
	CompletionRate int
	Insights       []Insight
	FocusAreas     []AreaScore
}

func Derive(profile Profile, completed CompletedSet) ViewState {
	avg := BalanceAverage(profile.Wheel)
	items := make([]ActionItem, len(profile.ActionItems))
	for i, text := range profile.ActionItems {
		items[i] = ActionItem{Index: i, Text: text, Done: completed.Contains(i)}
	}
	done := make(CompletedSet, len(completed))
	copy(done, completed)

	return ViewState{
		Origin:         profile.Origin,
		ClientName:     profile.ClientName,
		Readiness:      profile.Readiness,
		ReadinessLevel: LevelFor(float64(profile.Readiness)),
		Areas:          AreaScores(profile.Wheel),
		BalanceAverage: avg,
		BalanceDisplay: FormatBalance(avg),
		BalanceLevel:   LevelFor(avg * 10),
		ActionItems:    items,
		Completed:      done,
		Dangling:       completed.Dangling(len(items)),
		CompletionRate: CompletionRate(len(completed), len(items)),
		Insights:       Insights(profile.Readiness, profile.Wheel, len(items), len(completed)),
		FocusAreas:     LowestAreas(profile.Wheel, 2),
	}
}
