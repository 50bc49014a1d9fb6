package dto

type AreaOutput struct {
	Key   string
	Label string
	Icon  string
	Score int
}

type InsightOutput struct {
	Kind    string
	Title   string
	Message string
}

type ActionItemOutput struct {
	Index int
	Text  string
	Done  bool
}

type DashboardOutput struct {
	Origin         string
	ClientName     string
	Readiness      int
	ReadinessLevel string
	Areas          []AreaOutput
	BalanceAverage float64
	BalanceDisplay string
	BalanceLevel   string
	ActionItems    []ActionItemOutput
	Completed      []int
	Dangling       []int
	CompletionRate int
	Insights       []InsightOutput
	FocusAreas     []AreaOutput
}

type ToggleTaskInput struct {
	Index int
}

type ImportSessionInput struct {
	Payload []byte
}
