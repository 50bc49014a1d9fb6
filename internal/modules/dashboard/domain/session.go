package domain

import "strings"

// ReadinessMaxTotal is the maximum readiness sub-score sum produced by the
// upstream assessment flow.
const ReadinessMaxTotal = 160

// Storage keys shared with the assessment flow.
const (
	SessionEntryKey        = "coaching_current_session"
	CompletedTasksEntryKey = "coaching_completed_tasks"
)

// SessionRecord is the persisted session entry as written by the assessment flow.
type SessionRecord struct {
	ClientName      string           `json:"clientName"`
	ReadinessScores map[string][]int `json:"readinessScores"`
	WheelOfLife     map[string]int   `json:"wheelOfLife"`
	ActionPlan      string           `json:"actionPlan"`
}

// ReadinessTotal sums every sub-score across all categories.
func (r SessionRecord) ReadinessTotal() int {
	total := 0
	for _, scores := range r.ReadinessScores {
		for _, s := range scores {
			total += s
		}
	}
	return total
}

// ActionItems splits the action plan into its non-empty lines, in order.
func (r SessionRecord) ActionItems() []string {
	if r.ActionPlan == "" {
		return []string{}
	}
	lines := strings.Split(r.ActionPlan, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

type Origin string

const (
	OriginStored  Origin = "stored"
	OriginDemo    Origin = "demo"
	OriginDefault Origin = "default"
)

// Profile is the working record the dashboard renders from.
type Profile struct {
	Origin      Origin
	ClientName  string
	Readiness   int
	Wheel       map[string]int
	ActionItems []string
}

// DefaultProfile is shown when no usable session entry exists.
func DefaultProfile(clientName string) Profile {
	return Profile{
		Origin:      OriginDefault,
		ClientName:  clientName,
		Readiness:   0,
		Wheel:       ZeroWheel(),
		ActionItems: []string{},
	}
}

// NewProfile derives the working record from a parsed session entry.
func NewProfile(record SessionRecord, origin Origin, defaultName string) Profile {
	name := record.ClientName
	if name == "" {
		name = defaultName
	}
	wheel := record.WheelOfLife
	if wheel == nil {
		wheel = ZeroWheel()
	}
	return Profile{
		Origin:      origin,
		ClientName:  name,
		Readiness:   ReadinessPercent(record.ReadinessTotal()),
		Wheel:       wheel,
		ActionItems: record.ActionItems(),
	}
}
