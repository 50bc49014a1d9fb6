package domain

import "sort"

type LifeArea struct {
	Key   string
	Label string
	Icon  string
}

// LifeAreas lists the eight wheel-of-life categories in display order.
var LifeAreas = [8]LifeArea{
	{Key: "spirituality", Label: "Spirituality", Icon: "🙏"},
	{Key: "career", Label: "Career", Icon: "💼"},
	{Key: "family", Label: "Family", Icon: "👨‍👩‍👧"},
	{Key: "relationships", Label: "Relationships", Icon: "❤️"},
	{Key: "health", Label: "Health", Icon: "💪"},
	{Key: "personal", Label: "Personal Growth", Icon: "📚"},
	{Key: "leisure", Label: "Fun & Leisure", Icon: "🎉"},
	{Key: "contribution", Label: "Contribution", Icon: "🌟"},
}

type AreaScore struct {
	Area  LifeArea
	Score int
}

func ZeroWheel() map[string]int {
	wheel := make(map[string]int, len(LifeAreas))
	for _, a := range LifeAreas {
		wheel[a.Key] = 0
	}
	return wheel
}

// AreaScores returns the score of each fixed area in display order. Keys
// missing from wheel score 0; keys outside the fixed set are ignored.
func AreaScores(wheel map[string]int) []AreaScore {
	out := make([]AreaScore, len(LifeAreas))
	for i, a := range LifeAreas {
		out[i] = AreaScore{Area: a, Score: wheel[a.Key]}
	}
	return out
}

// LowestAreas returns up to n areas with the lowest scores. Ties keep
// display order.
func LowestAreas(wheel map[string]int, n int) []AreaScore {
	scores := AreaScores(wheel)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score < scores[j].Score })
	if n < 0 {
		n = 0
	}
	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n]
}
