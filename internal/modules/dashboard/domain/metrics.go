package domain

import (
	"fmt"
	"math"
)

type Level string

const (
	LevelExcellent  Level = "Excellent"
	LevelGood       Level = "Good"
	LevelFair       Level = "Fair"
	LevelNeedsFocus Level = "Needs Focus"
)

// Round rounds half up toward positive infinity, so -2.5 becomes -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ReadinessPercent normalises a sub-score sum against ReadinessMaxTotal.
// The result is not clamped.
func ReadinessPercent(total int) int {
	return Round(float64(total) / ReadinessMaxTotal * 100)
}

// BalanceAverage is the mean of the eight fixed areas.
func BalanceAverage(wheel map[string]int) float64 {
	sum := 0
	for _, a := range LifeAreas {
		sum += wheel[a.Key]
	}
	return float64(sum) / float64(len(LifeAreas))
}

// FormatBalance renders an average with one decimal, rounding halves up.
func FormatBalance(avg float64) string {
	return fmt.Sprintf("%.1f", float64(Round(avg*10))/10)
}

// CompletionRate is 0 when there are no items, otherwise the rounded
// percentage of completed over total. completed may exceed total when the
// completed set holds dangling indices.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return Round(100 * float64(completed) / float64(total))
}

// LevelFor bands a 0-100 score. Lower bounds are inclusive.
func LevelFor(score float64) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelNeedsFocus
	}
}
