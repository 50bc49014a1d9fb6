package domain

// DemoRecord is the fixed record shown in demo mode when no session entry
// exists.
func DemoRecord() SessionRecord {
	return SessionRecord{
		ClientName: "Champion",
		ReadinessScores: map[string][]int{
			"commitment": {9, 8, 9, 8},
			"clarity":    {8, 7, 8, 7},
			"energy":     {7, 8, 7, 8},
			"support":    {8, 9, 8, 9},
		},
		WheelOfLife: map[string]int{
			"spirituality":  7,
			"career":        8,
			"family":        6,
			"relationships": 7,
			"health":        5,
			"personal":      8,
			"leisure":       6,
			"contribution":  7,
		},
		ActionPlan: "Schedule three 30-minute workouts this week\n" +
			"Write down your top three career goals\n" +
			"Plan a device-free dinner with family\n" +
			"Journal for ten minutes every morning",
	}
}
