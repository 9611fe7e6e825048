package dto

import "time"

// StreakOutput reports the current consecutive-day streak and the
// thresholds it was computed against.
type StreakOutput struct {
	Days       int
	MinSeconds int
	MinTopics  int
}

// DistributionEntryOutput is one topic row of the focus distribution.
type DistributionEntryOutput struct {
	TopicID string
	Name    string
	Color   string
	Seconds int
	Share   float64
}

type DistributionOutput struct {
	Window       string
	Entries      []DistributionEntryOutput
	TotalSeconds int
}

// WeeklyOutput is one week of per-day minutes, Monday first.
type WeeklyOutput struct {
	WeekStart   time.Time
	Minutes     [7]float64
	MaxScale    float64
	GoalMinutes float64
}
