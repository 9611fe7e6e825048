package out

import "context"

// Preferences are the tunables analytics honors per account.
type Preferences struct {
	StreakMinSeconds int
	StreakMinTopics  int
	DailyGoalMinutes float64
}

// PreferenceSource yields the signed-in account's analytics settings;
// implementations fall back to defaults when nothing is stored.
type PreferenceSource interface {
	Preferences(ctx context.Context) (Preferences, error)
}
