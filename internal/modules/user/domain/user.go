package domain

import "time"

// GuestEmail is the reserved address of the local guest account.
const GuestEmail = "guest@local"

// Preferences tune the analytics thresholds per account.
type Preferences struct {
	StreakMinSeconds int `json:"streak_min_seconds"`
	StreakMinTopics  int `json:"streak_min_topics"`
	DailyGoalSeconds int `json:"daily_goal_seconds"`
}

// DefaultPreferences returns the thresholds a fresh account starts
// with: ten focused minutes on one topic, no daily goal.
func DefaultPreferences() Preferences {
	return Preferences{StreakMinSeconds: 600, StreakMinTopics: 1}
}

// Profile is one local account. Everything lives on this machine, so
// the password is stored as entered.
type Profile struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"display_name"`
	Password    string      `json:"password"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}
