package dto

import "time"

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

type PreferencesOutput struct {
	StreakMinSeconds int
	StreakMinTopics  int
	DailyGoalSeconds int
}

type ProfileOutput struct {
	ID          string
	Email       string
	DisplayName string
	Preferences PreferencesOutput
	CreatedAt   time.Time
}
