package dto

import "time"

type StatusOutput struct {
	ActiveTopicID  string
	State          string
	ElapsedSeconds int
	StartedAt      *time.Time
}

type SessionOutput struct {
	ID              string
	TopicID         string
	TopicName       string
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
}

type StopOutput struct {
	Logged  bool
	Session SessionOutput
}
