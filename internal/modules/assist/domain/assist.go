package domain

import (
	"fmt"
	"strings"
	"time"
)

// Manifest names the assistant plugin binary. A relative path is
// resolved against the config home by the store.
type Manifest struct {
	Name   string `json:"name"`
	Binary string `json:"binary"`
}

// Chat roles as persisted in the history record.
const (
	RoleUser  = "user"
	RoleCoach = "coach"
)

type ChatMessage struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Canned replies for the paths where the coach cannot answer. Callers
// always get text, never an error.
const (
	OfflineReply = "I'm offline right now. Let's track some goals manually!"
	RetryReply   = "My connection is a bit fuzzy. Let's try that again later."
	EmptyReply   = "I'm focusing right now, ask me again in a second."
)

// TopicSummary and SessionSummary feed the coach context prompt.
type TopicSummary struct {
	Name         string
	TotalMinutes float64
}

type SessionSummary struct {
	TopicName string
	Minutes   int
}

// CoachContext is everything the coach knows about the account when a
// message arrives.
type CoachContext struct {
	DisplayName        string
	StreakDays         int
	TotalFocusMinutes  float64
	CurrentTopicName   string
	CurrentElapsedSecs int
	Topics             []TopicSummary
	RecentSessions     []SessionSummary
}

// Prompt renders the context block appended to the coach's system
// instruction. Only the three most recent sessions are included.
func (c CoachContext) Prompt() string {
	activity := "Not currently tracking any topic."
	if c.CurrentTopicName != "" {
		activity = fmt.Sprintf("Currently tracking: %q for %d minutes.", c.CurrentTopicName, c.CurrentElapsedSecs/60)
	}

	topics := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		topics = append(topics, fmt.Sprintf("%s (%.0fm)", t.Name, t.TotalMinutes))
	}

	recent := c.RecentSessions
	if len(recent) > 3 {
		recent = recent[:3]
	}
	sessions := make([]string, 0, len(recent))
	for _, s := range recent {
		sessions = append(sessions, fmt.Sprintf("%s for %dm", s.TopicName, s.Minutes))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Context:\n")
	fmt.Fprintf(&b, "Name: %s\n", c.DisplayName)
	fmt.Fprintf(&b, "Current Streak: %d days\n", c.StreakDays)
	fmt.Fprintf(&b, "Total Focus Time: %.0f hours\n", c.TotalFocusMinutes/60)
	fmt.Fprintf(&b, "Current Status: %s\n", activity)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(topics, ", "))
	fmt.Fprintf(&b, "Last 3 Sessions: %s\n", strings.Join(sessions, ", "))
	return b.String()
}
