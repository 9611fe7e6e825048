package domain

import "time"

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Snapshot is the persisted ephemeral timer. StartedAt is non-nil iff
// the state is running; ElapsedSeconds is authoritative only when not
// running.
type Snapshot struct {
	ActiveTopicID  string     `json:"active_topic_id"`
	State          State      `json:"timer_state"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
}

// Elapsed reports live elapsed seconds. While running it is derived
// from the reference time, never from the stored counter.
func (s Snapshot) Elapsed(now time.Time) int {
	if s.State == StateRunning && s.StartedAt != nil {
		elapsed := int(now.Sub(*s.StartedAt).Seconds())
		if elapsed < 0 {
			return 0
		}
		return elapsed
	}
	return s.ElapsedSeconds
}

// Recover normalizes a snapshot loaded after a restart. A snapshot that
// was running keeps running; its counter is recomputed from wall-clock
// time so suspension or a kill while running cannot shrink it.
func Recover(s Snapshot, now time.Time) Snapshot {
	switch s.State {
	case StateRunning:
		if s.StartedAt == nil {
			s.State = StateIdle
			s.ElapsedSeconds = 0
			return s
		}
		s.ElapsedSeconds = s.Elapsed(now)
	case StatePaused:
		// stored counter is trusted
	default:
		s.State = StateIdle
	}
	return s
}

// Session is one completed, immutable timed interval.
type Session struct {
	ID              string    `json:"id"`
	TopicID         string    `json:"topic_id"`
	TopicName       string    `json:"topic_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
}
