package out

import (
	"context"

	"konkrete/internal/modules/tracker/domain"
)

// SnapshotStore persists the active timer. Load returns
// apperrors.ErrNoActiveTimer when no snapshot exists.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
	// Clear removes the record entirely; an idle timer leaves nothing
	// behind to resurrect on the next login.
	Clear(ctx context.Context) error
}

// SessionLog is the append-only session history, newest first.
type SessionLog interface {
	List(ctx context.Context) ([]domain.Session, error)
	Prepend(ctx context.Context, session domain.Session) error
	DeleteByTopic(ctx context.Context, topicID string) (int, error)
}

// TopicRef is the slice of topic state the tracker needs on stop.
type TopicRef struct {
	ID   string
	Name string
}

// TopicDirectory lets the tracker resolve and credit topics without
// depending on the topic module's layers.
type TopicDirectory interface {
	// Lookup returns apperrors.ErrNotFound for unknown topics.
	Lookup(ctx context.Context, topicID string) (TopicRef, error)
	AddTrackedMinutes(ctx context.Context, topicID string, minutes float64) error
}
