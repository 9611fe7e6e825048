package out

import (
	"context"

	"konkrete/internal/modules/topic/domain"
)

// TopicStore persists the user's ordered topic list as one record.
type TopicStore interface {
	// List returns an empty slice when the record is absent.
	List(ctx context.Context) ([]domain.Topic, error)
	Replace(ctx context.Context, topics []domain.Topic) error
}

// IconClassifier is the best-effort external oracle. An empty icon with
// a nil error means the oracle declined to answer.
type IconClassifier interface {
	ClassifyIcon(ctx context.Context, topicName string) (string, error)
}
