package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/topic/domain"
	topicout "konkrete/internal/modules/topic/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

// Scoper resolves the record scope for the current user.
type Scoper interface {
	CurrentScope(ctx context.Context) (string, error)
}

type RecordTopicStore struct {
	store records.Store
	users Scoper
}

func NewRecordTopicStore(store records.Store, users Scoper) topicout.TopicStore {
	return &RecordTopicStore{store: store, users: users}
}

func (s *RecordTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return nil, err
	}
	var topics []domain.Topic
	if err := s.store.Get(ctx, scope, records.NameTopics, &topics); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Topic{}, nil
		}
		return nil, err
	}
	return topics, nil
}

func (s *RecordTopicStore) Replace(ctx context.Context, topics []domain.Topic) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameTopics, topics)
}
