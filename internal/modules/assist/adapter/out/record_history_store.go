package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/assist/domain"
	assistout "konkrete/internal/modules/assist/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

// Scoper resolves the record scope for the current user.
type Scoper interface {
	CurrentScope(ctx context.Context) (string, error)
}

type RecordHistoryStore struct {
	store records.Store
	users Scoper
}

func NewRecordHistoryStore(store records.Store, users Scoper) assistout.HistoryStore {
	return &RecordHistoryStore{store: store, users: users}
}

func (s *RecordHistoryStore) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return nil, err
	}
	var history []domain.ChatMessage
	if err := s.store.Get(ctx, scope, records.NameChatHistory, &history); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.ChatMessage{}, nil
		}
		return nil, err
	}
	return history, nil
}

func (s *RecordHistoryStore) Save(ctx context.Context, history []domain.ChatMessage) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameChatHistory, history)
}

func (s *RecordHistoryStore) Clear(ctx context.Context) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, scope, records.NameChatHistory)
}
