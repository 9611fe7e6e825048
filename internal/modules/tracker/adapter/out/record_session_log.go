package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/tracker/domain"
	trackerout "konkrete/internal/modules/tracker/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

type RecordSessionLog struct {
	store records.Store
	users Scoper
}

func NewRecordSessionLog(store records.Store, users Scoper) trackerout.SessionLog {
	return &RecordSessionLog{store: store, users: users}
}

func (s *RecordSessionLog) List(ctx context.Context) ([]domain.Session, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return nil, err
	}
	var sessions []domain.Session
	if err := s.store.Get(ctx, scope, records.NameSessions, &sessions); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Session{}, nil
		}
		return nil, err
	}
	return sessions, nil
}

func (s *RecordSessionLog) Prepend(ctx context.Context, session domain.Session) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	sessions, err := s.List(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameSessions, append([]domain.Session{session}, sessions...))
}

func (s *RecordSessionLog) DeleteByTopic(ctx context.Context, topicID string) (int, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return 0, err
	}
	sessions, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	kept := sessions[:0]
	removed := 0
	for _, session := range sessions {
		if session.TopicID == topicID {
			removed++
			continue
		}
		kept = append(kept, session)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.Put(ctx, scope, records.NameSessions, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
