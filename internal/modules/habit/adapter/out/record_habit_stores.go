package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/habit/domain"
	habitout "konkrete/internal/modules/habit/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

// Scoper resolves the record scope for the current user.
type Scoper interface {
	CurrentScope(ctx context.Context) (string, error)
}

type RecordObjectiveStore struct {
	store records.Store
	users Scoper
}

func NewRecordObjectiveStore(store records.Store, users Scoper) habitout.ObjectiveStore {
	return &RecordObjectiveStore{store: store, users: users}
}

func (s *RecordObjectiveStore) List(ctx context.Context) ([]domain.Objective, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return nil, err
	}
	var objectives []domain.Objective
	if err := s.store.Get(ctx, scope, records.NameObjectives, &objectives); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Objective{}, nil
		}
		return nil, err
	}
	return objectives, nil
}

func (s *RecordObjectiveStore) Replace(ctx context.Context, objectives []domain.Objective) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameObjectives, objectives)
}

type RecordGymDayStore struct {
	store records.Store
	users Scoper
}

func NewRecordGymDayStore(store records.Store, users Scoper) habitout.GymDayStore {
	return &RecordGymDayStore{store: store, users: users}
}

func (s *RecordGymDayStore) List(ctx context.Context) ([]string, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return nil, err
	}
	var days []string
	if err := s.store.Get(ctx, scope, records.NameGymDays, &days); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return days, nil
}

func (s *RecordGymDayStore) Replace(ctx context.Context, days []string) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameGymDays, days)
}
