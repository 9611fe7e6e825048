package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/tracker/domain"
	trackerout "konkrete/internal/modules/tracker/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

// Scoper resolves the record scope for the current user.
type Scoper interface {
	CurrentScope(ctx context.Context) (string, error)
}

type RecordSnapshotStore struct {
	store records.Store
	users Scoper
}

func NewRecordSnapshotStore(store records.Store, users Scoper) trackerout.SnapshotStore {
	return &RecordSnapshotStore{store: store, users: users}
}

func (s *RecordSnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snapshot := domain.Snapshot{}
	if err := s.store.Get(ctx, scope, records.NameActiveTimer, &snapshot); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Snapshot{}, apperrors.ErrNoActiveTimer
		}
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}

func (s *RecordSnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, scope, records.NameActiveTimer, snapshot)
}

func (s *RecordSnapshotStore) Clear(ctx context.Context) error {
	scope, err := s.users.CurrentScope(ctx)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, scope, records.NameActiveTimer)
}
