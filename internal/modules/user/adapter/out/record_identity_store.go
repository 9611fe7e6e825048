package out

import (
	"context"
	"errors"

	"konkrete/internal/modules/user/domain"
	userout "konkrete/internal/modules/user/port/out"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/records"
)

// RecordIdentityStore keeps the index and pointer in the global scope
// and each profile under its own account scope.
type RecordIdentityStore struct {
	store records.Store
}

func NewRecordIdentityStore(store records.Store) userout.IdentityStore {
	return &RecordIdentityStore{store: store}
}

func (s *RecordIdentityStore) Index(ctx context.Context) (map[string]string, error) {
	index := make(map[string]string)
	if err := s.store.Get(ctx, records.ScopeGlobal, records.NameUsersIndex, &index); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return index, nil
}

func (s *RecordIdentityStore) SaveIndex(ctx context.Context, index map[string]string) error {
	return s.store.Put(ctx, records.ScopeGlobal, records.NameUsersIndex, index)
}

func (s *RecordIdentityStore) ActiveID(ctx context.Context) (string, error) {
	var id string
	if err := s.store.Get(ctx, records.ScopeGlobal, records.NameActiveAccount, &id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotLoggedIn
		}
		return "", err
	}
	if id == "" {
		return "", apperrors.ErrNotLoggedIn
	}
	return id, nil
}

func (s *RecordIdentityStore) SetActiveID(ctx context.Context, id string) error {
	return s.store.Put(ctx, records.ScopeGlobal, records.NameActiveAccount, id)
}

func (s *RecordIdentityStore) ClearActive(ctx context.Context) error {
	return s.store.Delete(ctx, records.ScopeGlobal, records.NameActiveAccount)
}

func (s *RecordIdentityStore) Profile(ctx context.Context, id string) (domain.Profile, error) {
	var profile domain.Profile
	if err := s.store.Get(ctx, id, records.NameProfile, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *RecordIdentityStore) SaveProfile(ctx context.Context, profile domain.Profile) error {
	return s.store.Put(ctx, profile.ID, records.NameProfile, profile)
}
