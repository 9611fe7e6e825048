package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"konkrete/internal/modules/user/domain"
	"konkrete/internal/modules/user/port/out"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/id"
)

// AccountService implements local offline accounts. There is no remote
// authority; the index, profiles and active pointer all live in the
// record store.
type AccountService struct {
	clock clock.Clock
	idGen id.Generator
	store out.IdentityStore
}

func NewAccountService(clk clock.Clock, idGen id.Generator, store out.IdentityStore) *AccountService {
	return &AccountService{clock: clk, idGen: idGen, store: store}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account without signing it in.
func (s *AccountService) Register(ctx context.Context, email, displayName, password string) (domain.Profile, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.Profile{}, fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	index, err := s.store.Index(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if _, taken := index[email]; taken {
		return domain.Profile{}, apperrors.ErrUserExists
	}
	profile := domain.Profile{
		ID:          s.idGen.New(),
		Email:       email,
		DisplayName: strings.TrimSpace(displayName),
		Password:    password,
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   s.clock.Now(),
	}
	if profile.DisplayName == "" {
		profile.DisplayName = email
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	index[email] = profile.ID
	if err := s.store.SaveIndex(ctx, index); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Profile, error) {
	index, err := s.store.Index(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	id, found := index[normalizeEmail(email)]
	if !found {
		return domain.Profile{}, apperrors.ErrBadCredentials
	}
	profile, err := s.store.Profile(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Profile{}, apperrors.ErrBadCredentials
		}
		return domain.Profile{}, err
	}
	if profile.Password != password {
		return domain.Profile{}, apperrors.ErrBadCredentials
	}
	if err := s.store.SetActiveID(ctx, profile.ID); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// LoginAsGuest restores the guest account or creates it on first use.
func (s *AccountService) LoginAsGuest(ctx context.Context) (domain.Profile, error) {
	index, err := s.store.Index(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if guestID, found := index[domain.GuestEmail]; found {
		profile, err := s.store.Profile(ctx, guestID)
		if err == nil {
			if err := s.store.SetActiveID(ctx, profile.ID); err != nil {
				return domain.Profile{}, err
			}
			return profile, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.Profile{}, err
		}
		// Dangling index entry: fall through and recreate.
	}
	profile := domain.Profile{
		ID:          s.idGen.New(),
		Email:       domain.GuestEmail,
		DisplayName: "Guest",
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	index[domain.GuestEmail] = profile.ID
	if err := s.store.SaveIndex(ctx, index); err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.SetActiveID(ctx, profile.ID); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.store.ClearActive(ctx)
}

// Current resolves the signed-in profile. A pointer naming a deleted
// profile is removed so later calls report logged-out cleanly.
func (s *AccountService) Current(ctx context.Context) (domain.Profile, error) {
	activeID, err := s.store.ActiveID(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	profile, err := s.store.Profile(ctx, activeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if clearErr := s.store.ClearActive(ctx); clearErr != nil {
				return domain.Profile{}, clearErr
			}
			return domain.Profile{}, apperrors.ErrNotLoggedIn
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

// CurrentScope returns the active account's ID as the record scope for
// the per-user stores.
func (s *AccountService) CurrentScope(ctx context.Context) (string, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, displayName string) (domain.Profile, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return profile, nil
	}
	profile.DisplayName = displayName
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// UpdatePreferences overwrites the analytics thresholds. Negative
// values are clamped to zero.
func (s *AccountService) UpdatePreferences(ctx context.Context, streakMinSeconds, streakMinTopics, dailyGoalSeconds int) (domain.Profile, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Preferences = domain.Preferences{
		StreakMinSeconds: max(streakMinSeconds, 0),
		StreakMinTopics:  max(streakMinTopics, 0),
		DailyGoalSeconds: max(dailyGoalSeconds, 0),
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}
