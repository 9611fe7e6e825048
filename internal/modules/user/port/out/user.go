package out

import (
	"context"

	"konkrete/internal/modules/user/domain"
)

// IdentityStore persists the account index, the per-account profiles
// and the active-account pointer.
type IdentityStore interface {
	// Index maps normalized email to account ID.
	Index(ctx context.Context) (map[string]string, error)
	SaveIndex(ctx context.Context, index map[string]string) error

	// ActiveID returns apperrors.ErrNotLoggedIn when no pointer is set.
	ActiveID(ctx context.Context) (string, error)
	SetActiveID(ctx context.Context, id string) error
	ClearActive(ctx context.Context) error

	// Profile returns apperrors.ErrNotFound for an unknown account.
	Profile(ctx context.Context, id string) (domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
}
