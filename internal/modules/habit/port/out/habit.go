package out

import (
	"context"

	"konkrete/internal/modules/habit/domain"
)

// ObjectiveStore persists the full objective list across all weeks.
type ObjectiveStore interface {
	List(ctx context.Context) ([]domain.Objective, error)
	Replace(ctx context.Context, objectives []domain.Objective) error
}

// GymDayStore persists the marked-day set as canonical date keys.
type GymDayStore interface {
	List(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, days []string) error
}
