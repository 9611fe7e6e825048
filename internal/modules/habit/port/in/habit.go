package in

import (
	"context"

	"konkrete/internal/modules/habit/dto"
)

// Usecase covers the two lightweight habit trackers: weekly objectives
// and the gym-day calendar.
type Usecase interface {
	AddObjective(ctx context.Context, text string) (dto.ObjectiveOutput, bool, error)
	ToggleObjective(ctx context.Context, id string) (dto.ObjectiveOutput, error)
	DeleteObjective(ctx context.Context, id string) error
	WeekObjectives(ctx context.Context) ([]dto.ObjectiveOutput, error)

	ToggleGymDay(ctx context.Context, date string) (marked bool, err error)
	GymDays(ctx context.Context, year int, month int) ([]string, error)
}
