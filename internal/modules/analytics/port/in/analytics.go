package in

import (
	"context"

	"konkrete/internal/modules/analytics/dto"
)

// Usecase exposes the read-only analytics derived from the session log
// and the live timer.
type Usecase interface {
	Streak(ctx context.Context) (dto.StreakOutput, error)
	Focus(ctx context.Context, window string) (dto.DistributionOutput, error)
	Weekly(ctx context.Context, weekOffset int) (dto.WeeklyOutput, error)
}
