package in

import (
	"context"

	analyticsdto "konkrete/internal/modules/analytics/dto"
	analyticsin "konkrete/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Streak(ctx context.Context) (analyticsdto.StreakOutput, error) {
	return h.usecase.Streak(ctx)
}

func (h CLIHandler) Focus(ctx context.Context, window string) (analyticsdto.DistributionOutput, error) {
	return h.usecase.Focus(ctx, window)
}

func (h CLIHandler) Weekly(ctx context.Context, weekOffset int) (analyticsdto.WeeklyOutput, error) {
	return h.usecase.Weekly(ctx, weekOffset)
}
