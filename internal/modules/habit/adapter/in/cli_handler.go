package in

import (
	"context"

	habitdto "konkrete/internal/modules/habit/dto"
	habitin "konkrete/internal/modules/habit/port/in"
)

type CLIHandler struct {
	usecase habitin.Usecase
}

func NewCLIHandler(usecase habitin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddObjective(ctx context.Context, text string) (habitdto.ObjectiveOutput, bool, error) {
	return h.usecase.AddObjective(ctx, text)
}

func (h CLIHandler) ToggleObjective(ctx context.Context, id string) (habitdto.ObjectiveOutput, error) {
	return h.usecase.ToggleObjective(ctx, id)
}

func (h CLIHandler) DeleteObjective(ctx context.Context, id string) error {
	return h.usecase.DeleteObjective(ctx, id)
}

func (h CLIHandler) WeekObjectives(ctx context.Context) ([]habitdto.ObjectiveOutput, error) {
	return h.usecase.WeekObjectives(ctx)
}

func (h CLIHandler) ToggleGymDay(ctx context.Context, date string) (bool, error) {
	return h.usecase.ToggleGymDay(ctx, date)
}

func (h CLIHandler) GymDays(ctx context.Context, year, month int) ([]string, error) {
	return h.usecase.GymDays(ctx, year, month)
}
