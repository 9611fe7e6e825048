package usecase

import (
	"context"

	"konkrete/internal/modules/habit/domain"
	"konkrete/internal/modules/habit/dto"
	"konkrete/internal/modules/habit/service"
)

// Interactor adapts the habit service to the inbound port.
type Interactor struct {
	svc *service.HabitService
}

func NewInteractor(svc *service.HabitService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddObjective(ctx context.Context, text string) (dto.ObjectiveOutput, bool, error) {
	objective, created, err := i.svc.AddObjective(ctx, text)
	if err != nil || !created {
		return dto.ObjectiveOutput{}, false, err
	}
	return toOutput(objective), true, nil
}

func (i *Interactor) ToggleObjective(ctx context.Context, id string) (dto.ObjectiveOutput, error) {
	objective, err := i.svc.ToggleObjective(ctx, id)
	if err != nil {
		return dto.ObjectiveOutput{}, err
	}
	return toOutput(objective), nil
}

func (i *Interactor) DeleteObjective(ctx context.Context, id string) error {
	return i.svc.DeleteObjective(ctx, id)
}

func (i *Interactor) WeekObjectives(ctx context.Context) ([]dto.ObjectiveOutput, error) {
	objectives, err := i.svc.WeekObjectives(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.ObjectiveOutput, 0, len(objectives))
	for _, o := range objectives {
		outputs = append(outputs, toOutput(o))
	}
	return outputs, nil
}

func (i *Interactor) ToggleGymDay(ctx context.Context, date string) (bool, error) {
	return i.svc.ToggleGymDay(ctx, date)
}

func (i *Interactor) GymDays(ctx context.Context, year, month int) ([]string, error) {
	return i.svc.GymDays(ctx, year, month)
}

func toOutput(o domain.Objective) dto.ObjectiveOutput {
	return dto.ObjectiveOutput{
		ID:        o.ID,
		Text:      o.Text,
		Completed: o.Completed,
		Year:      o.Year,
		Week:      o.Week,
		CreatedAt: o.CreatedAt,
	}
}
