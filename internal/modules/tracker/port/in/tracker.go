package in

import (
	"context"

	"konkrete/internal/modules/tracker/dto"
)

type Usecase interface {
	Select(ctx context.Context, topicID string) (dto.StatusOutput, error)
	Start(ctx context.Context) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	Resume(ctx context.Context) (dto.StatusOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Sessions(ctx context.Context) ([]dto.SessionOutput, error)
	LogManual(ctx context.Context, topicID, topicName string, minutes float64) (dto.SessionOutput, error)
	EraseTopicHistory(ctx context.Context, topicID string) (int, error)
}
