package in

import (
	"context"

	"konkrete/internal/modules/topic/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.TopicOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.TopicOutput, error)
	AddManualMinutes(ctx context.Context, topicID string, minutes float64) error
	Delete(ctx context.Context, topicID string) error
	List(ctx context.Context) ([]dto.TopicOutput, error)
	Get(ctx context.Context, topicID string) (dto.TopicOutput, error)
}
