package usecase

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"konkrete/internal/modules/topic/domain"
	"konkrete/internal/modules/topic/dto"
	topicin "konkrete/internal/modules/topic/port/in"
	topicout "konkrete/internal/modules/topic/port/out"
	"konkrete/internal/modules/topic/service"
	trackerin "konkrete/internal/modules/tracker/port/in"
	apperrors "konkrete/internal/platform/errors"
)

type Interactor struct {
	svc        *service.TopicService
	tracker    trackerin.Usecase
	classifier topicout.IconClassifier
	log        zerolog.Logger
}

func NewInteractor(svc *service.TopicService, tracker trackerin.Usecase, classifier topicout.IconClassifier, log zerolog.Logger) topicin.Usecase {
	return &Interactor{svc: svc, tracker: tracker, classifier: classifier, log: log}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.TopicOutput, error) {
	topic, created, err := i.svc.Add(ctx, input.Name, input.Icon)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	if !created {
		return dto.TopicOutput{}, nil
	}
	if input.Icon == "" && i.classifier != nil {
		// Fire and forget: a late answer for a deleted topic dies in
		// ApplyIcon's match-by-ID check.
		go i.classifyIcon(topic.ID, topic.Name)
	}
	return toOutput(topic), nil
}

func (i *Interactor) classifyIcon(topicID, name string) {
	ctx := context.Background()
	icon, err := i.classifier.ClassifyIcon(ctx, name)
	if err != nil {
		i.log.Debug().Err(err).Str("topic", name).Msg("icon classification failed")
		return
	}
	if icon == "" {
		return
	}
	if _, err := i.svc.ApplyIcon(ctx, topicID, icon); err != nil {
		i.log.Debug().Err(err).Str("topic", name).Msg("icon patch failed")
	}
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.TopicOutput, error) {
	topic, err := i.svc.Update(ctx, input.ID, input.Name, input.Icon, input.Color)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return toOutput(topic), nil
}

// AddManualMinutes adjusts the aggregate and, for positive deltas only,
// logs a synthetic session ending now. Negative deltas adjust the
// clamped counter without inventing an interval.
func (i *Interactor) AddManualMinutes(ctx context.Context, topicID string, minutes float64) error {
	if minutes == 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return nil
	}
	topic, err := i.svc.Get(ctx, topicID)
	if err != nil {
		return err
	}
	if _, err := i.svc.ApplyMinutes(ctx, topicID, minutes); err != nil {
		return err
	}
	if minutes > 0 {
		if _, err := i.tracker.LogManual(ctx, topicID, topic.Name, minutes); err != nil {
			return err
		}
	}
	return nil
}

// Delete stops the timer first when this topic is being tracked, so the
// trailing session exists before the cascade wipes the topic's history.
func (i *Interactor) Delete(ctx context.Context, topicID string) error {
	status, err := i.tracker.Status(ctx)
	if err != nil {
		return err
	}
	if status.ActiveTopicID == topicID {
		if _, err := i.tracker.Stop(ctx); err != nil {
			return err
		}
	}
	removed, err := i.svc.Delete(ctx, topicID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrNotFound
	}
	if _, err := i.tracker.EraseTopicHistory(ctx, topicID); err != nil {
		return err
	}
	return nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.TopicOutput, error) {
	topics, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopicOutput, 0, len(topics))
	for _, topic := range topics {
		out = append(out, toOutput(topic))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, topicID string) (dto.TopicOutput, error) {
	topic, err := i.svc.Get(ctx, topicID)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return toOutput(topic), nil
}

func toOutput(topic domain.Topic) dto.TopicOutput {
	return dto.TopicOutput{
		ID:           topic.ID,
		Name:         topic.Name,
		Color:        topic.Color,
		Icon:         topic.Icon,
		TotalMinutes: topic.TotalMinutes,
		CreatedAt:    topic.CreatedAt,
	}
}
