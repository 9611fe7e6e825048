package service

import (
	"context"
	"math"
	"strings"

	"konkrete/internal/modules/topic/domain"
	topicout "konkrete/internal/modules/topic/port/out"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/id"
)

type TopicService struct {
	clock clock.Clock
	idGen id.Generator
	store topicout.TopicStore
}

func NewTopicService(clock clock.Clock, idGen id.Generator, store topicout.TopicStore) *TopicService {
	return &TopicService{clock: clock, idGen: idGen, store: store}
}

func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	return s.store.List(ctx)
}

func (s *TopicService) Get(ctx context.Context, topicID string) (domain.Topic, error) {
	topics, err := s.store.List(ctx)
	if err != nil {
		return domain.Topic{}, err
	}
	for _, topic := range topics {
		if topic.ID == topicID {
			return topic, nil
		}
	}
	return domain.Topic{}, apperrors.ErrNotFound
}

// Add creates a topic with round-robin color and, when no icon is given,
// a round-robin icon. An empty name is a silent no-op.
func (s *TopicService) Add(ctx context.Context, name, icon string) (domain.Topic, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Topic{}, false, nil
	}
	topics, err := s.store.List(ctx)
	if err != nil {
		return domain.Topic{}, false, err
	}
	if icon == "" {
		icon = domain.IconAt(len(topics))
	}
	topic := domain.Topic{
		ID:        s.idGen.New(),
		Name:      name,
		Color:     domain.ColorAt(len(topics)),
		Icon:      icon,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Replace(ctx, append(topics, topic)); err != nil {
		return domain.Topic{}, false, err
	}
	return topic, true, nil
}

// Update merge-patches name, icon and color; empty fields stay unchanged.
func (s *TopicService) Update(ctx context.Context, topicID, name, icon, color string) (domain.Topic, error) {
	topics, err := s.store.List(ctx)
	if err != nil {
		return domain.Topic{}, err
	}
	for i := range topics {
		if topics[i].ID != topicID {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			topics[i].Name = name
		}
		if icon != "" {
			topics[i].Icon = icon
		}
		if color != "" {
			topics[i].Color = color
		}
		if err := s.store.Replace(ctx, topics); err != nil {
			return domain.Topic{}, err
		}
		return topics[i], nil
	}
	return domain.Topic{}, apperrors.ErrNotFound
}

// ApplyMinutes adds a (possibly negative) delta to the running
// aggregate. Zero and non-finite deltas are silent no-ops.
func (s *TopicService) ApplyMinutes(ctx context.Context, topicID string, delta float64) (domain.Topic, error) {
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return domain.Topic{}, nil
	}
	topics, err := s.store.List(ctx)
	if err != nil {
		return domain.Topic{}, err
	}
	for i := range topics {
		if topics[i].ID != topicID {
			continue
		}
		topics[i].AddMinutes(delta)
		if err := s.store.Replace(ctx, topics); err != nil {
			return domain.Topic{}, err
		}
		return topics[i], nil
	}
	return domain.Topic{}, apperrors.ErrNotFound
}

// ApplyIcon patches the icon iff the topic still exists, matched by ID.
// A response racing a deletion lands here as a clean no-op.
func (s *TopicService) ApplyIcon(ctx context.Context, topicID, icon string) (bool, error) {
	if !domain.ValidIcon(icon) {
		return false, nil
	}
	topics, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range topics {
		if topics[i].ID != topicID {
			continue
		}
		topics[i].Icon = icon
		if err := s.store.Replace(ctx, topics); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *TopicService) Delete(ctx context.Context, topicID string) (bool, error) {
	topics, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}
	kept := topics[:0]
	removed := false
	for _, topic := range topics {
		if topic.ID == topicID {
			removed = true
			continue
		}
		kept = append(kept, topic)
	}
	if !removed {
		return false, nil
	}
	if err := s.store.Replace(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
