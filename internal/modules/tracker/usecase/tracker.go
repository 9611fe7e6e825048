package usecase

import (
	"context"
	"errors"
	"time"

	"konkrete/internal/modules/tracker/domain"
	"konkrete/internal/modules/tracker/dto"
	trackerin "konkrete/internal/modules/tracker/port/in"
	trackerout "konkrete/internal/modules/tracker/port/out"
	"konkrete/internal/modules/tracker/service"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/id"
)

type Interactor struct {
	svc    *service.TimerService
	clock  clock.Clock
	idGen  id.Generator
	log    trackerout.SessionLog
	topics trackerout.TopicDirectory
}

func NewInteractor(svc *service.TimerService, clock clock.Clock, idGen id.Generator, log trackerout.SessionLog, topics trackerout.TopicDirectory) trackerin.Usecase {
	return &Interactor{svc: svc, clock: clock, idGen: idGen, log: log, topics: topics}
}

func (i *Interactor) Select(ctx context.Context, topicID string) (dto.StatusOutput, error) {
	snapshot, err := i.svc.Select(ctx, topicID)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.toStatus(snapshot), nil
}

func (i *Interactor) Start(ctx context.Context) (dto.StatusOutput, error) {
	snapshot, err := i.svc.Start(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.toStatus(snapshot), nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.StatusOutput, error) {
	snapshot, err := i.svc.Pause(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.toStatus(snapshot), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.StatusOutput, error) {
	snapshot, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.toStatus(snapshot), nil
}

// Stop closes the active interval. With nonzero elapsed and a still
// existing topic it prepends one session and credits the topic with
// elapsed/60 fractional minutes. The machine resets to idle either way.
func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	cur, err := i.svc.Current(ctx)
	if err != nil {
		return dto.StopOutput{}, err
	}
	out := dto.StopOutput{}
	now := i.clock.Now()
	elapsed := cur.Elapsed(now)

	if cur.ActiveTopicID != "" && elapsed > 0 {
		ref, err := i.topics.Lookup(ctx, cur.ActiveTopicID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			// topic vanished under the timer; nothing to credit
		case err != nil:
			return dto.StopOutput{}, err
		default:
			session := domain.Session{
				ID:              i.idGen.New(),
				TopicID:         ref.ID,
				TopicName:       ref.Name,
				StartTime:       now.Add(-time.Duration(elapsed) * time.Second),
				EndTime:         now,
				DurationSeconds: elapsed,
			}
			if err := i.log.Prepend(ctx, session); err != nil {
				return dto.StopOutput{}, err
			}
			if err := i.topics.AddTrackedMinutes(ctx, ref.ID, float64(elapsed)/60); err != nil {
				return dto.StopOutput{}, err
			}
			out.Logged = true
			out.Session = toSessionOutput(session)
		}
	}

	if err := i.svc.Reset(ctx); err != nil {
		return dto.StopOutput{}, err
	}
	return out, nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	snapshot, err := i.svc.Current(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return i.toStatus(snapshot), nil
}

func (i *Interactor) Sessions(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.log.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionOutput(session))
	}
	return out, nil
}

// LogManual records a synthetic session ending now for manually added
// minutes.
func (i *Interactor) LogManual(ctx context.Context, topicID, topicName string, minutes float64) (dto.SessionOutput, error) {
	if minutes <= 0 {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	now := i.clock.Now()
	duration := int(minutes * 60)
	session := domain.Session{
		ID:              i.idGen.New(),
		TopicID:         topicID,
		TopicName:       topicName,
		StartTime:       now.Add(-time.Duration(duration) * time.Second),
		EndTime:         now,
		DurationSeconds: duration,
	}
	if err := i.log.Prepend(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) EraseTopicHistory(ctx context.Context, topicID string) (int, error) {
	return i.log.DeleteByTopic(ctx, topicID)
}

func (i *Interactor) toStatus(snapshot domain.Snapshot) dto.StatusOutput {
	return dto.StatusOutput{
		ActiveTopicID:  snapshot.ActiveTopicID,
		State:          string(snapshot.State),
		ElapsedSeconds: snapshot.Elapsed(i.clock.Now()),
		StartedAt:      snapshot.StartedAt,
	}
}

func toSessionOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:              session.ID,
		TopicID:         session.TopicID,
		TopicName:       session.TopicName,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		DurationSeconds: session.DurationSeconds,
	}
}
