package service

import (
	"context"
	"errors"
	"time"

	"konkrete/internal/modules/tracker/domain"
	trackerout "konkrete/internal/modules/tracker/port/out"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
)

// TimerService is the timer state machine. It keeps the current
// snapshot in memory and mirrors it to the snapshot store on every
// transition: saved while running, paused or armed with a topic,
// deleted once nothing is worth resurrecting.
type TimerService struct {
	clock     clock.Clock
	snapshots trackerout.SnapshotStore

	current domain.Snapshot
	loaded  bool
}

func NewTimerService(clock clock.Clock, snapshots trackerout.SnapshotStore) *TimerService {
	return &TimerService{clock: clock, snapshots: snapshots}
}

// Current loads (and recovers) the snapshot on first use.
func (s *TimerService) Current(ctx context.Context) (domain.Snapshot, error) {
	if s.loaded {
		return s.current, nil
	}
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveTimer) || errors.Is(err, apperrors.ErrNotFound) {
			s.current = domain.Snapshot{State: domain.StateIdle}
			s.loaded = true
			return s.current, nil
		}
		return domain.Snapshot{}, err
	}
	s.current = domain.Recover(snapshot, s.clock.Now())
	s.loaded = true
	return s.current, nil
}

func (s *TimerService) persist(ctx context.Context, snapshot domain.Snapshot) error {
	s.current = snapshot
	s.loaded = true
	if snapshot.State == domain.StateIdle && snapshot.ActiveTopicID == "" {
		return s.snapshots.Clear(ctx)
	}
	return s.snapshots.Save(ctx, snapshot)
}

// Select abandons any unsaved in-progress timer and arms the given
// topic. No session is recorded for the abandoned time. The armed
// snapshot is persisted so a later Start in another process still
// knows the topic.
func (s *TimerService) Select(ctx context.Context, topicID string) (domain.Snapshot, error) {
	if _, err := s.Current(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	next := domain.Snapshot{ActiveTopicID: topicID, State: domain.StateIdle}
	if err := s.persist(ctx, next); err != nil {
		return domain.Snapshot{}, err
	}
	return next, nil
}

// Start runs the timer. Without a selected topic it is a no-op. The
// reference time is rebased to now minus the accumulated elapsed, so a
// restart after pause continues seamlessly.
func (s *TimerService) Start(ctx context.Context) (domain.Snapshot, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if cur.ActiveTopicID == "" || cur.State == domain.StateRunning {
		return cur, nil
	}
	reference := s.clock.Now().Add(-time.Duration(cur.ElapsedSeconds) * time.Second)
	next := domain.Snapshot{
		ActiveTopicID:  cur.ActiveTopicID,
		State:          domain.StateRunning,
		StartedAt:      &reference,
		ElapsedSeconds: cur.ElapsedSeconds,
	}
	if err := s.persist(ctx, next); err != nil {
		return domain.Snapshot{}, err
	}
	return next, nil
}

func (s *TimerService) Pause(ctx context.Context) (domain.Snapshot, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if cur.State != domain.StateRunning {
		return cur, nil
	}
	next := domain.Snapshot{
		ActiveTopicID:  cur.ActiveTopicID,
		State:          domain.StatePaused,
		ElapsedSeconds: cur.Elapsed(s.clock.Now()),
	}
	if err := s.persist(ctx, next); err != nil {
		return domain.Snapshot{}, err
	}
	return next, nil
}

func (s *TimerService) Resume(ctx context.Context) (domain.Snapshot, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if cur.State != domain.StatePaused {
		return cur, nil
	}
	return s.Start(ctx)
}

// Reset returns the machine to idle and deletes the snapshot record.
func (s *TimerService) Reset(ctx context.Context) error {
	return s.persist(ctx, domain.Snapshot{State: domain.StateIdle})
}
