package service

import (
	"context"
	"testing"
	"time"

	"konkrete/internal/modules/tracker/domain"
	apperrors "konkrete/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type memSnapshotStore struct {
	snapshot domain.Snapshot
	present  bool
}

func (s *memSnapshotStore) Load(_ context.Context) (domain.Snapshot, error) {
	if !s.present {
		return domain.Snapshot{}, apperrors.ErrNoActiveTimer
	}
	return s.snapshot, nil
}

func (s *memSnapshotStore) Save(_ context.Context, snapshot domain.Snapshot) error {
	s.snapshot = snapshot
	s.present = true
	return nil
}

func (s *memSnapshotStore) Clear(_ context.Context) error {
	s.snapshot = domain.Snapshot{}
	s.present = false
	return nil
}

func newService() (*TimerService, *memSnapshotStore, *fakeClock) {
	store := &memSnapshotStore{}
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}
	return NewTimerService(clk, store), store, clk
}

func TestStartRequiresSelectedTopic(t *testing.T) {
	t.Parallel()

	svc, store, _ := newService()
	ctx := context.Background()

	snapshot, err := svc.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle {
		t.Fatalf("state = %s, want idle without a topic", snapshot.State)
	}
	if store.present {
		t.Fatal("idle machine must not persist a snapshot")
	}
}

func TestStartPauseResumeAccumulatesElapsed(t *testing.T) {
	t.Parallel()

	svc, _, clk := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Start(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(90 * time.Second)

	paused, err := svc.Pause(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if paused.State != domain.StatePaused || paused.ElapsedSeconds != 90 {
		t.Fatalf("paused = %+v, want 90s frozen", paused)
	}

	// Time passing while paused does not count.
	clk.advance(5 * time.Minute)
	resumed, err := svc.Resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if resumed.State != domain.StateRunning {
		t.Fatalf("state = %s, want running", resumed.State)
	}
	clk.advance(30 * time.Second)
	if got := resumed.Elapsed(clk.now); got != 120 {
		t.Fatalf("elapsed = %d, want 120 across the pause", got)
	}
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _, clk := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	first, err := svc.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	clk.advance(45 * time.Second)
	second, err := svc.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !second.StartedAt.Equal(*first.StartedAt) {
		t.Fatalf("reference moved from %v to %v", first.StartedAt, second.StartedAt)
	}
	if got := second.Elapsed(clk.now); got != 45 {
		t.Fatalf("elapsed = %d, want 45", got)
	}
}

func TestPauseWhenNotRunningIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	snapshot, err := svc.Pause(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle {
		t.Fatalf("state = %s, want idle unchanged", snapshot.State)
	}
}

func TestResumeOnlyFromPaused(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	snapshot, err := svc.Resume(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle {
		t.Fatalf("state = %s, resume must not start an idle timer", snapshot.State)
	}
}

func TestSelectAbandonsRunningTimer(t *testing.T) {
	t.Parallel()

	svc, store, clk := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Start(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(10 * time.Minute)

	snapshot, err := svc.Select(ctx, "t2")
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle || snapshot.ElapsedSeconds != 0 {
		t.Fatalf("snapshot = %+v, want fresh idle", snapshot)
	}
	if snapshot.ActiveTopicID != "t2" {
		t.Fatalf("topic = %s, want t2", snapshot.ActiveTopicID)
	}
	if !store.present || store.snapshot.ActiveTopicID != "t2" || store.snapshot.StartedAt != nil {
		t.Fatalf("armed snapshot = %+v, present=%v, want persisted idle with t2", store.snapshot, store.present)
	}
}

func TestSelectedTopicSurvivesRestart(t *testing.T) {
	t.Parallel()

	svc, store, clk := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}

	// A fresh process over the same store picks up the armed topic.
	restarted := NewTimerService(clk, store)
	snapshot, err := restarted.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateRunning || snapshot.ActiveTopicID != "t1" {
		t.Fatalf("snapshot = %+v, want running with t1", snapshot)
	}
}

func TestSnapshotPersistedWhileRunningAndPaused(t *testing.T) {
	t.Parallel()

	svc, store, clk := newService()
	ctx := context.Background()

	if _, err := svc.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if !store.present || store.snapshot.State != domain.StateRunning || store.snapshot.StartedAt == nil {
		t.Fatalf("running snapshot = %+v, present=%v", store.snapshot, store.present)
	}

	clk.advance(time.Minute)
	if _, err := svc.Pause(ctx); err != nil {
		t.Fatal(err)
	}
	if !store.present || store.snapshot.State != domain.StatePaused || store.snapshot.StartedAt != nil {
		t.Fatalf("paused snapshot = %+v", store.snapshot)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if store.present {
		t.Fatal("reset must delete the record")
	}
}

func TestRecoveryRecomputesRunningElapsed(t *testing.T) {
	t.Parallel()

	store := &memSnapshotStore{}
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}
	startedAt := clk.now.Add(-125 * time.Second)
	store.snapshot = domain.Snapshot{
		ActiveTopicID:  "t1",
		State:          domain.StateRunning,
		StartedAt:      &startedAt,
		ElapsedSeconds: 10, // stale counter from the last save
	}
	store.present = true

	svc := NewTimerService(clk, store)
	snapshot, err := svc.Current(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateRunning || snapshot.ElapsedSeconds != 125 {
		t.Fatalf("recovered = %+v, want running with 125s", snapshot)
	}
}

func TestRecoveryTrustsPausedElapsed(t *testing.T) {
	t.Parallel()

	store := &memSnapshotStore{
		snapshot: domain.Snapshot{ActiveTopicID: "t1", State: domain.StatePaused, ElapsedSeconds: 300},
		present:  true,
	}
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}

	svc := NewTimerService(clk, store)
	snapshot, err := svc.Current(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.ElapsedSeconds != 300 {
		t.Fatalf("elapsed = %d, want stored 300", snapshot.ElapsedSeconds)
	}
}

func TestRecoveryResetsCorruptRunningSnapshot(t *testing.T) {
	t.Parallel()

	store := &memSnapshotStore{
		snapshot: domain.Snapshot{ActiveTopicID: "t1", State: domain.StateRunning, ElapsedSeconds: 99},
		present:  true,
	}
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}

	svc := NewTimerService(clk, store)
	snapshot, err := svc.Current(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle || snapshot.ElapsedSeconds != 0 {
		t.Fatalf("recovered = %+v, want idle reset without a reference time", snapshot)
	}
}

func TestAbsentSnapshotMeansIdle(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService()
	snapshot, err := svc.Current(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.State != domain.StateIdle {
		t.Fatalf("state = %s, want idle", snapshot.State)
	}
}
