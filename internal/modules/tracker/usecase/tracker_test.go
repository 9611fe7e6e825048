package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"konkrete/internal/modules/tracker/domain"
	trackerout "konkrete/internal/modules/tracker/port/out"
	"konkrete/internal/modules/tracker/service"
	apperrors "konkrete/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDs struct {
	next int
}

func (g *seqIDs) New() string {
	g.next++
	return fmt.Sprintf("s%d", g.next)
}

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
	s.present = false
	return nil
}

type memSessionLog struct {
	sessions []domain.Session
}

func (l *memSessionLog) List(_ context.Context) ([]domain.Session, error) {
	return append([]domain.Session(nil), l.sessions...), nil
}

func (l *memSessionLog) Prepend(_ context.Context, session domain.Session) error {
	l.sessions = append([]domain.Session{session}, l.sessions...)
	return nil
}

func (l *memSessionLog) DeleteByTopic(_ context.Context, topicID string) (int, error) {
	kept := l.sessions[:0]
	removed := 0
	for _, session := range l.sessions {
		if session.TopicID == topicID {
			removed++
			continue
		}
		kept = append(kept, session)
	}
	l.sessions = kept
	return removed, nil
}

type fakeDirectory struct {
	topics  map[string]string
	credits map[string]float64
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{topics: map[string]string{}, credits: map[string]float64{}}
}

func (d *fakeDirectory) Lookup(_ context.Context, topicID string) (trackerout.TopicRef, error) {
	name, found := d.topics[topicID]
	if !found {
		return trackerout.TopicRef{}, apperrors.ErrNotFound
	}
	return trackerout.TopicRef{ID: topicID, Name: name}, nil
}

func (d *fakeDirectory) AddTrackedMinutes(_ context.Context, topicID string, minutes float64) error {
	d.credits[topicID] += minutes
	return nil
}

func newFixture() (*Interactor, *memSessionLog, *fakeDirectory, *fakeClock) {
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}
	svc := service.NewTimerService(clk, &memSnapshotStore{})
	log := &memSessionLog{}
	directory := newFakeDirectory()
	interactor := NewInteractor(svc, clk, &seqIDs{}, log, directory).(*Interactor)
	return interactor, log, directory, clk
}

func TestStopEmitsSessionAndCreditsTopic(t *testing.T) {
	t.Parallel()

	interactor, log, directory, clk := newFixture()
	directory.topics["t1"] = "Deep Work"
	ctx := context.Background()

	if _, err := interactor.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := interactor.Start(ctx); err != nil {
		t.Fatal(err)
	}
	started := clk.now
	clk.advance(150 * time.Second)

	out, err := interactor.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !out.Logged {
		t.Fatal("expected a logged session")
	}
	session := out.Session
	if session.TopicName != "Deep Work" || session.DurationSeconds != 150 {
		t.Fatalf("session = %+v", session)
	}
	if !session.StartTime.Equal(started) || !session.EndTime.Equal(clk.now) {
		t.Fatalf("interval = [%v, %v], want [%v, %v]", session.StartTime, session.EndTime, started, clk.now)
	}
	if len(log.sessions) != 1 {
		t.Fatalf("log = %d sessions, want 1", len(log.sessions))
	}
	if got := directory.credits["t1"]; got != 2.5 {
		t.Fatalf("credited %f minutes, want 2.5", got)
	}

	status, err := interactor.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if status.State != string(domain.StateIdle) || status.ActiveTopicID != "" {
		t.Fatalf("status = %+v, want idle cleared", status)
	}
}

func TestStopWithZeroElapsedLogsNothing(t *testing.T) {
	t.Parallel()

	interactor, log, directory, _ := newFixture()
	directory.topics["t1"] = "Deep Work"
	ctx := context.Background()

	if _, err := interactor.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	out, err := interactor.Stop(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Logged || len(log.sessions) != 0 {
		t.Fatalf("out = %+v, log = %v; want nothing recorded", out, log.sessions)
	}
}

func TestStopSurvivesVanishedTopic(t *testing.T) {
	t.Parallel()

	interactor, log, _, clk := newFixture()
	ctx := context.Background()

	if _, err := interactor.Select(ctx, "ghost"); err != nil {
		t.Fatal(err)
	}
	if _, err := interactor.Start(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(time.Minute)

	out, err := interactor.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if out.Logged || len(log.sessions) != 0 {
		t.Fatal("no session for a topic that no longer exists")
	}
	status, err := interactor.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if status.State != string(domain.StateIdle) {
		t.Fatalf("state = %s, want idle even without a session", status.State)
	}
}

func TestStopAfterPauseUsesFrozenElapsed(t *testing.T) {
	t.Parallel()

	interactor, _, directory, clk := newFixture()
	directory.topics["t1"] = "Deep Work"
	ctx := context.Background()

	if _, err := interactor.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := interactor.Start(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(100 * time.Second)
	if _, err := interactor.Pause(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(time.Hour) // idle time at the desk

	out, err := interactor.Stop(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Session.DurationSeconds != 100 {
		t.Fatalf("duration = %d, want the frozen 100s", out.Session.DurationSeconds)
	}
	if !out.Session.EndTime.Equal(clk.now) {
		t.Fatalf("end = %v, want now", out.Session.EndTime)
	}
}

func TestStatusComputesLiveElapsed(t *testing.T) {
	t.Parallel()

	interactor, _, _, clk := newFixture()
	ctx := context.Background()

	if _, err := interactor.Select(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := interactor.Start(ctx); err != nil {
		t.Fatal(err)
	}
	clk.advance(42 * time.Second)

	status, err := interactor.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if status.ElapsedSeconds != 42 {
		t.Fatalf("elapsed = %d, want 42 without any tick", status.ElapsedSeconds)
	}
}

func TestLogManualAppendsSyntheticSession(t *testing.T) {
	t.Parallel()

	interactor, log, _, clk := newFixture()
	ctx := context.Background()

	session, err := interactor.LogManual(ctx, "t1", "Reading", 25)
	if err != nil {
		t.Fatal(err)
	}
	if session.DurationSeconds != 1500 {
		t.Fatalf("duration = %d, want 1500", session.DurationSeconds)
	}
	if !session.EndTime.Equal(clk.now) {
		t.Fatalf("end = %v, want now", session.EndTime)
	}
	if len(log.sessions) != 1 {
		t.Fatalf("log = %d, want 1", len(log.sessions))
	}

	if _, err := interactor.LogManual(ctx, "t1", "Reading", 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSessionsNewestFirstAndCascade(t *testing.T) {
	t.Parallel()

	interactor, _, _, clk := newFixture()
	ctx := context.Background()

	if _, err := interactor.LogManual(ctx, "t1", "Reading", 10); err != nil {
		t.Fatal(err)
	}
	clk.advance(time.Hour)
	if _, err := interactor.LogManual(ctx, "t2", "Writing", 20); err != nil {
		t.Fatal(err)
	}
	clk.advance(time.Hour)
	if _, err := interactor.LogManual(ctx, "t1", "Reading", 30); err != nil {
		t.Fatal(err)
	}

	sessions, err := interactor.Sessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 3 || sessions[0].DurationSeconds != 1800 {
		t.Fatalf("sessions = %+v, want newest first", sessions)
	}

	removed, err := interactor.EraseTopicHistory(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	sessions, err = interactor.Sessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].TopicID != "t2" {
		t.Fatalf("sessions = %+v, want only t2", sessions)
	}
}
