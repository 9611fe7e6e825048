package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"konkrete/internal/modules/topic/domain"
	"konkrete/internal/modules/topic/dto"
	"konkrete/internal/modules/topic/service"
	trackerdto "konkrete/internal/modules/tracker/dto"
	apperrors "konkrete/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type seqIDs struct {
	next int
}

func (g *seqIDs) New() string {
	g.next++
	return string(rune('a' + g.next - 1))
}

type memTopicStore struct {
	mu     sync.Mutex
	topics []domain.Topic
}

func (s *memTopicStore) List(_ context.Context) ([]domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Topic(nil), s.topics...), nil
}

func (s *memTopicStore) Replace(_ context.Context, topics []domain.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append([]domain.Topic(nil), topics...)
	return nil
}

func (s *memTopicStore) snapshot() []domain.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Topic(nil), s.topics...)
}

type fakeTracker struct {
	activeTopicID string
	stopped       bool
	erasedTopicID string
	manualTopicID string
	manualMinutes float64
}

func (f *fakeTracker) Select(_ context.Context, _ string) (trackerdto.StatusOutput, error) {
	return trackerdto.StatusOutput{}, nil
}

func (f *fakeTracker) Start(_ context.Context) (trackerdto.StatusOutput, error) {
	return trackerdto.StatusOutput{}, nil
}

func (f *fakeTracker) Pause(_ context.Context) (trackerdto.StatusOutput, error) {
	return trackerdto.StatusOutput{}, nil
}

func (f *fakeTracker) Resume(_ context.Context) (trackerdto.StatusOutput, error) {
	return trackerdto.StatusOutput{}, nil
}

func (f *fakeTracker) Stop(_ context.Context) (trackerdto.StopOutput, error) {
	f.stopped = true
	f.activeTopicID = ""
	return trackerdto.StopOutput{}, nil
}

func (f *fakeTracker) Status(_ context.Context) (trackerdto.StatusOutput, error) {
	return trackerdto.StatusOutput{ActiveTopicID: f.activeTopicID}, nil
}

func (f *fakeTracker) Sessions(_ context.Context) ([]trackerdto.SessionOutput, error) {
	return nil, nil
}

func (f *fakeTracker) LogManual(_ context.Context, topicID, _ string, minutes float64) (trackerdto.SessionOutput, error) {
	f.manualTopicID = topicID
	f.manualMinutes = minutes
	return trackerdto.SessionOutput{}, nil
}

func (f *fakeTracker) EraseTopicHistory(_ context.Context, topicID string) (int, error) {
	f.erasedTopicID = topicID
	return 0, nil
}

type fakeClassifier struct {
	icon string
	err  error
}

func (f *fakeClassifier) ClassifyIcon(_ context.Context, _ string) (string, error) {
	return f.icon, f.err
}

func newFixture(classifier *fakeClassifier) (*Interactor, *service.TopicService, *memTopicStore, *fakeTracker) {
	store := &memTopicStore{}
	clk := &fakeClock{now: time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)}
	svc := service.NewTopicService(clk, &seqIDs{}, store)
	tracker := &fakeTracker{}
	var interactor *Interactor
	if classifier == nil {
		interactor = NewInteractor(svc, tracker, nil, zerolog.Nop()).(*Interactor)
	} else {
		interactor = NewInteractor(svc, tracker, classifier, zerolog.Nop()).(*Interactor)
	}
	return interactor, svc, store, tracker
}

func waitForIcon(t *testing.T, store *memTopicStore, topicID, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, topic := range store.snapshot() {
			if topic.ID == topicID && topic.Icon == want {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("icon %q was never applied to %s", want, topicID)
}

func TestAddClassifiesIconInBackground(t *testing.T) {
	t.Parallel()

	interactor, _, store, _ := newFixture(&fakeClassifier{icon: "book"})

	topic, err := interactor.Add(context.Background(), dto.AddInput{Name: "Reading"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if topic.Icon == "book" {
		t.Fatal("classification must not be synchronous")
	}
	waitForIcon(t, store, topic.ID, "book")
}

func TestAddSkipsClassificationForExplicitIcon(t *testing.T) {
	t.Parallel()

	interactor, _, store, _ := newFixture(&fakeClassifier{icon: "book"})

	topic, err := interactor.Add(context.Background(), dto.AddInput{Name: "Climbing", Icon: "heart"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	topics := store.snapshot()
	if topics[0].Icon != "heart" || topic.Icon != "heart" {
		t.Fatalf("icon = %q, want explicit heart untouched", topics[0].Icon)
	}
}

func TestAddWorksWithoutClassifier(t *testing.T) {
	t.Parallel()

	interactor, _, _, _ := newFixture(nil)

	topic, err := interactor.Add(context.Background(), dto.AddInput{Name: "Reading"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if topic.ID == "" {
		t.Fatal("topic must still be created")
	}
}

func TestAddManualMinutesPositiveLogsSession(t *testing.T) {
	t.Parallel()

	interactor, _, store, tracker := newFixture(nil)
	ctx := context.Background()

	topic, err := interactor.Add(ctx, dto.AddInput{Name: "Reading", Icon: "book"})
	if err != nil {
		t.Fatal(err)
	}
	if err := interactor.AddManualMinutes(ctx, topic.ID, 25); err != nil {
		t.Fatal(err)
	}
	if store.topics[0].TotalMinutes != 25 {
		t.Fatalf("total = %f, want 25", store.topics[0].TotalMinutes)
	}
	if tracker.manualTopicID != topic.ID || tracker.manualMinutes != 25 {
		t.Fatalf("manual log = %s/%f, want %s/25", tracker.manualTopicID, tracker.manualMinutes, topic.ID)
	}
}

func TestAddManualMinutesNegativeAdjustsOnly(t *testing.T) {
	t.Parallel()

	interactor, _, store, tracker := newFixture(nil)
	ctx := context.Background()

	topic, err := interactor.Add(ctx, dto.AddInput{Name: "Reading", Icon: "book"})
	if err != nil {
		t.Fatal(err)
	}
	if err := interactor.AddManualMinutes(ctx, topic.ID, 40); err != nil {
		t.Fatal(err)
	}
	tracker.manualTopicID = ""
	if err := interactor.AddManualMinutes(ctx, topic.ID, -15); err != nil {
		t.Fatal(err)
	}
	if store.topics[0].TotalMinutes != 25 {
		t.Fatalf("total = %f, want 25", store.topics[0].TotalMinutes)
	}
	if tracker.manualTopicID != "" {
		t.Fatal("negative deltas must not log a session")
	}
}

func TestAddManualMinutesUnknownTopic(t *testing.T) {
	t.Parallel()

	interactor, _, _, _ := newFixture(nil)
	if err := interactor.AddManualMinutes(context.Background(), "missing", 10); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteStopsActiveTimerAndCascades(t *testing.T) {
	t.Parallel()

	interactor, _, store, tracker := newFixture(nil)
	ctx := context.Background()

	topic, err := interactor.Add(ctx, dto.AddInput{Name: "Reading", Icon: "book"})
	if err != nil {
		t.Fatal(err)
	}
	tracker.activeTopicID = topic.ID

	if err := interactor.Delete(ctx, topic.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !tracker.stopped {
		t.Fatal("the active timer must be stopped before deletion")
	}
	if tracker.erasedTopicID != topic.ID {
		t.Fatalf("cascade erased %q, want %q", tracker.erasedTopicID, topic.ID)
	}
	if len(store.topics) != 0 {
		t.Fatalf("topics = %v, want empty", store.topics)
	}
}

func TestDeleteLeavesOtherTimersRunning(t *testing.T) {
	t.Parallel()

	interactor, _, _, tracker := newFixture(nil)
	ctx := context.Background()

	topic, err := interactor.Add(ctx, dto.AddInput{Name: "Reading", Icon: "book"})
	if err != nil {
		t.Fatal(err)
	}
	tracker.activeTopicID = "other-topic"

	if err := interactor.Delete(ctx, topic.ID); err != nil {
		t.Fatal(err)
	}
	if tracker.stopped {
		t.Fatal("deleting an idle topic must not stop the timer")
	}
}

func TestDeleteUnknownTopic(t *testing.T) {
	t.Parallel()

	interactor, _, _, _ := newFixture(nil)
	if err := interactor.Delete(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
