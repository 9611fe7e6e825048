package usecase

import (
	"context"
	"fmt"
	"time"

	"konkrete/internal/modules/analytics/domain"
	"konkrete/internal/modules/analytics/dto"
	"konkrete/internal/modules/analytics/port/out"
	topicin "konkrete/internal/modules/topic/port/in"
	trackerin "konkrete/internal/modules/tracker/port/in"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
)

// Interactor derives streaks, the focus distribution and the weekly
// chart from the session log plus the live timer. It owns no state of
// its own; everything is recomputed per call.
type Interactor struct {
	clock   clock.Clock
	tracker trackerin.Usecase
	topics  topicin.Usecase
	prefs   out.PreferenceSource
}

func NewInteractor(clk clock.Clock, tracker trackerin.Usecase, topics topicin.Usecase, prefs out.PreferenceSource) *Interactor {
	return &Interactor{clock: clk, tracker: tracker, topics: topics, prefs: prefs}
}

func (i *Interactor) Streak(ctx context.Context) (dto.StreakOutput, error) {
	prefs, err := i.prefs.Preferences(ctx)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	intervals, _, err := i.intervals(ctx)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	rule := domain.StreakRule{
		MinSeconds: prefs.StreakMinSeconds,
		MinTopics:  prefs.StreakMinTopics,
	}
	return dto.StreakOutput{
		Days:       domain.Streak(intervals, rule, i.clock.Now()),
		MinSeconds: prefs.StreakMinSeconds,
		MinTopics:  prefs.StreakMinTopics,
	}, nil
}

func (i *Interactor) Focus(ctx context.Context, window string) (dto.DistributionOutput, error) {
	w := domain.Window(window)
	if !domain.ValidWindow(w) {
		return dto.DistributionOutput{}, fmt.Errorf("%w: unknown window %q", apperrors.ErrInvalidInput, window)
	}
	intervals, _, err := i.intervals(ctx)
	if err != nil {
		return dto.DistributionOutput{}, err
	}
	listed, err := i.topics.List(ctx)
	if err != nil {
		return dto.DistributionOutput{}, err
	}
	meta := make([]domain.TopicMeta, 0, len(listed))
	for _, t := range listed {
		meta = append(meta, domain.TopicMeta{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	entries, total := domain.FocusDistribution(intervals, meta, w, i.clock.Now())
	output := dto.DistributionOutput{Window: window, TotalSeconds: total}
	for _, e := range entries {
		output.Entries = append(output.Entries, dto.DistributionEntryOutput{
			TopicID: e.TopicID,
			Name:    e.Name,
			Color:   e.Color,
			Seconds: e.Seconds,
			Share:   e.Share,
		})
	}
	return output, nil
}

func (i *Interactor) Weekly(ctx context.Context, weekOffset int) (dto.WeeklyOutput, error) {
	prefs, err := i.prefs.Preferences(ctx)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	intervals, live, err := i.intervals(ctx)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	// The live timer is attributed separately so a ticking session shows
	// up in today's bar without a synthetic end time in the log.
	logged := intervals
	if live > 0 && len(intervals) > 0 {
		logged = intervals[:len(intervals)-1]
	}
	activity := domain.WeeklyBuckets(logged, weekOffset, live, prefs.DailyGoalMinutes, i.clock.Now())
	return dto.WeeklyOutput{
		WeekStart:   activity.Start,
		Minutes:     activity.Buckets,
		MaxScale:    activity.MaxScale,
		GoalMinutes: prefs.DailyGoalMinutes,
	}, nil
}

// intervals assembles the completed sessions plus, when a timer is
// armed with elapsed time, one synthetic interval ending now. The
// synthetic interval is always last; live reports its length.
func (i *Interactor) intervals(ctx context.Context) ([]domain.Interval, int, error) {
	sessions, err := i.tracker.Sessions(ctx)
	if err != nil {
		return nil, 0, err
	}
	intervals := make([]domain.Interval, 0, len(sessions)+1)
	for _, s := range sessions {
		intervals = append(intervals, domain.Interval{
			TopicID:         s.TopicID,
			Start:           s.StartTime,
			End:             s.EndTime,
			DurationSeconds: s.DurationSeconds,
		})
	}
	status, err := i.tracker.Status(ctx)
	if err != nil {
		return nil, 0, err
	}
	live := 0
	if status.ActiveTopicID != "" && status.ElapsedSeconds > 0 {
		live = status.ElapsedSeconds
		now := i.clock.Now()
		intervals = append(intervals, domain.Interval{
			TopicID:         status.ActiveTopicID,
			Start:           now.Add(-time.Duration(live) * time.Second),
			End:             now,
			DurationSeconds: live,
		})
	}
	return intervals, live, nil
}
