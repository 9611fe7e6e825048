package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"konkrete/internal/modules/habit/domain"
	"konkrete/internal/modules/habit/port/out"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
	"konkrete/internal/platform/id"
)

// HabitService implements objectives and gym days over their stores.
type HabitService struct {
	clock      clock.Clock
	idGen      id.Generator
	objectives out.ObjectiveStore
	gymDays    out.GymDayStore
}

func NewHabitService(clk clock.Clock, idGen id.Generator, objectives out.ObjectiveStore, gymDays out.GymDayStore) *HabitService {
	return &HabitService{clock: clk, idGen: idGen, objectives: objectives, gymDays: gymDays}
}

// AddObjective appends an objective to the current ISO week. Blank text
// is a silent no-op, reported through the second return.
func (s *HabitService) AddObjective(ctx context.Context, text string) (domain.Objective, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Objective{}, false, nil
	}
	now := s.clock.Now()
	key := domain.WeekOf(now)
	objective := domain.Objective{
		ID:        s.idGen.New(),
		Text:      text,
		Year:      key.Year,
		Week:      key.Week,
		CreatedAt: now,
	}
	all, err := s.objectives.List(ctx)
	if err != nil {
		return domain.Objective{}, false, err
	}
	if err := s.objectives.Replace(ctx, append(all, objective)); err != nil {
		return domain.Objective{}, false, err
	}
	return objective, true, nil
}

func (s *HabitService) ToggleObjective(ctx context.Context, objectiveID string) (domain.Objective, error) {
	all, err := s.objectives.List(ctx)
	if err != nil {
		return domain.Objective{}, err
	}
	for i := range all {
		if all[i].ID != objectiveID {
			continue
		}
		all[i].Completed = !all[i].Completed
		if err := s.objectives.Replace(ctx, all); err != nil {
			return domain.Objective{}, err
		}
		return all[i], nil
	}
	return domain.Objective{}, apperrors.ErrNotFound
}

func (s *HabitService) DeleteObjective(ctx context.Context, objectiveID string) error {
	all, err := s.objectives.List(ctx)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, o := range all {
		if o.ID != objectiveID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(all) {
		return apperrors.ErrNotFound
	}
	return s.objectives.Replace(ctx, kept)
}

// WeekObjectives lists the current ISO week's objectives in insertion
// order. Past weeks stay stored but are never shown.
func (s *HabitService) WeekObjectives(ctx context.Context) ([]domain.Objective, error) {
	all, err := s.objectives.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterWeek(all, domain.WeekOf(s.clock.Now())), nil
}

// ToggleGymDay flips membership of the given date and reports the new
// state.
func (s *HabitService) ToggleGymDay(ctx context.Context, date string) (bool, error) {
	key, err := domain.ParseDateKey(date)
	if err != nil {
		return false, apperrors.ErrInvalidInput
	}
	days, err := s.gymDays.List(ctx)
	if err != nil {
		return false, err
	}
	kept := days[:0]
	removed := false
	for _, d := range days {
		if d == key {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if !removed {
		kept = append(kept, key)
		sort.Strings(kept)
	}
	if err := s.gymDays.Replace(ctx, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// GymDays lists the marked days of one month, sorted. Zero year/month
// means no filter.
func (s *HabitService) GymDays(ctx context.Context, year, month int) ([]string, error) {
	days, err := s.gymDays.List(ctx)
	if err != nil {
		return nil, err
	}
	if year == 0 && month == 0 {
		sorted := append([]string(nil), days...)
		sort.Strings(sorted)
		return sorted, nil
	}
	var filtered []string
	for _, d := range days {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			continue
		}
		if year != 0 && parsed.Year() != year {
			continue
		}
		if month != 0 && int(parsed.Month()) != month {
			continue
		}
		filtered = append(filtered, d)
	}
	sort.Strings(filtered)
	return filtered, nil
}
