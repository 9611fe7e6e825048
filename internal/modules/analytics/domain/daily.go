package domain

import "time"

// Interval is one timed contribution: a completed session or the
// synthetic in-progress one from the live timer.
type Interval struct {
	TopicID         string
	Start           time.Time
	End             time.Time
	DurationSeconds int
}

// TopicMeta carries current topic identity for display; the session's
// denormalized name may be stale, so distribution uses this.
type TopicMeta struct {
	ID    string
	Name  string
	Color string
}

// DayAggregate is one calendar day's focus total.
type DayAggregate struct {
	Seconds int
	Topics  map[string]struct{}
}

// normalize repairs an interval: a missing bound is derived from the
// other, the pair is ordered, and anything still degenerate is dropped.
func normalize(interval Interval) (start, end time.Time, ok bool) {
	start, end = interval.Start, interval.End
	if start.IsZero() {
		start = end
	}
	if end.IsZero() {
		end = interval.Start
	}
	if start.IsZero() || end.IsZero() || interval.TopicID == "" {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		start, end = end, start
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// DayStart truncates to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay and PrevDay step by calendar day, staying on midnights
// across DST transitions.
func NextDay(day time.Time) time.Time {
	return DayStart(day.AddDate(0, 0, 1))
}

func PrevDay(day time.Time) time.Time {
	return DayStart(day.AddDate(0, 0, -1))
}

// DailyTotals splits every interval across midnight boundaries and
// accumulates per-day seconds plus the set of distinct topics touched.
// A session spanning days contributes to each day proportionally to
// its overlap.
func DailyTotals(intervals []Interval) map[time.Time]*DayAggregate {
	totals := make(map[time.Time]*DayAggregate)
	for _, interval := range intervals {
		start, end, ok := normalize(interval)
		if !ok {
			continue
		}
		for cursor := DayStart(start); !cursor.After(DayStart(end)); cursor = NextDay(cursor) {
			overlap := overlapSeconds(start, end, cursor, NextDay(cursor))
			if overlap <= 0 {
				continue
			}
			agg := totals[cursor]
			if agg == nil {
				agg = &DayAggregate{Topics: make(map[string]struct{})}
				totals[cursor] = agg
			}
			agg.Seconds += overlap
			agg.Topics[interval.TopicID] = struct{}{}
		}
	}
	return totals
}

func overlapSeconds(start, end, windowStart, windowEnd time.Time) int {
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Seconds())
}
