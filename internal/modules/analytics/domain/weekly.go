package domain

import "time"

// WeeklyActivity is one Monday-to-Sunday week of per-day focus minutes.
type WeeklyActivity struct {
	Start    time.Time
	Buckets  [7]float64
	MaxScale float64
}

// WeekStart returns local midnight of the Monday of the week holding
// now, shifted by offset weeks (negative = past).
func WeekStart(now time.Time, offset int) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := DayStart(now.AddDate(0, 0, 1-weekday))
	if offset != 0 {
		monday = DayStart(monday.AddDate(0, 0, offset*7))
	}
	return monday
}

// WeeklyBuckets attributes each interval's whole duration to the day
// its end time falls in; spanning sessions are not split here. Live
// seconds land in today's bucket when today is inside the requested
// week. The scale ceiling tracks the taller of the busiest day and the
// daily goal, with headroom.
func WeeklyBuckets(intervals []Interval, offset int, liveSeconds int, goalMinutes float64, now time.Time) WeeklyActivity {
	start := WeekStart(now, offset)
	end := DayStart(start.AddDate(0, 0, 7))
	activity := WeeklyActivity{Start: start}

	for _, interval := range intervals {
		anchor := interval.End
		if anchor.IsZero() {
			anchor = interval.Start
		}
		if anchor.IsZero() || interval.DurationSeconds <= 0 {
			continue
		}
		if anchor.Before(start) || !anchor.Before(end) {
			continue
		}
		activity.Buckets[bucketIndex(anchor)] += float64(interval.DurationSeconds) / 60
	}

	if liveSeconds > 0 && !now.Before(start) && now.Before(end) {
		activity.Buckets[bucketIndex(now)] += float64(liveSeconds) / 60
	}

	tallest := 0.1
	for _, minutes := range activity.Buckets {
		if minutes > tallest {
			tallest = minutes
		}
	}
	if goalMinutes > tallest {
		tallest = goalMinutes
	}
	activity.MaxScale = tallest * 1.2
	return activity
}

// bucketIndex maps a weekday to a Monday-first index.
func bucketIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
