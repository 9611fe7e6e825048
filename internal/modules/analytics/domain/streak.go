package domain

import "time"

// Hard ceiling on the streak walk so a corrupt log cannot spin forever.
const maxStreakDays = 3650

// StreakRule decides what makes a day count toward the streak.
type StreakRule struct {
	MinSeconds int
	MinTopics  int
}

func (r StreakRule) qualifies(agg *DayAggregate) bool {
	if agg == nil {
		return false
	}
	return agg.Seconds >= r.MinSeconds && len(agg.Topics) >= r.MinTopics
}

// Streak counts consecutive qualifying days ending today. If today
// itself does not qualify the streak is zero regardless of history.
func Streak(intervals []Interval, rule StreakRule, now time.Time) int {
	totals := DailyTotals(intervals)
	streak := 0
	for day := DayStart(now); streak < maxStreakDays; day = PrevDay(day) {
		if !rule.qualifies(totals[day]) {
			break
		}
		streak++
	}
	return streak
}
