package domain

import (
	"sort"
	"time"
)

// Window selects the lookback range for the focus distribution.
type Window string

const (
	WindowToday    Window = "today"
	WindowThisWeek Window = "this_week"
	WindowLast3    Window = "last_3_days"
	WindowLast7    Window = "last_7_days"
	WindowLast30   Window = "last_30_days"
	WindowAllTime  Window = "all_time"
)

// Windows lists every valid window in display order.
func Windows() []Window {
	return []Window{WindowToday, WindowThisWeek, WindowLast3, WindowLast7, WindowLast30, WindowAllTime}
}

func ValidWindow(w Window) bool {
	for _, candidate := range Windows() {
		if candidate == w {
			return true
		}
	}
	return false
}

// WindowStart returns the inclusive lower bound of the window, or
// ok=false for the unbounded all-time window. Rolling windows count
// whole calendar days including today.
func WindowStart(w Window, now time.Time) (start time.Time, ok bool) {
	switch w {
	case WindowToday:
		return DayStart(now), true
	case WindowThisWeek:
		return WeekStart(now, 0), true
	case WindowLast3:
		return DayStart(now.AddDate(0, 0, -2)), true
	case WindowLast7:
		return DayStart(now.AddDate(0, 0, -6)), true
	case WindowLast30:
		return DayStart(now.AddDate(0, 0, -29)), true
	default:
		return time.Time{}, false
	}
}

// DistributionEntry is one topic's slice of the focus distribution.
type DistributionEntry struct {
	TopicID string
	Name    string
	Color   string
	Seconds int
	Share   float64
}

// FocusDistribution sums per-topic overlap with the window and returns
// entries sorted by time descending plus the grand total. Topics with
// no overlap are omitted; sessions whose topic no longer exists keep
// their logged identity fields empty except the ID.
func FocusDistribution(intervals []Interval, topics []TopicMeta, w Window, now time.Time) ([]DistributionEntry, int) {
	lower, bounded := WindowStart(w, now)
	perTopic := make(map[string]int)
	for _, interval := range intervals {
		start, end, ok := normalize(interval)
		if !ok {
			continue
		}
		var overlap int
		if bounded {
			overlap = overlapSeconds(start, end, lower, now)
		} else {
			overlap = int(end.Sub(start).Seconds())
		}
		if overlap <= 0 {
			continue
		}
		perTopic[interval.TopicID] += overlap
	}

	meta := make(map[string]TopicMeta, len(topics))
	for _, t := range topics {
		meta[t.ID] = t
	}

	total := 0
	entries := make([]DistributionEntry, 0, len(perTopic))
	for id, seconds := range perTopic {
		total += seconds
		entry := DistributionEntry{TopicID: id, Seconds: seconds}
		if m, found := meta[id]; found {
			entry.Name = m.Name
			entry.Color = m.Color
		}
		entries = append(entries, entry)
	}
	if total > 0 {
		for i := range entries {
			entries[i].Share = float64(entries[i].Seconds) / float64(total)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Seconds != entries[j].Seconds {
			return entries[i].Seconds > entries[j].Seconds
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, total
}
