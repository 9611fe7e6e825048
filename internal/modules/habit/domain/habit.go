package domain

import (
	"fmt"
	"time"
)

// Objective is one weekly goal, scoped to the ISO week it was created in.
type Objective struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Year      int       `json:"year"`
	Week      int       `json:"week"`
	CreatedAt time.Time `json:"created_at"`
}

// WeekKey identifies an ISO week.
type WeekKey struct {
	Year int
	Week int
}

// WeekOf returns the ISO week holding t.
func WeekOf(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// DateKey formats t as the canonical YYYY-MM-DD gym-day key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey validates and normalizes a gym-day key.
func ParseDateKey(value string) (string, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DateKey(parsed), nil
}

// FilterWeek keeps the objectives belonging to the given ISO week,
// preserving insertion order.
func FilterWeek(objectives []Objective, key WeekKey) []Objective {
	filtered := make([]Objective, 0, len(objectives))
	for _, o := range objectives {
		if o.Year == key.Year && o.Week == key.Week {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
