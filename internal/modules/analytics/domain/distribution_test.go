package domain

import (
	"testing"
	"time"
)

func TestWindowStartBounds(t *testing.T) {
	t.Parallel()

	now := day(t, "2026-03-12 15:30:00") // a Thursday

	cases := []struct {
		window Window
		want   time.Time
	}{
		{WindowToday, day(t, "2026-03-12 00:00:00")},
		{WindowThisWeek, day(t, "2026-03-09 00:00:00")},
		{WindowLast3, day(t, "2026-03-10 00:00:00")},
		{WindowLast7, day(t, "2026-03-06 00:00:00")},
		{WindowLast30, day(t, "2026-02-11 00:00:00")},
	}
	for _, tc := range cases {
		start, bounded := WindowStart(tc.window, now)
		if !bounded {
			t.Fatalf("%s: expected a bounded window", tc.window)
		}
		if !start.Equal(tc.want) {
			t.Fatalf("%s: start = %v, want %v", tc.window, start, tc.want)
		}
	}

	if _, bounded := WindowStart(WindowAllTime, now); bounded {
		t.Fatal("all_time must be unbounded")
	}
}

func TestFocusDistributionClipsToWindow(t *testing.T) {
	t.Parallel()

	now := day(t, "2026-03-12 12:00:00")
	topics := []TopicMeta{
		{ID: "t1", Name: "Deep Work", Color: "#007AFF"},
		{ID: "t2", Name: "Reading", Color: "#30D158"},
	}
	intervals := []Interval{
		// Entirely inside today.
		{TopicID: "t1", Start: day(t, "2026-03-12 09:00:00"), End: day(t, "2026-03-12 10:00:00")},
		// Straddles midnight: only the part after 00:00 counts today.
		{TopicID: "t2", Start: day(t, "2026-03-11 23:30:00"), End: day(t, "2026-03-12 00:30:00")},
		// Entirely yesterday: excluded from today.
		{TopicID: "t2", Start: day(t, "2026-03-11 10:00:00"), End: day(t, "2026-03-11 12:00:00")},
	}

	entries, total := FocusDistribution(intervals, topics, WindowToday, now)
	if total != 3600+1800 {
		t.Fatalf("total = %d, want 5400", total)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].TopicID != "t1" || entries[0].Seconds != 3600 {
		t.Fatalf("top entry = %+v, want t1 with 3600s", entries[0])
	}
	if entries[1].TopicID != "t2" || entries[1].Seconds != 1800 {
		t.Fatalf("second entry = %+v, want t2 with 1800s", entries[1])
	}
	if entries[0].Name != "Deep Work" || entries[0].Color != "#007AFF" {
		t.Fatalf("top entry identity = %+v, want current topic metadata", entries[0])
	}

	wantShare := 3600.0 / 5400.0
	if diff := entries[0].Share - wantShare; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("share = %f, want %f", entries[0].Share, wantShare)
	}
}

func TestFocusDistributionAllTimeKeepsEverything(t *testing.T) {
	t.Parallel()

	now := day(t, "2026-03-12 12:00:00")
	intervals := []Interval{
		{TopicID: "t1", Start: day(t, "2025-01-01 09:00:00"), End: day(t, "2025-01-01 10:00:00")},
		{TopicID: "t1", Start: day(t, "2026-03-12 09:00:00"), End: day(t, "2026-03-12 09:30:00")},
	}

	entries, total := FocusDistribution(intervals, nil, WindowAllTime, now)
	if total != 5400 {
		t.Fatalf("total = %d, want 5400", total)
	}
	if len(entries) != 1 || entries[0].Seconds != 5400 {
		t.Fatalf("entries = %+v, want one t1 entry with 5400s", entries)
	}
	if entries[0].Name != "" {
		t.Fatalf("name = %q, want empty for a deleted topic", entries[0].Name)
	}
}

func TestFocusDistributionEmptyWindow(t *testing.T) {
	t.Parallel()

	now := day(t, "2026-03-12 12:00:00")
	intervals := []Interval{
		{TopicID: "t1", Start: day(t, "2026-03-01 09:00:00"), End: day(t, "2026-03-01 10:00:00")},
	}

	entries, total := FocusDistribution(intervals, nil, WindowToday, now)
	if total != 0 || len(entries) != 0 {
		t.Fatalf("got %d entries, total %d; want empty", len(entries), total)
	}
}
