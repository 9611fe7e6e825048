package bootstrap

import (
	"context"
	"testing"

	userdto "konkrete/internal/modules/user/dto"
)

type fakeUsers struct {
	prefs userdto.PreferencesOutput
}

func (f *fakeUsers) Register(_ context.Context, _ userdto.RegisterInput) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{}, nil
}

func (f *fakeUsers) Login(_ context.Context, _, _ string) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{}, nil
}

func (f *fakeUsers) LoginAsGuest(_ context.Context) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{}, nil
}

func (f *fakeUsers) Logout(_ context.Context) error { return nil }

func (f *fakeUsers) Current(_ context.Context) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{ID: "u1", Preferences: f.prefs}, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, _ string) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{}, nil
}

func (f *fakeUsers) UpdatePreferences(_ context.Context, _, _, _ int) (userdto.ProfileOutput, error) {
	return userdto.ProfileOutput{}, nil
}

func TestPreferenceSourceKeepsSecondPrecision(t *testing.T) {
	t.Parallel()

	source := preferenceSource{users: &fakeUsers{prefs: userdto.PreferencesOutput{
		StreakMinSeconds: 90,
		StreakMinTopics:  2,
		DailyGoalSeconds: 5400,
	}}}
	prefs, err := source.Preferences(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if prefs.StreakMinSeconds != 90 {
		t.Fatalf("streak threshold = %ds, want the stored 90s untruncated", prefs.StreakMinSeconds)
	}
	if prefs.StreakMinTopics != 2 {
		t.Fatalf("topic threshold = %d, want 2", prefs.StreakMinTopics)
	}
	if prefs.DailyGoalMinutes != 90 {
		t.Fatalf("goal = %fm, want 90m", prefs.DailyGoalMinutes)
	}
}

func TestPreferenceSourceDefaultsEachFieldIndependently(t *testing.T) {
	t.Parallel()

	source := preferenceSource{users: &fakeUsers{prefs: userdto.PreferencesOutput{
		StreakMinSeconds: 0,
		StreakMinTopics:  3,
	}}}
	prefs, err := source.Preferences(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if prefs.StreakMinSeconds != 600 {
		t.Fatalf("streak threshold = %ds, want the 600s default", prefs.StreakMinSeconds)
	}
	if prefs.StreakMinTopics != 3 {
		t.Fatalf("topic threshold = %d, the stored value must not be replaced", prefs.StreakMinTopics)
	}

	source = preferenceSource{users: &fakeUsers{prefs: userdto.PreferencesOutput{
		StreakMinSeconds: 120,
		StreakMinTopics:  0,
	}}}
	prefs, err = source.Preferences(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if prefs.StreakMinSeconds != 120 || prefs.StreakMinTopics != 1 {
		t.Fatalf("prefs = %+v, want 120s kept and the topic default 1", prefs)
	}
}
