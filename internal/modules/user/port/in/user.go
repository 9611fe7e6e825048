package in

import (
	"context"

	"konkrete/internal/modules/user/dto"
)

// Usecase manages the local accounts and the active-account pointer.
type Usecase interface {
	Register(ctx context.Context, input dto.RegisterInput) (dto.ProfileOutput, error)
	Login(ctx context.Context, email, password string) (dto.ProfileOutput, error)
	LoginAsGuest(ctx context.Context) (dto.ProfileOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, displayName string) (dto.ProfileOutput, error)
	UpdatePreferences(ctx context.Context, streakMinSeconds, streakMinTopics, dailyGoalSeconds int) (dto.ProfileOutput, error)
}
