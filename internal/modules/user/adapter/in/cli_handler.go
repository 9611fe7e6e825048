package in

import (
	"context"

	userdto "konkrete/internal/modules/user/dto"
	userin "konkrete/internal/modules/user/port/in"
)

type CLIHandler struct {
	usecase userin.Usecase
}

func NewCLIHandler(usecase userin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Register(ctx context.Context, email, displayName, password string) (userdto.ProfileOutput, error) {
	return h.usecase.Register(ctx, userdto.RegisterInput{Email: email, DisplayName: displayName, Password: password})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (userdto.ProfileOutput, error) {
	return h.usecase.Login(ctx, email, password)
}

func (h CLIHandler) LoginAsGuest(ctx context.Context) (userdto.ProfileOutput, error) {
	return h.usecase.LoginAsGuest(ctx)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (userdto.ProfileOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, displayName string) (userdto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, displayName)
}

func (h CLIHandler) UpdatePreferences(ctx context.Context, streakMinSeconds, streakMinTopics, dailyGoalSeconds int) (userdto.ProfileOutput, error) {
	return h.usecase.UpdatePreferences(ctx, streakMinSeconds, streakMinTopics, dailyGoalSeconds)
}
