package usecase

import (
	"context"

	"konkrete/internal/modules/user/domain"
	"konkrete/internal/modules/user/dto"
	"konkrete/internal/modules/user/service"
)

// Interactor adapts the account service to the inbound port.
type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Register(ctx, input.Email, input.DisplayName, input.Password)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Login(ctx context.Context, email, password string) (dto.ProfileOutput, error) {
	profile, err := i.svc.Login(ctx, email, password)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) LoginAsGuest(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.LoginAsGuest(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Current(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, displayName string) (dto.ProfileOutput, error) {
	profile, err := i.svc.UpdateProfile(ctx, displayName)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) UpdatePreferences(ctx context.Context, streakMinSeconds, streakMinTopics, dailyGoalSeconds int) (dto.ProfileOutput, error) {
	profile, err := i.svc.UpdatePreferences(ctx, streakMinSeconds, streakMinTopics, dailyGoalSeconds)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func toOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Preferences: dto.PreferencesOutput{
			StreakMinSeconds: p.Preferences.StreakMinSeconds,
			StreakMinTopics:  p.Preferences.StreakMinTopics,
			DailyGoalSeconds: p.Preferences.DailyGoalSeconds,
		},
		CreatedAt: p.CreatedAt,
	}
}
