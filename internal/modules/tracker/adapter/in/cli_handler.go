package in

import (
	"context"

	trackerdto "konkrete/internal/modules/tracker/dto"
	trackerin "konkrete/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Select(ctx context.Context, topicID string) (trackerdto.StatusOutput, error) {
	return h.usecase.Select(ctx, topicID)
}

func (h CLIHandler) Start(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (trackerdto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (trackerdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Sessions(ctx context.Context) ([]trackerdto.SessionOutput, error) {
	return h.usecase.Sessions(ctx)
}
