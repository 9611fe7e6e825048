package in

import (
	"context"

	assistdto "konkrete/internal/modules/assist/dto"
	assistin "konkrete/internal/modules/assist/port/in"
)

type CLIHandler struct {
	usecase assistin.Usecase
}

func NewCLIHandler(usecase assistin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ClassifyIcon(ctx context.Context, topicName string) (string, error) {
	return h.usecase.ClassifyIcon(ctx, topicName)
}

func (h CLIHandler) Chat(ctx context.Context, message string) (assistdto.ChatOutput, error) {
	return h.usecase.Chat(ctx, message)
}

func (h CLIHandler) History(ctx context.Context) ([]assistdto.MessageOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) ClearHistory(ctx context.Context) error {
	return h.usecase.ClearHistory(ctx)
}
