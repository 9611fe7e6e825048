package in

import (
	"context"

	"konkrete/internal/modules/assist/dto"
)

// Usecase is the external-oracle surface: icon suggestions for new
// topics and the coach chat.
type Usecase interface {
	// ClassifyIcon suggests an icon for a topic name, or returns
	// apperrors.ErrAssistUnavailable when no plugin is configured.
	ClassifyIcon(ctx context.Context, topicName string) (string, error)

	// Chat appends the user message, asks the coach and appends its
	// reply. The reply text is always usable; transport failures
	// degrade to canned responses.
	Chat(ctx context.Context, message string) (dto.ChatOutput, error)

	History(ctx context.Context) ([]dto.MessageOutput, error)
	ClearHistory(ctx context.Context) error
}
