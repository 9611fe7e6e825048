package out

import (
	"context"

	"konkrete/internal/modules/assist/domain"
)

// Oracle is one conversation with the assistant plugin process.
type Oracle interface {
	ClassifyIcon(ctx context.Context, manifest domain.Manifest, topicName string) (string, error)
	CoachReply(ctx context.Context, manifest domain.Manifest, history []domain.ChatMessage, message, contextPrompt string) (string, error)
}

// ManifestStore loads the assistant manifest; it returns
// apperrors.ErrAssistUnavailable when none is configured.
type ManifestStore interface {
	Load(ctx context.Context) (domain.Manifest, error)
}

// HistoryStore persists the per-account chat transcript.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.ChatMessage, error)
	Save(ctx context.Context, history []domain.ChatMessage) error
	Clear(ctx context.Context) error
}
