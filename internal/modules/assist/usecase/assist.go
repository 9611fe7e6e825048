package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	analyticsin "konkrete/internal/modules/analytics/port/in"
	"konkrete/internal/modules/assist/domain"
	"konkrete/internal/modules/assist/dto"
	"konkrete/internal/modules/assist/port/out"
	topicdomain "konkrete/internal/modules/topic/domain"
	topicin "konkrete/internal/modules/topic/port/in"
	trackerin "konkrete/internal/modules/tracker/port/in"
	userin "konkrete/internal/modules/user/port/in"
	"konkrete/internal/platform/clock"
	apperrors "konkrete/internal/platform/errors"
)

// Interactor fronts the assistant plugin. Classification propagates
// unavailability so callers can skip it; the coach chat instead
// degrades to canned replies because its callers always need text.
type Interactor struct {
	clock     clock.Clock
	manifests out.ManifestStore
	oracle    out.Oracle
	history   out.HistoryStore
	users     userin.Usecase
	topics    topicin.Usecase
	tracker   trackerin.Usecase
	analytics analyticsin.Usecase
	log       zerolog.Logger
}

func NewInteractor(
	clk clock.Clock,
	manifests out.ManifestStore,
	oracle out.Oracle,
	history out.HistoryStore,
	users userin.Usecase,
	topics topicin.Usecase,
	tracker trackerin.Usecase,
	analytics analyticsin.Usecase,
	log zerolog.Logger,
) *Interactor {
	return &Interactor{
		clock:     clk,
		manifests: manifests,
		oracle:    oracle,
		history:   history,
		users:     users,
		topics:    topics,
		tracker:   tracker,
		analytics: analytics,
		log:       log,
	}
}

// ClassifyIcon asks the assistant for an icon suggestion. Anything
// outside the fixed icon set is discarded.
func (i *Interactor) ClassifyIcon(ctx context.Context, topicName string) (string, error) {
	manifest, err := i.manifests.Load(ctx)
	if err != nil {
		return "", err
	}
	icon, err := i.oracle.ClassifyIcon(ctx, manifest, topicName)
	if err != nil {
		return "", err
	}
	icon = strings.ToLower(strings.TrimSpace(icon))
	if !topicdomain.ValidIcon(icon) {
		i.log.Debug().Str("icon", icon).Str("topic", topicName).Msg("discarding unknown icon suggestion")
		return "", nil
	}
	return icon, nil
}

// Chat records the user message and the coach's answer. The answer is
// always text: no configured assistant yields the offline reply and a
// failed call yields the retry reply.
func (i *Interactor) Chat(ctx context.Context, message string) (dto.ChatOutput, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return dto.ChatOutput{}, apperrors.ErrInvalidInput
	}
	history, err := i.history.Load(ctx)
	if err != nil {
		return dto.ChatOutput{}, err
	}

	reply := i.reply(ctx, history, message)

	now := i.clock.Now()
	history = append(history,
		domain.ChatMessage{Role: domain.RoleUser, Text: message, At: now},
		domain.ChatMessage{Role: domain.RoleCoach, Text: reply, At: now},
	)
	if err := i.history.Save(ctx, history); err != nil {
		return dto.ChatOutput{}, err
	}
	return dto.ChatOutput{Reply: reply, History: toOutputs(history)}, nil
}

func (i *Interactor) reply(ctx context.Context, history []domain.ChatMessage, message string) string {
	manifest, err := i.manifests.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAssistUnavailable) {
			i.log.Debug().Err(err).Msg("assistant manifest load failed")
		}
		return domain.OfflineReply
	}
	prompt, err := i.coachContext(ctx)
	if err != nil {
		i.log.Debug().Err(err).Msg("coach context assembly failed")
		return domain.RetryReply
	}
	text, err := i.oracle.CoachReply(ctx, manifest, history, message, prompt)
	if err != nil {
		i.log.Debug().Err(err).Msg("coach reply failed")
		return domain.RetryReply
	}
	if strings.TrimSpace(text) == "" {
		return domain.EmptyReply
	}
	return text
}

func (i *Interactor) coachContext(ctx context.Context) (string, error) {
	profile, err := i.users.Current(ctx)
	if err != nil {
		return "", err
	}
	streak, err := i.analytics.Streak(ctx)
	if err != nil {
		return "", err
	}
	topics, err := i.topics.List(ctx)
	if err != nil {
		return "", err
	}
	status, err := i.tracker.Status(ctx)
	if err != nil {
		return "", err
	}
	sessions, err := i.tracker.Sessions(ctx)
	if err != nil {
		return "", err
	}

	coach := domain.CoachContext{
		DisplayName: profile.DisplayName,
		StreakDays:  streak.Days,
	}
	for _, t := range topics {
		coach.TotalFocusMinutes += t.TotalMinutes
		coach.Topics = append(coach.Topics, domain.TopicSummary{Name: t.Name, TotalMinutes: t.TotalMinutes})
	}
	if status.ActiveTopicID != "" {
		if topic, err := i.topics.Get(ctx, status.ActiveTopicID); err == nil {
			coach.CurrentTopicName = topic.Name
			coach.CurrentElapsedSecs = status.ElapsedSeconds
		}
	}
	for _, s := range sessions {
		coach.RecentSessions = append(coach.RecentSessions, domain.SessionSummary{
			TopicName: s.TopicName,
			Minutes:   s.DurationSeconds / 60,
		})
		if len(coach.RecentSessions) == 3 {
			break
		}
	}
	return coach.Prompt(), nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.MessageOutput, error) {
	history, err := i.history.Load(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(history), nil
}

func (i *Interactor) ClearHistory(ctx context.Context) error {
	return i.history.Clear(ctx)
}

func toOutputs(history []domain.ChatMessage) []dto.MessageOutput {
	outputs := make([]dto.MessageOutput, 0, len(history))
	for _, msg := range history {
		outputs = append(outputs, dto.MessageOutput{Role: msg.Role, Text: msg.Text, At: msg.At})
	}
	return outputs
}
