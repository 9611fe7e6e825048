package bootstrap

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	analyticsinadapter "konkrete/internal/modules/analytics/adapter/in"
	analyticsout "konkrete/internal/modules/analytics/port/out"
	analyticsusecase "konkrete/internal/modules/analytics/usecase"
	assistinadapter "konkrete/internal/modules/assist/adapter/in"
	assistoutadapter "konkrete/internal/modules/assist/adapter/out"
	assistusecase "konkrete/internal/modules/assist/usecase"
	habitinadapter "konkrete/internal/modules/habit/adapter/in"
	habitoutadapter "konkrete/internal/modules/habit/adapter/out"
	habitservice "konkrete/internal/modules/habit/service"
	habitusecase "konkrete/internal/modules/habit/usecase"
	topicinadapter "konkrete/internal/modules/topic/adapter/in"
	topicoutadapter "konkrete/internal/modules/topic/adapter/out"
	topicservice "konkrete/internal/modules/topic/service"
	topicusecase "konkrete/internal/modules/topic/usecase"
	trackerinadapter "konkrete/internal/modules/tracker/adapter/in"
	trackeroutadapter "konkrete/internal/modules/tracker/adapter/out"
	trackerout "konkrete/internal/modules/tracker/port/out"
	trackerservice "konkrete/internal/modules/tracker/service"
	trackerusecase "konkrete/internal/modules/tracker/usecase"
	userinadapter "konkrete/internal/modules/user/adapter/in"
	useroutadapter "konkrete/internal/modules/user/adapter/out"
	userdomain "konkrete/internal/modules/user/domain"
	userin "konkrete/internal/modules/user/port/in"
	userservice "konkrete/internal/modules/user/service"
	userusecase "konkrete/internal/modules/user/usecase"
	"konkrete/internal/platform/clock"
	"konkrete/internal/platform/config"
	"konkrete/internal/platform/id"
	"konkrete/internal/platform/logging"
	"konkrete/internal/platform/records"
	uiapp "konkrete/internal/ui/app"
)

type App struct {
	AccountCLI   userinadapter.CLIHandler
	TopicCLI     topicinadapter.CLIHandler
	TimerCLI     trackerinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	HabitCLI     habitinadapter.CLIHandler
	AssistCLI    assistinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	log := logging.New(cfg.LogLevel)

	store, err := records.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	accountSvc := userservice.NewAccountService(clk, ids, useroutadapter.NewRecordIdentityStore(store))
	userUC := userusecase.NewInteractor(accountSvc)

	topicSvc := topicservice.NewTopicService(clk, ids, topicoutadapter.NewRecordTopicStore(store, accountSvc))

	timerSvc := trackerservice.NewTimerService(clk, trackeroutadapter.NewRecordSnapshotStore(store, accountSvc))
	trackerUC := trackerusecase.NewInteractor(
		timerSvc,
		clk,
		ids,
		trackeroutadapter.NewRecordSessionLog(store, accountSvc),
		topicDirectory{svc: topicSvc},
	)

	// The topic usecase wants the assist usecase as its icon oracle,
	// and the assist usecase wants the topic usecase for coach context.
	// The lazy classifier carries the back edge.
	classifier := &lazyClassifier{}
	topicUC := topicusecase.NewInteractor(topicSvc, trackerUC, classifier, log)

	analyticsUC := analyticsusecase.NewInteractor(clk, trackerUC, topicUC, preferenceSource{users: userUC})

	assistUC := assistusecase.NewInteractor(
		clk,
		assistoutadapter.NewFileManifestStore(cfg.Home, cfg.AssistManifest),
		assistoutadapter.NewGRPCOracle(),
		assistoutadapter.NewRecordHistoryStore(store, accountSvc),
		userUC,
		topicUC,
		trackerUC,
		analyticsUC,
		log,
	)
	classifier.set(assistUC)

	habitSvc := habitservice.NewHabitService(clk, ids,
		habitoutadapter.NewRecordObjectiveStore(store, accountSvc),
		habitoutadapter.NewRecordGymDayStore(store, accountSvc),
	)
	habitUC := habitusecase.NewInteractor(habitSvc)

	return &App{
		AccountCLI:   userinadapter.NewCLIHandler(userUC),
		TopicCLI:     topicinadapter.NewCLIHandler(topicUC),
		TimerCLI:     trackerinadapter.NewCLIHandler(trackerUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		HabitCLI:     habitinadapter.NewCLIHandler(habitUC),
		AssistCLI:    assistinadapter.NewCLIHandler(assistUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TopicCLI, app.TimerCLI, app.AnalyticsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// topicDirectory adapts the topic service to the tracker's out-port so
// stopping a timer can resolve and credit the tracked topic.
type topicDirectory struct {
	svc *topicservice.TopicService
}

func (d topicDirectory) Lookup(ctx context.Context, topicID string) (trackerout.TopicRef, error) {
	topic, err := d.svc.Get(ctx, topicID)
	if err != nil {
		return trackerout.TopicRef{}, err
	}
	return trackerout.TopicRef{ID: topic.ID, Name: topic.Name}, nil
}

func (d topicDirectory) AddTrackedMinutes(ctx context.Context, topicID string, minutes float64) error {
	_, err := d.svc.ApplyMinutes(ctx, topicID, minutes)
	return err
}

// preferenceSource exposes the account's stored settings to analytics,
// defaulting each streak field independently when unset.
type preferenceSource struct {
	users userin.Usecase
}

func (p preferenceSource) Preferences(ctx context.Context) (analyticsout.Preferences, error) {
	profile, err := p.users.Current(ctx)
	if err != nil {
		return analyticsout.Preferences{}, err
	}
	prefs := profile.Preferences
	defaults := userdomain.DefaultPreferences()
	if prefs.StreakMinSeconds <= 0 {
		prefs.StreakMinSeconds = defaults.StreakMinSeconds
	}
	if prefs.StreakMinTopics <= 0 {
		prefs.StreakMinTopics = defaults.StreakMinTopics
	}
	return analyticsout.Preferences{
		StreakMinSeconds: prefs.StreakMinSeconds,
		StreakMinTopics:  prefs.StreakMinTopics,
		DailyGoalMinutes: float64(prefs.DailyGoalSeconds) / 60,
	}, nil
}

// lazyClassifier defers to a delegate installed after construction.
type lazyClassifier struct {
	mu       sync.RWMutex
	delegate interface {
		ClassifyIcon(ctx context.Context, topicName string) (string, error)
	}
}

func (l *lazyClassifier) set(delegate interface {
	ClassifyIcon(ctx context.Context, topicName string) (string, error)
}) {
	l.mu.Lock()
	l.delegate = delegate
	l.mu.Unlock()
}

func (l *lazyClassifier) ClassifyIcon(ctx context.Context, topicName string) (string, error) {
	l.mu.RLock()
	delegate := l.delegate
	l.mu.RUnlock()
	if delegate == nil {
		return "", nil
	}
	return delegate.ClassifyIcon(ctx, topicName)
}
