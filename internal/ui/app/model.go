package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"konkrete/internal/modules/analytics/domain"
	analyticsdto "konkrete/internal/modules/analytics/dto"
	topicdto "konkrete/internal/modules/topic/dto"
	trackerdto "konkrete/internal/modules/tracker/dto"
	"konkrete/internal/ui/theme"
	overviewview "konkrete/internal/ui/views/overview"
	trackingview "konkrete/internal/ui/views/tracking"
)

// Each port is the minimal interface this orchestration layer needs.

type topicPort interface {
	Add(ctx context.Context, name, icon string) (topicdto.TopicOutput, error)
	List(ctx context.Context) ([]topicdto.TopicOutput, error)
}

type trackerPort interface {
	Select(ctx context.Context, topicID string) (trackerdto.StatusOutput, error)
	Start(ctx context.Context) (trackerdto.StatusOutput, error)
	Pause(ctx context.Context) (trackerdto.StatusOutput, error)
	Resume(ctx context.Context) (trackerdto.StatusOutput, error)
	Stop(ctx context.Context) (trackerdto.StopOutput, error)
	Status(ctx context.Context) (trackerdto.StatusOutput, error)
}

type analyticsPort interface {
	Streak(ctx context.Context) (analyticsdto.StreakOutput, error)
	Focus(ctx context.Context, window string) (analyticsdto.DistributionOutput, error)
	Weekly(ctx context.Context, weekOffset int) (analyticsdto.WeeklyOutput, error)
}

type tabID int

const (
	tabOverview tabID = iota
	tabTracking
	tabCount
)

var tabLabels = [tabCount]string{"Overview", "Tracking"}

type tickMsg time.Time

type dataMsg struct {
	status       trackerdto.StatusOutput
	topics       []topicdto.TopicOutput
	streak       analyticsdto.StreakOutput
	distribution analyticsdto.DistributionOutput
	weekly       analyticsdto.WeeklyOutput
	err          error
}

type keyMap struct {
	Tab    key.Binding
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Space  key.Binding
	Stop   key.Binding
	Add    key.Binding
	Window key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Space, k.Stop, k.Add, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Up, k.Down},
		{k.Enter, k.Space, k.Stop},
		{k.Add, k.Window, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "track topic")),
	Space:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop & log")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add topic")),
	Window: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle focus window")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the top-level bubbletea program: two tabs over the same
// refreshed snapshot of engine state. A 1 Hz tick runs only while the
// timer does.
type Model struct {
	topics    topicPort
	tracker   trackerPort
	analytics analyticsPort

	tab      tabID
	window   domain.Window
	tracking trackingview.Model
	overview overviewview.Model
	help     help.Model
	input    textinput.Model
	adding   bool
	showHelp bool
	width    int
	height   int
	ticking  bool
	err      error
}

func NewModel(topics topicPort, tracker trackerPort, analytics analyticsPort) Model {
	ti := textinput.New()
	ti.Placeholder = "topic name"
	ti.CharLimit = 60

	return Model{
		topics:    topics,
		tracker:   tracker,
		analytics: analytics,
		window:    domain.WindowToday,
		help:      help.New(),
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	window := m.window
	return func() tea.Msg {
		ctx := context.Background()
		msg := dataMsg{}
		if msg.status, msg.err = m.tracker.Status(ctx); msg.err != nil {
			return msg
		}
		if msg.topics, msg.err = m.topics.List(ctx); msg.err != nil {
			return msg
		}
		if msg.streak, msg.err = m.analytics.Streak(ctx); msg.err != nil {
			return msg
		}
		if msg.distribution, msg.err = m.analytics.Focus(ctx, string(window)); msg.err != nil {
			return msg
		}
		msg.weekly, msg.err = m.analytics.Weekly(ctx, 0)
		return msg
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tracking.Width = msg.Width
		m.overview.Width = msg.Width
		return m, nil

	case dataMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tracking.Status = msg.status
		m.tracking.Topics = msg.topics
		if m.tracking.Cursor >= len(msg.topics) {
			m.tracking.Cursor = max(len(msg.topics)-1, 0)
		}
		m.overview.Streak = msg.streak
		m.overview.Distribution = msg.distribution
		m.overview.Weekly = msg.weekly

		// Arm or drop the tick with the timer, never both ways at once.
		if msg.status.State == "running" && !m.ticking {
			m.ticking = true
			return m, tick()
		}
		if msg.status.State != "running" {
			m.ticking = false
		}
		return m, nil

	case tickMsg:
		if !m.ticking {
			return m, nil
		}
		return m, tea.Batch(m.refresh(), tick())

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleAddKey owns every keystroke while the add-topic input is open,
// so list and timer bindings cannot fire mid-typing.
func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Reset()
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		return m, m.command(func(ctx context.Context) error {
			_, err := m.topics.Add(ctx, name, "")
			return err
		})
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, keys.Tab):
		m.tab = (m.tab + 1) % tabCount
		return m, m.refresh()
	case key.Matches(msg, keys.Window):
		m.window = nextWindow(m.window)
		return m, m.refresh()
	}

	if m.tab != tabTracking {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Add):
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Up):
		if m.tracking.Cursor > 0 {
			m.tracking.Cursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.tracking.Cursor < len(m.tracking.Topics)-1 {
			m.tracking.Cursor++
		}
		return m, nil
	case key.Matches(msg, keys.Enter):
		topic, ok := m.tracking.SelectedTopic()
		if !ok {
			return m, nil
		}
		return m, m.command(func(ctx context.Context) error {
			if _, err := m.tracker.Select(ctx, topic.ID); err != nil {
				return err
			}
			_, err := m.tracker.Start(ctx)
			return err
		})
	case key.Matches(msg, keys.Space):
		state := m.tracking.Status.State
		return m, m.command(func(ctx context.Context) error {
			var err error
			if state == "running" {
				_, err = m.tracker.Pause(ctx)
			} else {
				_, err = m.tracker.Resume(ctx)
			}
			return err
		})
	case key.Matches(msg, keys.Stop):
		return m, m.command(func(ctx context.Context) error {
			_, err := m.tracker.Stop(ctx)
			return err
		})
	}
	return m, nil
}

// command runs a mutate action then refreshes the snapshot.
func (m Model) command(action func(ctx context.Context) error) tea.Cmd {
	refresh := m.refresh()
	return func() tea.Msg {
		if err := action(context.Background()); err != nil {
			return dataMsg{err: err}
		}
		return refresh()
	}
}

func nextWindow(current domain.Window) domain.Window {
	windows := domain.Windows()
	for i, w := range windows {
		if w == current {
			return windows[(i+1)%len(windows)]
		}
	}
	return domain.WindowToday
}

func (m Model) View() string {
	var body string
	switch m.tab {
	case tabOverview:
		body = m.overview.View()
	default:
		body = m.tracking.View()
	}

	sections := []string{m.tabBar(), body}
	if m.adding {
		sections = append(sections, theme.Title.Render("new topic: ")+m.input.View())
	}
	if m.err != nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Red).Render("error: "+m.err.Error()))
	}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(keys.ShortHelp()))
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) tabBar() string {
	items := make([]string, 0, int(tabCount))
	for i, label := range tabLabels {
		style := theme.MutedText
		if tabID(i) == m.tab {
			style = theme.Title
		}
		items = append(items, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items[0], theme.MutedText.Render("  ·  "), items[1])
}
