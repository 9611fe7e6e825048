package tracking

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	topicdto "konkrete/internal/modules/topic/dto"
	trackerdto "konkrete/internal/modules/tracker/dto"
	"konkrete/internal/ui/theme"
)

// Model renders the timer pane and the selectable topic list. It holds
// no behavior; the app model feeds it fresh data and a cursor.
type Model struct {
	Status trackerdto.StatusOutput
	Topics []topicdto.TopicOutput
	Cursor int
	Width  int
}

func (m Model) SelectedTopic() (topicdto.TopicOutput, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Topics) {
		return topicdto.TopicOutput{}, false
	}
	return m.Topics[m.Cursor], true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.timerPane())
	b.WriteString("\n")
	b.WriteString(m.topicList())
	return b.String()
}

func (m Model) timerPane() string {
	state := m.Status.State
	if state == "" {
		state = "idle"
	}
	label := theme.MutedText.Render("no topic selected")
	if m.Status.ActiveTopicID != "" {
		name := m.Status.ActiveTopicID
		for _, topic := range m.Topics {
			if topic.ID == m.Status.ActiveTopicID {
				name = topic.Name
				break
			}
		}
		label = theme.Title.Render(name)
	}

	clock := theme.Timer.Render(FormatElapsed(m.Status.ElapsedSeconds))
	stateStyle := theme.MutedText
	switch state {
	case "running":
		stateStyle = theme.Good
	case "paused":
		stateStyle = theme.Hot
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		label,
		clock,
		stateStyle.Render(state),
	)
	pane := theme.Pane
	if state == "running" {
		pane = theme.PaneActive
	}
	return pane.Width(max(m.Width-4, 20)).Render(body)
}

func (m Model) topicList() string {
	if len(m.Topics) == 0 {
		return theme.MutedText.Render("no topics yet, press a to add one")
	}
	var b strings.Builder
	for i, topic := range m.Topics {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Cursor {
			cursor = "> "
			style = style.Bold(true)
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(topic.Color)).Render("●")
		active := ""
		if topic.ID == m.Status.ActiveTopicID {
			active = theme.Good.Render(" ◦ tracking")
		}
		line := fmt.Sprintf("%s%s %s %s%s",
			cursor, dot,
			style.Render(topic.Name),
			theme.MutedText.Render(fmt.Sprintf("%.0fm total", topic.TotalMinutes)),
			active,
		)
		b.WriteString(line)
		if i < len(m.Topics)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatElapsed renders seconds as H:MM:SS, or MM:SS under an hour.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
