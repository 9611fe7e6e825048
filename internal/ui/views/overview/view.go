package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	analyticsdto "konkrete/internal/modules/analytics/dto"
	"konkrete/internal/ui/theme"
)

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Model renders the read-only dashboard: streak, focus distribution and
// the weekly bars.
type Model struct {
	Streak       analyticsdto.StreakOutput
	Distribution analyticsdto.DistributionOutput
	Weekly       analyticsdto.WeeklyOutput
	Width        int
}

func (m Model) View() string {
	sections := []string{
		m.streakPane(),
		m.distributionPane(),
		m.weeklyPane(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) streakPane() string {
	value := theme.Hot.Render(fmt.Sprintf("%d day streak", m.Streak.Days))
	if m.Streak.Days == 0 {
		value = theme.MutedText.Render("no streak yet — log some focus today")
	}
	return theme.Pane.Width(m.paneWidth()).Render(
		theme.Title.Render("Streak") + "\n" + value,
	)
}

func (m Model) distributionPane() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Focus — " + m.Distribution.Window))
	if len(m.Distribution.Entries) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.MutedText.Render("nothing tracked in this window"))
		return theme.Pane.Width(m.paneWidth()).Render(b.String())
	}
	barWidth := max(m.paneWidth()-30, 10)
	for _, entry := range m.Distribution.Entries {
		filled := int(entry.Share * float64(barWidth))
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(entry.Color)).
			Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-14s %s %3.0f%%  %s",
			trim(entry.Name, 14), bar, entry.Share*100,
			theme.MutedText.Render(formatSeconds(entry.Seconds)),
		))
	}
	b.WriteString("\n")
	b.WriteString(theme.MutedText.Render("total " + formatSeconds(m.Distribution.TotalSeconds)))
	return theme.Pane.Width(m.paneWidth()).Render(b.String())
}

func (m Model) weeklyPane() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("This Week"))
	scale := m.Weekly.MaxScale
	if scale <= 0 {
		scale = 1
	}
	barWidth := max(m.paneWidth()-20, 10)
	for i, minutes := range m.Weekly.Minutes {
		filled := int(minutes / scale * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
		bar := lipgloss.NewStyle().Foreground(theme.Blue).
			Render(strings.Repeat("▇", filled))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s %s",
			dayLabels[i], bar,
			theme.MutedText.Render(fmt.Sprintf("%.0fm", minutes)),
		))
	}
	if m.Weekly.GoalMinutes > 0 {
		b.WriteString("\n")
		b.WriteString(theme.MutedText.Render(fmt.Sprintf("daily goal %.0fm", m.Weekly.GoalMinutes)))
	}
	return theme.Pane.Width(m.paneWidth()).Render(b.String())
}

func (m Model) paneWidth() int {
	return max(m.Width-4, 30)
}

func trim(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func formatSeconds(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
