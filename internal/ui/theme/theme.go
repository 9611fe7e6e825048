package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#000000")
	Surface = lipgloss.Color("#1C1C1E")
	Border  = lipgloss.Color("#2C2C2E")
	Text    = lipgloss.Color("#FFFFFF")
	Muted   = lipgloss.Color("#8E8E93")
	Blue    = lipgloss.Color("#007AFF")
	Green   = lipgloss.Color("#30D158")
	Orange  = lipgloss.Color("#FF9F0A")
	Red     = lipgloss.Color("#FF453A")
	Yellow  = lipgloss.Color("#FFD60A")

	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1)

	PaneActive = Pane.BorderForeground(Blue)

	Title     = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	Hot       = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	Good      = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Timer     = lipgloss.NewStyle().Foreground(Text).Bold(true)
)
