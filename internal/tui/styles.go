package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	CardBackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4A6FA5"))

	// Active players are green, stopped players red
	ActivePlayerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00C800")).
				Bold(true)

	InactivePlayerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#C80000"))

	CurrentMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#C8C8C8")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#000000")).
			Padding(0, 2)

	PressedButtonStyle = ButtonStyle.
				Background(lipgloss.Color("#FFFF00"))

	FocusedButtonStyle = ButtonStyle.
				BorderForeground(lipgloss.Color("#04B575"))

	DisabledButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("#626262"))

	GameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	LogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))
)
