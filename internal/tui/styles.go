package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette. Adaptive colors keep the panels readable on both light
// and dark terminals.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "57", Dark: "99"}
	colorDim     = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "31", Dark: "39"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	colorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	colorError   = lipgloss.AdaptiveColor{Light: "124", Dark: "196"}
)

// Style variables for the dashboard panels.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	versionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	elapsedStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	feedPendingStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	feedURLStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	feedStageStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	feedDoneStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	feedErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	memSparklineStyle = lipgloss.NewStyle().
				Foreground(colorWarning)
)
