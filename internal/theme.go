package internal

import "github.com/charmbracelet/lipgloss"

type uiTheme struct {
	PrimaryColor   string
	SecondaryColor string
	ErrorColor     string
	SuccessColor   string
	TertiaryColor  string
	// GradientColors feed the copy progress bar, start to end
	GradientColors [2]string
}

var Theme = uiTheme{
	PrimaryColor:   "75",
	SecondaryColor: "#ccc",
	ErrorColor:     "#FF5F5F",
	SuccessColor:   "#5FD787",
	TertiaryColor:  "#666666",
	GradientColors: [2]string{"#5956e0", "#e86ef6"},
}

// Styles shared by the console widgets and the CLI output.
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.PrimaryColor)).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.PrimaryColor))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.ErrorColor)).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.SuccessColor))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.TertiaryColor)).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Theme.TertiaryColor))
)
