package console

import (
	"strings"

	theme "github.com/ImGajeed76/pathkit/internal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(theme.Theme.PrimaryColor)).
	Bold(true)

// ConfirmOptions allows customization of the yes/no prompt
type ConfirmOptions struct {
	Prompt     string
	Detail     string // optional text under the prompt, e.g. the paths involved
	DefaultYes bool
	YesText    string
	NoText     string
}

func DefaultConfirmOptions() ConfirmOptions {
	return ConfirmOptions{
		Prompt:  "Continue?",
		YesText: "Yes",
		NoText:  "No",
	}
}

// Confirm shows a yes/no prompt. Escape and ctrl+c return ErrCancelled.
func Confirm(opts ...ConfirmOptions) (bool, error) {
	options := DefaultConfirmOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	m, err := tea.NewProgram(confirmModel{options: options, yes: options.DefaultYes}).Run()
	if err != nil {
		return false, err
	}

	final := m.(confirmModel)
	if final.quitted {
		return false, ErrCancelled
	}
	return final.yes, nil
}

type confirmModel struct {
	options ConfirmOptions
	yes     bool
	quitted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "y", "Y":
		m.yes = true
		return m, tea.Quit
	case "n", "N":
		m.yes = false
		return m, tea.Quit
	case "enter":
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.quitted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var builder strings.Builder

	builder.WriteString(theme.PromptStyle.Render(m.options.Prompt))
	builder.WriteString("\n")
	if m.options.Detail != "" {
		builder.WriteString(theme.MutedStyle.Render(m.options.Detail))
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	yesStyle, noStyle := theme.MutedStyle, selectedStyle
	if m.yes {
		yesStyle, noStyle = selectedStyle, theme.MutedStyle
	}
	builder.WriteString(yesStyle.Render(m.options.YesText))
	builder.WriteString("  ")
	builder.WriteString(noStyle.Render(m.options.NoText))
	builder.WriteString("\n\n")

	builder.WriteString(theme.HintStyle.Render("(←/→ to move, y/n or enter to select, esc to cancel)"))
	builder.WriteString("\n")

	return builder.String()
}
