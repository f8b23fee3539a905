package console

import (
	"errors"
	"regexp"
	"strings"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("input cancelled")

// InputOptions allows customization of the input behavior
type InputOptions struct {
	Prompt      string
	Regex       string
	RegexError  string // Custom error message for regex validation
	Default     string
	Placeholder string
	CharLimit   int
	Width       int
	Required    bool // If true, empty input is not allowed
	// Secret hides the typed characters, for passwords and passphrases
	Secret bool
}

// DefaultInputOptions returns the default options
func DefaultInputOptions() InputOptions {
	return InputOptions{
		Prompt:     "Enter value:",
		CharLimit:  256,
		Width:      40,
		RegexError: "Input format is invalid",
	}
}

// Input asks for one line of text and returns it once it validates.
func Input(opts ...InputOptions) (string, error) {
	options := DefaultInputOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	model, err := newInputModel(options)
	if err != nil {
		return "", err
	}

	m, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}

	final := m.(inputModel)
	if final.quitted {
		return "", ErrCancelled
	}
	return final.textInput.Value(), nil
}

type inputModel struct {
	textInput textinput.Model
	options   InputOptions
	regex     *regexp.Regexp
	quitted   bool
}

func newInputModel(options InputOptions) (inputModel, error) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = options.CharLimit
	ti.Width = options.Width
	ti.Prompt = ""
	ti.TextStyle = theme.PathStyle
	ti.PlaceholderStyle = theme.MutedStyle

	if options.Secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	if options.Default != "" {
		ti.SetValue(options.Default)
	}
	if options.Placeholder != "" {
		ti.Placeholder = options.Placeholder
	}

	var re *regexp.Regexp
	if options.Regex != "" {
		var err error
		if re, err = regexp.Compile(options.Regex); err != nil {
			return inputModel{}, err
		}
	}

	return inputModel{textInput: ti, options: options, regex: re}, nil
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) validate(input string) (bool, string) {
	if m.options.Required && strings.TrimSpace(input) == "" {
		return false, "Input is required"
	}
	if m.regex != nil && input != "" && !m.regex.MatchString(input) {
		return false, m.options.RegexError
	}
	return true, ""
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if valid, _ := m.validate(m.textInput.Value()); valid {
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var builder strings.Builder

	builder.WriteString(theme.PromptStyle.Render(m.options.Prompt))
	builder.WriteString("\n\n")
	builder.WriteString(m.textInput.View())
	builder.WriteString("\n\n")

	if valid, errMsg := m.validate(m.textInput.Value()); !valid && m.textInput.Value() != "" {
		builder.WriteString(theme.ErrorStyle.Render(errMsg))
		builder.WriteString("\n")
	}

	builder.WriteString(theme.HintStyle.Render("(esc to cancel)"))
	builder.WriteString("\n")

	return builder.String()
}
