package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	padding  = 2
	maxWidth = 80
)

type ProgressOptions struct {
	Width   int
	Padding int
	// Output defaults to the terminal
	Output io.Writer
}

func DefaultProgressOptions() ProgressOptions {
	return ProgressOptions{
		Width:   maxWidth,
		Padding: padding,
	}
}

// Progress renders a bar for a multi step job, such as copying a tree file
// by file, on its own goroutine. Report progress with Update and end with
// Finish or Close.
type Progress struct {
	program *tea.Program
	done    chan struct{}
	err     error
	once    sync.Once
}

type progressMsg struct {
	done  int
	total int
	item  string
}

type finishMsg struct{}

func NewProgress(title string, opts ...ProgressOptions) *Progress {
	options := DefaultProgressOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	programOpts := []tea.ProgramOption{tea.WithInput(nil)}
	if options.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(options.Output))
	}

	p := &Progress{
		program: tea.NewProgram(newProgressModel(title, options), programOpts...),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		if _, err := p.program.Run(); err != nil {
			p.err = fmt.Errorf("progress bar: %w", err)
		}
	}()

	return p
}

// Update reports that done of total steps are complete, item being the last one.
func (p *Progress) Update(done, total int, item string) {
	p.program.Send(progressMsg{done: done, total: total, item: item})
}

// Finish fills the bar and waits for the final frame to be drawn.
func (p *Progress) Finish() error {
	p.once.Do(func() { p.program.Send(finishMsg{}) })
	<-p.done
	return p.err
}

// Close stops the bar where it is, e.g. after a failed step.
func (p *Progress) Close() error {
	p.once.Do(p.program.Quit)
	<-p.done
	return p.err
}

type progressModel struct {
	bar     progress.Model
	title   string
	options ProgressOptions
	done    int
	total   int
	item    string
	percent float64
}

func newProgressModel(title string, options ProgressOptions) progressModel {
	return progressModel{
		bar: progress.New(
			progress.WithGradient(theme.Theme.GradientColors[0], theme.Theme.GradientColors[1]),
			progress.WithWidth(options.Width),
		),
		title:   title,
		options: options,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - m.options.Padding*2 - 4
		if m.bar.Width > m.options.Width {
			m.bar.Width = m.options.Width
		}
	case progressMsg:
		m.done, m.total, m.item = msg.done, msg.total, msg.item
		if msg.total > 0 {
			m.percent = float64(msg.done) / float64(msg.total)
		}
	case finishMsg:
		m.percent = 1
		if m.total > 0 {
			m.done = m.total
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	pad := strings.Repeat(" ", m.options.Padding)

	var builder strings.Builder
	builder.WriteString("\n" + pad + theme.PromptStyle.Render(m.title) + "\n\n")
	builder.WriteString(pad + m.bar.ViewAs(m.percent) + "\n")
	if m.total > 0 {
		builder.WriteString(pad + theme.MutedStyle.Render(fmt.Sprintf("%d/%d %s", m.done, m.total, m.item)) + "\n")
	}
	builder.WriteString("\n")
	return builder.String()
}
