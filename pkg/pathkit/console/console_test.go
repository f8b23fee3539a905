package console

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInputModel_Validation(t *testing.T) {
	m, err := newInputModel(InputOptions{
		Prompt:     "Port:",
		Regex:      `^\d+$`,
		RegexError: "digits only",
		Required:   true,
	})
	require.NoError(t, err)

	ok, msg := m.validate("")
	assert.False(t, ok)
	assert.Equal(t, "Input is required", msg)

	ok, msg = m.validate("22a")
	assert.False(t, ok)
	assert.Equal(t, "digits only", msg)

	ok, _ = m.validate("2222")
	assert.True(t, ok)

	_, err = newInputModel(InputOptions{Regex: "("})
	assert.Error(t, err)
}

func TestInputModel_Keys(t *testing.T) {
	m, err := newInputModel(InputOptions{Prompt: "Name:", Default: "deploy", Required: true})
	require.NoError(t, err)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))
	assert.Equal(t, "deploy", next.(inputModel).textInput.Value())

	empty, err := newInputModel(InputOptions{Required: true})
	require.NoError(t, err)
	_, cmd = empty.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(t, cmd), "required input blocks enter")

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(t, cmd))
	assert.True(t, next.(inputModel).quitted)
}

func TestInputModel_SecretHidesValue(t *testing.T) {
	m, err := newInputModel(InputOptions{Prompt: "Password:", Default: "hunter2", Secret: true})
	require.NoError(t, err)

	assert.NotContains(t, m.View(), "hunter2")
	assert.Contains(t, m.View(), "Password:")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name    string
		start   bool
		keys    []string
		want    bool
		quitted bool
	}{
		{"enter keeps default no", false, []string{"enter"}, false, false},
		{"toggle then enter", false, []string{"right", "enter"}, true, false},
		{"y answers directly", false, []string{"y"}, true, false},
		{"n answers directly", true, []string{"n"}, false, false},
		{"escape cancels", true, []string{"esc"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = confirmModel{options: DefaultConfirmOptions(), yes: tt.start}
			var cmd tea.Cmd
			for _, key := range tt.keys {
				model, cmd = model.Update(keyMsg(key))
			}
			assert.True(t, isQuit(t, cmd))
			assert.Equal(t, tt.want, model.(confirmModel).yes)
			assert.Equal(t, tt.quitted, model.(confirmModel).quitted)
		})
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestConfirmModel_ViewShowsDetail(t *testing.T) {
	m := confirmModel{options: ConfirmOptions{Prompt: "Move?", Detail: "/a -> /b", YesText: "Yes", NoText: "No"}}
	view := m.View()
	assert.Contains(t, view, "Move?")
	assert.Contains(t, view, "/a -> /b")
}

func TestProgressModel(t *testing.T) {
	var model tea.Model = newProgressModel("Copying", DefaultProgressOptions())

	model, cmd := model.Update(progressMsg{done: 1, total: 4, item: "a.txt"})
	assert.Nil(t, cmd)
	assert.InDelta(t, 0.25, model.(progressModel).percent, 1e-9)
	assert.Contains(t, model.View(), "1/4 a.txt")
	assert.Contains(t, model.View(), "Copying")

	model, cmd = model.Update(finishMsg{})
	assert.True(t, isQuit(t, cmd))
	assert.Equal(t, 1.0, model.(progressModel).percent)
	assert.Contains(t, model.View(), "4/4")
}

func TestProgress_Headless(t *testing.T) {
	var out bytes.Buffer
	p := NewProgress("Copying", ProgressOptions{Width: 20, Padding: 1, Output: &out})

	for i := 1; i <= 3; i++ {
		p.Update(i, 3, "file")
	}
	require.NoError(t, p.Finish())
	assert.NoError(t, p.Close(), "closing after finish is a no-op")
	assert.NotEmpty(t, out.String())
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Globs\n\nUse `**` to cross directories.", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Globs")
	assert.Contains(t, out, "cross directories")
}
