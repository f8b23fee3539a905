package console

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown formats markdown for the terminal, wrapped at width
// columns, in a style picked from the terminal background.
func RenderMarkdown(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
