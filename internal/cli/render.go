package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultRenderWidth = 80

// renderMarkdown renders a composed prompt for the terminal.
func renderMarkdown(text string, width int) (string, error) {
	if width <= 0 {
		width = defaultRenderWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// previewRenderer returns the function the wizard uses to draw its preview
// pane. Rendering failures fall back to the raw text.
func previewRenderer(markdown bool) func(text string, width int) string {
	if !markdown {
		return func(text string, _ int) string { return text }
	}
	return func(text string, width int) string {
		out, err := renderMarkdown(text, width)
		if err != nil {
			return text
		}
		return out
	}
}
