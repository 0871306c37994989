// Package tui implements the interactive result browser the find command's
// --tui flag launches: a Bubble Tea table of matches with a glamour-rendered
// Markdown preview pane, grounded on the teacher's fuzzy-finder preview
// renderer.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// RenderPreview renders path's Markdown content for a terminal preview
// pane, word-wrapped to width.
func RenderPreview(path string, width int) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("error reading file: %v", err)
	}

	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Sprintf("error creating renderer: %v", err)
	}

	rendered, err := r.Render(string(content))
	if err != nil {
		return fmt.Sprintf("error rendering markdown: %v", err)
	}
	return rendered
}
