// Package diff renders a unified diff of a description edit so the
// change can be reviewed before it is sent to the tracker.
package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns the plain unified diff between the current and the
// edited description of an issue. Returns "" when nothing changed.
func Unified(key, before, after string) string {
	if before == after {
		return ""
	}

	name := key + ".md"
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified("current/"+name, "edited/"+name, before, edits))
}

// Render wraps a unified diff in a code fence and renders it with
// Glamour for terminal display. Falls back to the plain fenced diff if
// rendering fails.
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}
	return rendered
}
