// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tido/internal/task"
	"tido/internal/view"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TITLE}\n" (4-wide right-aligned number, checkbox, title)
func FormatTask(w io.Writer, num int, t task.Task) {
	box := " "
	if t.Completed {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, box, normalizeTitle(t.Title))
}

// FormatSummary writes the remaining-count line.
func FormatSummary(w io.Writer, remaining int) {
	fmt.Fprintln(w, view.CountLabel(remaining))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
