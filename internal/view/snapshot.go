package view

import (
	"fmt"

	"tido/internal/task"
)

// Snapshot is one full projection of the collection through a filter.
// It is rebuilt from scratch on every pass; there is no diffing against
// prior output.
type Snapshot struct {
	// Rows are the visible tasks in collection order.
	Rows []task.Task

	// Remaining is the incomplete count over the unfiltered collection.
	Remaining int

	// CountLabel is the remaining count with its pluralized noun,
	// e.g. "1 item left", "3 items left".
	CountLabel string

	// AllCompleted is true when the collection is non-empty and every
	// task is completed.
	AllCompleted bool

	// HasTasks governs list and footer visibility. It follows the full
	// collection, so an empty filtered view of a non-empty collection
	// still shows the footer.
	HasTasks bool
}

// Project builds a Snapshot of tasks under f.
func Project(tasks []task.Task, f Filter) Snapshot {
	snap := Snapshot{
		Rows:         make([]task.Task, 0, len(tasks)),
		HasTasks:     len(tasks) > 0,
		AllCompleted: len(tasks) > 0,
	}
	for _, t := range tasks {
		if f.Accepts(t) {
			snap.Rows = append(snap.Rows, t)
		}
		if !t.Completed {
			snap.Remaining++
			snap.AllCompleted = false
		}
	}
	snap.CountLabel = CountLabel(snap.Remaining)
	return snap
}

// CountLabel pluralizes the remaining count. Exactly 1 is singular; every
// other count, including 0, is plural.
func CountLabel(remaining int) string {
	if remaining == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", remaining)
}
