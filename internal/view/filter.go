// Package view projects the task collection into what the user sees: the
// active filter, the visible row list with its summary fields, and the
// transient inline-edit session.
package view

import (
	"fmt"
	"strings"

	"tido/internal/task"
)

// Filter selects the visible subset of the collection. It never affects
// the underlying collection and is not persisted.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// Accepts reports whether t is visible under the filter.
func (f Filter) Accepts(t task.Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case All:
		return Active
	case Active:
		return Completed
	default:
		return All
	}
}

// ParseFilter parses a filter name. Empty input means All.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "active", "open":
		return Active, nil
	case "completed", "done":
		return Completed, nil
	default:
		return All, fmt.Errorf("unknown filter: %s", s)
	}
}
