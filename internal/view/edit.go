package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/task"
)

// EditSession is the transient inline-edit state for one task. At most one
// session exists at a time; starting a new edit replaces any active one and
// its draft is discarded.
type EditSession struct {
	taskID string
	input  textinput.Model
}

// StartEdit opens a session for t with the draft pre-filled with the
// current title and the cursor at the end of the text.
func StartEdit(t task.Task) *EditSession {
	in := textinput.New()
	in.Prompt = ""
	in.SetValue(t.Title)
	in.Focus()
	in.CursorEnd()
	return &EditSession{taskID: t.ID, input: in}
}

// TaskID returns the id of the task being edited.
func (e *EditSession) TaskID() string {
	return e.taskID
}

// Draft returns the current draft text.
func (e *EditSession) Draft() string {
	return e.input.Value()
}

// Update forwards msg to the draft field.
func (e *EditSession) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// View renders the editable field that replaces the task's normal row.
func (e *EditSession) View() string {
	return e.input.View()
}

// Commit resolves the session against the store: a non-blank draft renames
// the task, while an edit reduced to nothing deletes the item instead of
// leaving an empty title. Either way the session is over; the caller drops
// it and re-renders.
func (e *EditSession) Commit(s *task.Store) error {
	draft := strings.TrimSpace(e.Draft())
	if draft == "" {
		_, err := s.Remove(e.taskID)
		return err
	}
	_, err := s.Rename(e.taskID, draft)
	return err
}
