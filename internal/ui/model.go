// Package ui is the interactive full-screen surface. It composes the task
// store, the view filter and the edit session into a Bubble Tea model.
// The visible list is rebuilt in full on every pass.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/task"
	"tido/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	store  *task.Store
	filter view.Filter
	mode   mode

	input  textinput.Model
	edit   *view.EditSession
	cursor int

	keys   KeyMap
	help   help.Model
	status string

	width  int
	height int
}

// New creates a Model over store. The store must already be loaded.
func New(store *task.Store) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "What needs to be done?"
	in.CharLimit = 200
	in.Width = 40

	return Model{
		store: store,
		input: in,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. One message is handled to completion before
// the next is delivered, so every mutation persists and re-projects before
// another action is accepted.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		_, _, err := m.store.Add(m.input.Value())
		m.setStatus(err)
		m.input.Reset()
		m.mode = modeList
		m.cursor = 0
		return m, nil
	case "esc":
		m.input.Reset()
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.setStatus(m.edit.Commit(m.store))
		m.edit = nil
		m.mode = modeList
		m.clampCursor()
		return m, nil
	case "esc":
		// Cancel: discard the draft, no mutation; the next render comes
		// from the last committed store state.
		m.edit = nil
		m.mode = modeList
		return m, nil
	}
	cmd := m.edit.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(snap.Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.selected(snap); ok {
			_, err := m.store.Toggle(row.ID)
			m.setStatus(err)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Edit):
		if row, ok := m.selected(snap); ok {
			// Starting a new edit replaces any active session.
			m.edit = view.StartEdit(row)
			m.mode = modeEdit
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(snap); ok {
			_, err := m.store.Remove(row.ID)
			m.setStatus(err)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.ToggleAll):
		_, err := m.store.SetAllCompleted(!snap.AllCompleted)
		m.setStatus(err)
		m.clampCursor()

	case key.Matches(msg, m.keys.Clear):
		_, err := m.store.ClearCompleted()
		m.setStatus(err)
		m.clampCursor()

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.cursor = 0

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		switch msg.String() {
		case "1":
			m.filter = view.All
			m.cursor = 0
		case "2":
			m.filter = view.Active
			m.cursor = 0
		case "3":
			m.filter = view.Completed
			m.cursor = 0
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("tido"))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if !snap.HasTasks {
		b.WriteString(emptyStyle.Render("Nothing to do. Press a to add a task."))
		b.WriteString("\n")
	} else {
		for i, row := range snap.Rows {
			b.WriteString(m.renderRow(row, i == m.cursor))
			b.WriteString("\n")
		}
		if len(snap.Rows) == 0 {
			b.WriteString(emptyStyle.Render(fmt.Sprintf("No %s tasks.", m.filter)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render(m.summary(snap)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderRow(row task.Task, selected bool) string {
	if m.edit != nil && m.edit.TaskID() == row.ID {
		return "  " + m.edit.View()
	}

	box := "[ ]"
	title := row.Title
	if row.Completed {
		box = "[x]"
		title = completedStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s", box, title)
	if selected && m.mode == modeList {
		return selectedStyle.Render("▸ ") + line
	}
	return taskStyle.Render(line)
}

func (m Model) summary(snap view.Snapshot) string {
	toggleAll := "[ ]"
	if snap.AllCompleted {
		toggleAll = "[x]"
	}
	return fmt.Sprintf("%s · filter: %s · all done %s", snap.CountLabel, m.filter, toggleAll)
}

// snapshot rebuilds the projection from the current store state.
func (m Model) snapshot() view.Snapshot {
	return view.Project(m.store.Tasks(), m.filter)
}

func (m Model) selected(snap view.Snapshot) (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(snap.Rows) {
		return task.Task{}, false
	}
	return snap.Rows[m.cursor], true
}

func (m *Model) clampCursor() {
	rows := len(m.snapshot().Rows)
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}
