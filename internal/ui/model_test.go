package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/task"
	"tido/internal/testutil"
)

func newTestModel(t *testing.T, titles ...string) (Model, *task.Store) {
	t.Helper()
	s := task.NewStore(testutil.NewMemStore(), &testutil.SeqIDs{})
	s.Load()
	for _, title := range titles {
		if _, ok, err := s.Add(title); err != nil || !ok {
			t.Fatalf("seed add %q failed: ok=%v err=%v", title, ok, err)
		}
	}
	return New(s), s
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestAddFlow(t *testing.T) {
	m, s := newTestModel(t)

	m = press(m, "a")
	m = typeText(m, "buy milk")
	m = press(m, "enter")

	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	if got := s.Tasks()[0].Title; got != "buy milk" {
		t.Errorf("title = %q, want %q", got, "buy milk")
	}
	if !strings.Contains(m.View(), "buy milk") {
		t.Error("view should show the new task")
	}
}

func TestAddBlankDoesNothing(t *testing.T) {
	m, s := newTestModel(t)

	m = press(m, "a")
	m = typeText(m, "   ")
	m = press(m, "enter")

	if s.Len() != 0 {
		t.Errorf("expected no tasks, got %d", s.Len())
	}
	if !strings.Contains(m.View(), "Nothing to do") {
		t.Error("empty state should be visible")
	}
}

func TestToggleSelected(t *testing.T) {
	m, s := newTestModel(t, "first", "second")
	// Newest first: cursor 0 is "second".

	m = press(m, "space")

	tasks := s.Tasks()
	if !tasks[0].Completed {
		t.Error("selected task should be completed")
	}
	if tasks[1].Completed {
		t.Error("other task should be untouched")
	}
	_ = m
}

func TestDeleteSelected(t *testing.T) {
	m, s := newTestModel(t, "first", "second")

	m = press(m, "j", "d")

	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	if got := s.Tasks()[0].Title; got != "second" {
		t.Errorf("surviving task = %q, want %q", got, "second")
	}
	_ = m
}

func TestEditCommit(t *testing.T) {
	m, s := newTestModel(t, "original")
	id := s.Tasks()[0].ID

	m = press(m, "e")
	m = typeText(m, " v2")
	m = press(m, "enter")

	got, ok := s.Get(id)
	if !ok {
		t.Fatal("task disappeared")
	}
	if got.Title != "original v2" {
		t.Errorf("title = %q, want %q", got.Title, "original v2")
	}
}

func TestEditCancelRestoresTitle(t *testing.T) {
	m, s := newTestModel(t, "original")

	m = press(m, "e")
	m = typeText(m, "garbage")
	m = press(m, "esc")

	if got := s.Tasks()[0].Title; got != "original" {
		t.Errorf("title = %q, want %q", got, "original")
	}
	if !strings.Contains(m.View(), "original") {
		t.Error("view should show the committed title after cancel")
	}
}

func TestEditFieldReplacesRow(t *testing.T) {
	m, _ := newTestModel(t, "only")

	m = press(m, "e")

	v := m.View()
	if strings.Contains(v, "[ ] only") {
		t.Error("normal row should be suspended while editing")
	}
	if !strings.Contains(v, "only") {
		t.Error("edit field should be pre-filled with the title")
	}
}

func TestFilterCycling(t *testing.T) {
	m, s := newTestModel(t, "open task", "done task")
	id := s.Tasks()[0].ID // "done task"
	if _, err := s.Toggle(id); err != nil {
		t.Fatal(err)
	}

	// all -> active
	m = press(m, "f")
	v := m.View()
	if strings.Contains(v, "done task") {
		t.Error("active filter should hide completed tasks")
	}
	if !strings.Contains(v, "open task") {
		t.Error("active filter should show open tasks")
	}
	if !strings.Contains(v, "1 item left") {
		t.Error("remaining count comes from the unfiltered collection")
	}

	// active -> completed
	m = press(m, "f")
	v = m.View()
	if !strings.Contains(v, "done task") {
		t.Error("completed filter should show completed tasks")
	}
	if strings.Contains(v, "open task") {
		t.Error("completed filter should hide open tasks")
	}
}

func TestFooterSurvivesEmptyFilteredView(t *testing.T) {
	m, _ := newTestModel(t, "open task")

	m = press(m, "3") // completed filter, nothing matches

	v := m.View()
	if !strings.Contains(v, "1 item left") {
		t.Error("footer should stay visible while the collection is non-empty")
	}
	if !strings.Contains(v, "No completed tasks") {
		t.Error("empty filtered view should say so")
	}
}

func TestToggleAllAndClear(t *testing.T) {
	m, s := newTestModel(t, "a", "b", "c")

	m = press(m, "t")
	if s.Remaining() != 0 {
		t.Fatalf("expected 0 remaining after toggle all, got %d", s.Remaining())
	}
	if !strings.Contains(m.View(), "0 items left") {
		t.Error("count label should show zero remaining")
	}

	m = press(m, "c")
	if s.Len() != 0 {
		t.Errorf("clear completed should empty the collection, got %d tasks", s.Len())
	}
	if !strings.Contains(m.View(), "Nothing to do") {
		t.Error("empty state should be visible after clearing")
	}
}

func TestCountLabelSingular(t *testing.T) {
	m, _ := newTestModel(t, "only")
	if !strings.Contains(m.View(), "1 item left") {
		t.Error("exactly one remaining task uses the singular form")
	}
}
