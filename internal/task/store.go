package task

import (
	"encoding/json"
	"fmt"
	"strings"

	"tido/internal/storage"
)

// StorageKey is the fixed key the serialized collection is stored under.
const StorageKey = "tasks"

// Store owns the ordered task collection. Order is insertion order with the
// most recently added task first. Every mutation persists the whole
// collection before the in-memory state is replaced, so a reload after any
// completed operation observes the new state.
//
// Store is not safe for concurrent use; the app drives it from a single
// event loop and the CLI performs one operation per invocation.
type Store struct {
	storage storage.Store
	ids     IDGenerator
	logf    func(format string, args ...any)
	tasks   []Task
}

// NewStore creates a Store backed by st, generating ids with ids.
func NewStore(st storage.Store, ids IDGenerator) *Store {
	return &Store{
		storage: st,
		ids:     ids,
		logf:    func(string, ...any) {},
	}
}

// SetLogf installs a diagnostic logger for recovered load failures.
func (s *Store) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		s.logf = logf
	}
}

// Load populates the collection from persisted storage. Missing or
// malformed data yields an empty collection; failures are logged, never
// returned.
func (s *Store) Load() {
	s.tasks = nil

	data, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logf("load tasks: %v", err)
		return
	}
	if !ok {
		return
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logf("load tasks: malformed data: %v", err)
		return
	}
	s.tasks = tasks
}

// Tasks returns a copy of the collection in order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Remaining returns the number of incomplete tasks, always computed from
// the full collection.
func (s *Store) Remaining() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Add trims rawTitle and prepends a new incomplete task. A blank title is
// rejected silently: the collection is unchanged and nothing is persisted.
func (s *Store) Add(rawTitle string) (Task, bool, error) {
	title := strings.TrimSpace(rawTitle)
	if title == "" {
		return Task{}, false, nil
	}

	t := Task{ID: s.ids.NewID(), Title: title}
	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, t)
	next = append(next, s.tasks...)

	if err := s.replace(next); err != nil {
		return Task{}, false, err
	}
	return t, true, nil
}

// Remove deletes the task with the given id. Absent ids are a no-op and
// skip the persist.
func (s *Store) Remove(id string) (bool, error) {
	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)

	if err := s.replace(next); err != nil {
		return false, err
	}
	return true, nil
}

// Toggle flips the completed flag of the task with the given id, leaving
// every other task untouched.
func (s *Store) Toggle(id string) (bool, error) {
	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	next := s.clone()
	next[idx].Completed = !next[idx].Completed

	if err := s.replace(next); err != nil {
		return false, err
	}
	return true, nil
}

// Rename trims rawTitle and replaces the task's title, keeping id and
// completed flag. Blank titles and absent ids are rejected silently.
func (s *Store) Rename(id, rawTitle string) (bool, error) {
	title := strings.TrimSpace(rawTitle)
	if title == "" {
		return false, nil
	}
	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	next := s.clone()
	next[idx].Title = title

	if err := s.replace(next); err != nil {
		return false, err
	}
	return true, nil
}

// ClearCompleted removes every completed task, preserving the relative
// order of the survivors. Returns the number of tasks removed.
func (s *Store) ClearCompleted() (int, error) {
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}

	removed := len(s.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.replace(next); err != nil {
		return 0, err
	}
	return removed, nil
}

// SetAllCompleted sets the completed flag on every task, preserving ids,
// titles and order.
func (s *Store) SetAllCompleted(completed bool) (bool, error) {
	changed := false
	next := s.clone()
	for i := range next {
		if next[i].Completed != completed {
			next[i].Completed = completed
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	if err := s.replace(next); err != nil {
		return false, err
	}
	return true, nil
}

// replace persists next and, only on success, makes it the current
// collection. A failed persist leaves the previous collection in place.
func (s *Store) replace(next []Task) error {
	if next == nil {
		next = []Task{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.tasks = next
	return nil
}

func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clone() []Task {
	next := make([]Task, len(s.tasks))
	copy(next, s.tasks)
	return next
}
