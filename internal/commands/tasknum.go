package commands

import (
	"errors"
	"fmt"
	"strconv"

	"tido/internal/task"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number from args, as printed by the
// list command.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return num, nil
}

// taskByNumber resolves a 1-based number against the collection order.
func taskByNumber(store *task.Store, num int) (task.Task, error) {
	tasks := store.Tasks()
	if num < 1 || num > len(tasks) {
		return task.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
