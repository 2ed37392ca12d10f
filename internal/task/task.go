// Package task defines the task collection and its persistence-backed store.
package task

// Task represents a single task item.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
