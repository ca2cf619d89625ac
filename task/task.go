// Package task implements a JSON-file-backed task tracker.
//
// The entire store is loaded from and rewritten to a single file on every
// operation; there is no long-running process and no in-memory state
// between invocations.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Delete for task lifecycle
//   - List for querying
//   - MarkInProgress, MarkDone as status-change shorthands
package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a unique integer, assigned as 1 + max(existing ids).
	ID int `json:"id"`

	// Description is the free-form task text.
	Description string `json:"description"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// CreatedAt is when the task was created. Set once.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}
