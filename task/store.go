package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

// Store provides access to the tasks persisted at a single file path.
// Every operation is a full load-mutate-save cycle; concurrent invocations
// racing on the same file are not coordinated (last writer wins).
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
// The file does not need to exist yet; a missing file is an empty store.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Add creates a new task with the given description, status todo, and a
// freshly assigned id, then persists the store.
func (s *Store) Add(description string) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := Task{
		ID:          nextID(tasks),
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks = append(tasks, task)
	if err := s.save(tasks); err != nil {
		return nil, fmt.Errorf("write tasks: %w", err)
	}

	return &task, nil
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Description *string
	Status      *Status
}

// Update applies the provided fields to the task with the given id and
// refreshes its updated_at timestamp. It returns ErrNoChanges without
// touching the store when no field is provided, and ErrTaskNotFound when
// no task has the id.
func (s *Store) Update(id int, opts UpdateOptions) (*Task, error) {
	if opts.Description == nil && opts.Status == nil {
		return nil, ErrNoChanges
	}
	if opts.Status != nil && !opts.Status.IsValid() {
		return nil, formatInvalidStatusError(*opts.Status)
	}

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		if opts.Description != nil {
			tasks[i].Description = *opts.Description
		}
		if opts.Status != nil {
			tasks[i].Status = *opts.Status
		}
		tasks[i].UpdatedAt = time.Now()

		if err := s.save(tasks); err != nil {
			return nil, fmt.Errorf("write tasks: %w", err)
		}
		return &tasks[i], nil
	}

	return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

// Delete removes the task with the given id and persists the reduced
// store. No save occurs when the id is unknown.
func (s *Store) Delete(id int) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}

	remaining := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	if len(remaining) == len(tasks) {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	if err := s.save(remaining); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// ListFilter configures which tasks to return.
type ListFilter struct {
	// Status filters by exact status match.
	Status *Status
}

// List returns tasks matching the filter, in store (insertion) order.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, formatInvalidStatusError(*filter.Status)
	}

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	if filter.Status == nil {
		return tasks, nil
	}

	var result []Task
	for _, task := range tasks {
		if task.Status == *filter.Status {
			result = append(result, task)
		}
	}
	return result, nil
}

// MarkInProgress sets the task's status to in-progress.
func (s *Store) MarkInProgress(id int) (*Task, error) {
	status := StatusInProgress
	return s.Update(id, UpdateOptions{Status: &status})
}

// MarkDone sets the task's status to done.
func (s *Store) MarkDone(id int) (*Task, error) {
	status := StatusDone
	return s.Update(id, UpdateOptions{Status: &status})
}

// nextID returns 1 + max(existing ids), or 1 for an empty store.
func nextID(tasks []Task) int {
	max := 0
	for _, task := range tasks {
		if task.ID > max {
			max = task.ID
		}
	}
	return max + 1
}

// load reads all tasks from the store file. A missing file is an empty
// store; a file that cannot be parsed is a fatal error for the invocation.
func (s *Store) load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return tasks, nil
}

// save rewrites the entire store file atomically.
func (s *Store) save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
