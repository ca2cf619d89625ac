package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTaskNotFound indicates no task in the store has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoChanges indicates an update was requested with no fields to apply.
	ErrNoChanges = errors.New("no changes provided")

	// ErrInvalidStatus indicates a status value is not one of the known statuses.
	ErrInvalidStatus = errors.New("invalid status")
)

func formatInvalidStatusError(status Status) error {
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, status, validStatusList())
}

func validStatusList() string {
	statuses := ValidStatuses()
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}
