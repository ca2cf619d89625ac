package activity

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound indicates the remote API has no such user (HTTP 404).
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden indicates the request was rate-limited or forbidden
	// (HTTP 403). Authenticating with a token usually resolves it.
	ErrForbidden = errors.New("rate limit exceeded or access forbidden (try authenticating with a token)")

	// ErrUnreachable indicates a network-level failure before any HTTP
	// status was received.
	ErrUnreachable = errors.New("failed to reach the server")

	// ErrInvalidResponse indicates the response body was not valid JSON.
	ErrInvalidResponse = errors.New("failed to parse JSON response")
)

// StatusError reports a non-200 HTTP status other than 404 and 403.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error occurred: %s", e.Status)
}
