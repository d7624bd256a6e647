package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers upstream 401 and 403. Whatever feature hit it,
	// the local session must be cleared and the user sent back to login.
	ErrUnauthorized = errors.New("platform: unauthorized")
	// ErrConflict covers upstream 409, e.g. a duplicate rating. Callers turn
	// it into a benign already-done state.
	ErrConflict = errors.New("platform: conflict")
)

// APIError is a non-2xx answer from the platform API, carrying the
// upstream-provided message when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("platform: unexpected status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 409:
		return ErrConflict
	}
	return nil
}

// Message returns the upstream-provided message when the error carries one,
// else the per-action fallback string.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
