package store

import (
	"errors"
	"strings"
)

var (
	// ErrTaskNotFound is returned when an update targets an unknown task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMeetingNotFound is returned when a meeting id does not resolve.
	ErrMeetingNotFound = errors.New("meeting not found")
)

// ValidationError lists every problem found in a mutation request. Nothing is
// changed when one is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(problem string) {
	e.Problems = append(e.Problems, problem)
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
