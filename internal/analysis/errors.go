package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLoadFailure matches every error returned by Loader.Load.
var ErrLoadFailure = errors.New("analysis document could not be loaded")

// LoadError records where and at which step loading failed.
type LoadError struct {
	Location string
	Op       string // "fetch", "read", "decode" or "validate"
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %s: %v", e.Location, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLoadFailure.
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailure }

// StatusError is returned when a remote document responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// ValidationError lists the problems found in a decoded document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid document: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid document: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}
