package ranker

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a string can not be ranked.
var ErrInvalidInput = errors.New("invalid input")

// InvariantViolationError type is used to report broken bookkeeping of the ranking algorithm.
// It never describes a problem with the input.
type InvariantViolationError struct {
	reason string
}

// Error function returns text of error.
func (e *InvariantViolationError) Error() string {
	return "ranking invariant violated: " + e.reason
}

// newInvariantViolationError function creates InvariantViolationError object with a stack trace attached.
func newInvariantViolationError(format string, args ...any) error {
	return errors.WithStack(&InvariantViolationError{
		reason: fmt.Sprintf(format, args...),
	})
}
