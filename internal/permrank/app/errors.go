package app

import (
	"os"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// SignalError is a cancellation cause set when the process receives an OS signal.
type SignalError struct {
	signal os.Signal
}

func NewSignalError(signal os.Signal) *SignalError {
	return &SignalError{signal: signal}
}

func (e *SignalError) Signal() os.Signal {
	return e.signal
}

func (e *SignalError) Error() string {
	return e.signal.String() + " signal"
}
