package common

import (
	"context"
)

// ContextCancelError type is returned when work stops because its context was closed.
type ContextCancelError struct{}

func (e *ContextCancelError) Error() string {
	return "context canceled"
}

func CtxClosed(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
