package render

import (
	"context"
)

// Renderer interface implementation should ask user for values.
type Renderer interface {
	// SelectionMenu returns one of items chosen by user.
	SelectionMenu(ctx context.Context, title string, items []string) (string, error)
	// InputMenu returns the first line accepted by validateFunc.
	InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error)
	// WithSpinner runs fn while displaying title.
	WithSpinner(title string, fn func())
	IsTerminal() bool
	ReadLine() (string, error)
}
