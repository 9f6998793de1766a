package hook

import (
	"context"
	"errors"
)

// Hook is notified of values after they are processed.
type Hook[T any] interface {
	After(context.Context, T) error
}

var ErrHookFailed = errors.New("hook failed")
