package recurring

import (
	"context"

	"github.com/opst/leadline/pkg/loop"
)

// Task is a step of a loop, with a report whether it has done something.
//
// It returns true when it has processed something and more may be left.
// A non-nil error is handled by the Policy.
type Task[T any] func(context.Context, T) (T, bool, error)

// Applied makes a loop.Task which lets p decide what to do next.
func (rt Task[T]) Applied(p Policy) loop.Task[T] {
	return func(ctx context.Context, t T) (T, loop.Next) {
		new, ok, err := rt(ctx, t)
		return new, p.Next(ok, err)
	}
}
