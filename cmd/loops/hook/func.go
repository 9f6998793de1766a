package hook

import (
	"context"
	"errors"
)

// Func is a Hook calling a function.
//
// When AfterFn is nil, it does nothing.
type Func[T any] struct {
	AfterFn func(context.Context, T) error
}

func (f Func[T]) After(ctx context.Context, value T) error {
	if f.AfterFn == nil {
		return nil
	}
	if err := f.AfterFn(ctx, value); err != nil {
		return errors.Join(err, ErrHookFailed)
	}
	return nil
}
