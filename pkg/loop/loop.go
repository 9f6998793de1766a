// Package loop runs a task repeatedly until it breaks or its context is done.
package loop

import (
	"context"
	"fmt"
	"time"
)

// Next tells the loop what to do after a task.
//
// The zero value continues the loop at once.
type Next struct {
	err      error
	quit     bool
	interval time.Duration
}

func (n Next) String() string {
	switch {
	case n.err != nil:
		return fmt.Sprintf("break (error: %v)", n.err)
	case n.quit:
		return "break"
	default:
		return fmt.Sprintf("continue after %s", n.interval)
	}
}

// Continue runs the task again.
//
// args:
//   - interval: wait before the next run.
func Continue(interval time.Duration) Next {
	return Next{interval: interval}
}

// Break stops the loop.
//
// args:
//   - err: returned from Start. nil means the loop has finished normally.
func Break(err error) Next {
	return Next{quit: true, err: err}
}

// Task takes the value returned last time, and returns the value for the next time.
type Task[T any] func(context.Context, T) (T, Next)

// Start calls task with init, then with what it returned, until task breaks or ctx is done.
//
// args:
//   - ctx: context. when it is done, the loop stops.
//   - init: value passed to the first run of task.
//   - task: the task to be looped.
//   - options: applied to each run of task.
//
// returns:
//   - T: the last value task returned.
//   - error: the error passed to Break, or ctx.Err() when ctx is done.
//
// Example
//
// Count 1 to 10:
//
//	Start(ctx, 1, func(_ context.Context, value int) (int, Next) {
//		value += 1
//		if 10 <= value {
//			return value, Break(nil)
//		}
//		return value, Continue(0)
//	})
func Start[T any](ctx context.Context, init T, task Task[T], options ...Option) (T, error) {
	if err := ctx.Err(); err != nil {
		return init, err
	}

	value := init
	for {
		var next Next
		value, next = run(ctx, value, task, options)
		if next.err != nil {
			return value, next.err
		}
		if next.quit {
			return value, nil
		}

		timer := time.NewTimer(next.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return value, ctx.Err()
		case <-timer.C:
		}
	}
}

func run[T any](ctx context.Context, value T, task Task[T], options []Option) (T, Next) {
	c := &config{ctx: ctx}
	for _, o := range options {
		c = o(c)
	}
	defer c.release()
	return task(c.ctx, value)
}

type config struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

func (c *config) release() {
	for i := len(c.cancels) - 1; 0 <= i; i-- {
		c.cancels[i]()
	}
}

type Option func(*config) *config

// WithTimeout limits each run of the task to d.
func WithTimeout(d time.Duration) Option {
	return func(c *config) *config {
		ctx, cancel := context.WithTimeout(c.ctx, d)
		return &config{ctx: ctx, cancels: append(c.cancels, cancel)}
	}
}
