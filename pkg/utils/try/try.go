// Package try turns (value, error) pairs into single values.
//
// It is intended for tests:
//
//	pool := try.To(pgxpool.Connect(ctx, dsn)).OrFatal(t)
package try

// Fataler is something which can stop the current flow, like *testing.T.
type Fataler interface {
	Fatal(...any)
}

// Either holds a value or an error.
type Either[T any] interface {
	// Get returns the pair back.
	Get() (T, error)

	// OrFatal returns the value, or calls ftl.Fatal with the error.
	//
	// When ftl has a Helper method, it is called before Fatal.
	OrFatal(ftl Fataler) T

	// OrDefault returns the value, or d if there is an error.
	OrDefault(d T) T
}

func To[T any](value T, err error) Either[T] {
	if err != nil {
		return failure[T]{err: err}
	}
	return success[T]{value: value}
}

// Map converts the value with mapper when there is no error.
func Map[T, R any](e Either[T], mapper func(T) R) Either[R] {
	v, err := e.Get()
	if err != nil {
		return failure[R]{err: err}
	}
	return success[R]{value: mapper(v)}
}

type success[T any] struct{ value T }

func (s success[T]) Get() (T, error)    { return s.value, nil }
func (s success[T]) OrFatal(Fataler) T { return s.value }
func (s success[T]) OrDefault(T) T     { return s.value }

type failure[T any] struct{ err error }

func (f failure[T]) Get() (T, error) { return *new(T), f.err }
func (f failure[T]) OrDefault(d T) T { return d }
func (f failure[T]) OrFatal(ftl Fataler) T {
	if h, ok := ftl.(interface{ Helper() }); ok {
		h.Helper()
	}
	ftl.Fatal(f.err)
	return *new(T)
}
