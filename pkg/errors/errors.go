// Package errors annotates errors with the place where they were passed through.
//
//	return xe.Wrap(err)
//
// The message of a wrapped error reads like
//
//	@ pkg.Func "file.go" l12 <- @ pkg.Other "other.go" l34 <- original message
//
// so each "<-" is one hop on the way back to the caller.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Located is an error which knows where it has been wrapped.
type Located struct {
	funcname string
	file     string
	line     int
	note     string
	err      error
}

func (e *Located) File() string { return e.file }

func (e *Located) Line() int { return e.line }

func (e *Located) Func() string { return e.funcname }

func (e *Located) Error() string {
	if e.note == "" {
		return fmt.Sprintf(`@ %s "%s" l%d <- %s`, e.funcname, e.file, e.line, e.err)
	}
	return fmt.Sprintf(`@ %s "%s" l%d (%s) <- %s`, e.funcname, e.file, e.line, e.note, e.err)
}

func (e *Located) Unwrap() error {
	return e.err
}

// New creates a new error and marks the caller.
func New(text string) error {
	return locate(1, "", errors.New(text))
}

// Wrap marks the caller on err.
//
// Wrap(nil) returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return locate(1, "", err)
}

// WrapWithNote marks the caller on err with a short note.
func WrapWithNote(note string, err error) error {
	if err == nil {
		return nil
	}
	return locate(1, note, err)
}

// WrapAsOuter marks the caller of the caller (depth levels up) on err.
func WrapAsOuter(err error, depth int) error {
	if err == nil {
		return nil
	}
	return locate(depth+1, "", err)
}

func locate(depth int, note string, err error) error {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file = "?"
		line = -1
	}
	funcname := "(unknown func)"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcname = fn.Name()
	}
	return &Located{
		funcname: funcname,
		file:     file,
		line:     line,
		note:     note,
		err:      err,
	}
}
