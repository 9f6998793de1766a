package errors

import (
	"fmt"
	"strings"
)

type Verbose interface {
	Verbose() string
}

// CUIError is an error to be shown to users of the command line.
//
// Error() is short. Verbose() includes the cause chain.
type CUIError interface {
	error
	Verbose
}

type cuierror struct {
	summary string
	verbose string
	detail  func(summary string) (string, error)
	cause   error
}

func (ce *cuierror) Unwrap() error {
	return ce.cause
}

func (ce *cuierror) Error() string {
	if ce.detail == nil {
		return ce.summary
	}
	message, err := ce.detail(ce.summary)
	if err != nil {
		return fmt.Sprintf("%s\n(can not build details: %s)", ce.summary, err)
	}
	return message
}

func (ce *cuierror) Verbose() string {
	message := []string{ce.Error()}
	if ce.verbose != "" {
		message = append(message, "("+ce.verbose+")")
	}

	switch cause := ce.cause.(type) {
	case nil:
	case Verbose:
		message = append(message, "caused by:", cause.Verbose())
	default:
		message = append(message, "caused by:", cause.Error())
	}
	return strings.Join(message, "\n")
}

type Option func(*cuierror) *cuierror

func New(summary string, options ...Option) CUIError {
	err := &cuierror{summary: summary}
	for _, o := range options {
		err = o(err)
	}
	return err
}

func WithVerbose(verbose string) Option {
	return func(ce *cuierror) *cuierror {
		ce.verbose = verbose
		return ce
	}
}

// WithDetail sets a function building the message from the summary.
func WithDetail(printer func(summary string) (string, error)) Option {
	return func(ce *cuierror) *cuierror {
		ce.detail = printer
		return ce
	}
}

func WithCause(err error) Option {
	return func(ce *cuierror) *cuierror {
		ce.cause = err
		return ce
	}
}
