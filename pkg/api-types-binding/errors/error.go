package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/leadline/pkg/api/types/errors"
	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type ErrorMessageOption func(in *apierr.ErrorMessage) *apierr.ErrorMessage

func WithAdvice(advice string) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if advice != "" {
			in.Advice = advice
		}
		return in
	}
}

func WithError(err error) ErrorMessageOption {
	return func(in *apierr.ErrorMessage) *apierr.ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := apierr.ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func NotFound() *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found")
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		"bad request",
		WithAdvice(advice),
		WithError(err),
	)
}

func Conflict(message string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusConflict,
		message,
		options...,
	)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}

func Unauthorized(message string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusUnauthorized,
		message,
		WithAdvice("log in again."),
		WithError(err),
	)
}

func Forbidden(message string) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusForbidden,
		message,
		WithAdvice("ask an admin."),
	)
}

// FromDomain maps errors of the domain layer to HTTP errors.
//
// Errors which are not known in the domain become 500.
func FromDomain(err error) *echo.HTTPError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domerr.ErrMissing):
		return NewErrorMessage(http.StatusNotFound, "not found", WithError(err))
	case errors.Is(err, domerr.ErrInvalidStateChanging):
		return Conflict(
			"the change is not allowed in the current status",
			WithAdvice("reload and check the status."),
			WithError(err),
		)
	case errors.Is(err, domerr.ErrConflict):
		return Conflict("conflicting with existing records", WithError(err))
	case errors.Is(err, domerr.ErrInvalidArgument):
		return BadRequest(err.Error(), err)
	case errors.Is(err, domerr.ErrForbidden):
		return NewErrorMessage(http.StatusForbidden, "forbidden", WithError(err))
	}

	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		return herr
	}
	return InternalServerError(err)
}
