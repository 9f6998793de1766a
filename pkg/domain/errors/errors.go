package errors

import "errors"

var (
	// requested entity is not found.
	ErrMissing = errors.New("missing")

	// more entities are found than expected.
	ErrTooMuch = errors.New("too much")

	// the change conflicts with an existing entity (duplicated key, dependants, ...).
	ErrConflict = errors.New("conflict")

	// the entity is not in the status which allows the change.
	ErrInvalidStateChanging = errors.New("cannot change state")

	// the principal is not allowed to do that.
	ErrForbidden = errors.New("forbidden")

	// the input does not satisfy the rules of the entity.
	ErrInvalidArgument = errors.New("invalid argument")
)
