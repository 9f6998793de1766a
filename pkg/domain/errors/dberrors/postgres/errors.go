package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	domerr "github.com/opst/leadline/pkg/domain/errors"
)

// SQLSTATEs raised by the functions in the schema.
const (
	// the row is not in the status which allows the change.
	CodeInvalidStateChanging = "LL001"

	// the row to be changed is not found.
	CodeMissing = "LL002"
)

// requested data is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return domerr.ErrMissing
}

// requested data is found too much.
type TooMuch struct {
	Table    string
	Identity string
	Expected int
}

var _ error = TooMuch{}

func (t TooMuch) Error() string {
	return fmt.Sprintf(
		"%s is found in %s more than %d times",
		t.Identity, t.Table, t.Expected,
	)
}

func (t TooMuch) Unwrap() error {
	return domerr.ErrTooMuch
}

// the change violates a constraint.
type Conflict struct {
	Table      string
	Constraint string
	Cause      error
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	return fmt.Sprintf("conflict on %s (%s): %s", c.Table, c.Constraint, c.Cause)
}

func (c Conflict) Unwrap() []error {
	return []error{domerr.ErrConflict, c.Cause}
}

// StateChanging reports that a row cannot move from its current status.
type StateChanging struct {
	Table    string
	Identity string
	From     string
	To       string
}

func (s StateChanging) Error() string {
	return fmt.Sprintf("%s in %s: %s -> %s", s.Identity, s.Table, s.From, s.To)
}

func (s StateChanging) Unwrap() error {
	return domerr.ErrInvalidStateChanging
}

// Translate converts errors from postgres into errors of the domain.
//
// Errors not from postgres, or not known, are returned as is.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	pgerr := new(pgconn.PgError)
	if !errors.As(err, &pgerr) {
		return err
	}
	switch pgerr.Code {
	case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		return Conflict{Table: pgerr.TableName, Constraint: pgerr.ConstraintName, Cause: err}
	case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", domerr.ErrInvalidArgument, pgerr.Message)
	case CodeInvalidStateChanging:
		return fmt.Errorf("%w: %s", domerr.ErrInvalidStateChanging, pgerr.Message)
	case CodeMissing:
		return fmt.Errorf("%w: %s", domerr.ErrMissing, pgerr.Message)
	}
	return err
}
