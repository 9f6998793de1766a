package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type Role string

const (
	// manages everything: users, incentives, reviews and appointment requests.
	Admin Role = "admin"

	// works on leads, clients, projects and own appointments.
	Sales Role = "sales"

	// collects raw data and leads. Their submissions are reviewed.
	Intern Role = "intern"
)

var ErrUnknownRole = errors.New("unknown role")

func (r Role) String() string {
	return string(r)
}

func AsRole(s string) (Role, error) {
	switch Role(s) {
	case Admin, Sales, Intern:
		return Role(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownRole, s)
}

func Roles() []Role {
	return []Role{Admin, Sales, Intern}
}

// SubmissionNeedsReview tells whether entities created by the role are queued for review.
func (r Role) SubmissionNeedsReview() bool {
	return r == Intern
}

type Profile struct {
	Id        string
	Email     string
	FullName  string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Profile) Equal(o *Profile) bool {
	return p.Id == o.Id &&
		p.Email == o.Email &&
		p.FullName == o.FullName &&
		p.Role == o.Role &&
		p.Active == o.Active &&
		p.CreatedAt.Equal(o.CreatedAt) &&
		p.UpdatedAt.Equal(o.UpdatedAt)
}

// Principal is who is calling.
type Principal struct {
	ProfileId string
	Role      Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == Admin
}

// Credential is a profile with its password hash. It is used only for login.
type Credential struct {
	Profile
	PasswordHash []byte
}

type ProfileSpec struct {
	Email        string
	FullName     string
	Role         Role
	PasswordHash []byte
}

func (s ProfileSpec) Validate() error {
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return fmt.Errorf("%w: email %q: %s", domerr.ErrInvalidArgument, s.Email, err)
	}
	if strings.TrimSpace(s.FullName) == "" {
		return fmt.Errorf("%w: full name is empty", domerr.ErrInvalidArgument)
	}
	if _, err := AsRole(string(s.Role)); err != nil {
		return fmt.Errorf("%w: %w", domerr.ErrInvalidArgument, err)
	}
	if len(s.PasswordHash) == 0 {
		return fmt.Errorf("%w: password is not set", domerr.ErrInvalidArgument)
	}
	return nil
}

// ProfileChange is a partial update. nil fields are kept as they are.
type ProfileChange struct {
	FullName *string
	Role     *Role
	Active   *bool
}

type ProfileQuery struct {
	Roles  []Role
	Active *bool
}
