package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Register creates a new profile.
	//
	// It returns ErrConflict when the email is already used.
	Register(ctx context.Context, spec domain.ProfileSpec) (domain.Profile, error)

	// Get returns profiles by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Profile, error)

	Find(ctx context.Context, query domain.ProfileQuery) ([]domain.Profile, error)

	// Update changes the profile and returns the updated one.
	Update(ctx context.Context, id string, change domain.ProfileChange) (domain.Profile, error)

	SetPassword(ctx context.Context, id string, hash []byte) error

	// Credential looks up the profile with the email, ignoring case.
	//
	// It returns ErrMissing when no profiles have the email.
	Credential(ctx context.Context, email string) (domain.Credential, error)
}
