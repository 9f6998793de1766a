package auth

import (
	"errors"
	"fmt"

	domerr "github.com/opst/leadline/pkg/domain/errors"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword hashes the password with bcrypt.
func HashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf(
			"%w: password should be %d characters or more", domerr.ErrInvalidArgument, MinPasswordLength,
		)
	}
	if 72 < len(password) {
		return nil, fmt.Errorf("%w: password is too long", domerr.ErrInvalidArgument)
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// ComparePassword tells the password matches the hash.
func ComparePassword(hash []byte, password string) error {
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return fmt.Errorf("%w: %w", ErrPasswordMismatch, err)
	}
	return nil
}
