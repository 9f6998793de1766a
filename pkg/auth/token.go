// Package auth issues and verifies tokens for leadlined, and guards routes with them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opst/leadline/pkg/domain"
)

const (
	Issuer = "leadline"

	// private claim for the role of the profile.
	ClaimRole = "leadline/role"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"leadline/role"`
}

// Tokens issues and verifies tokens.
type Tokens interface {
	// Issue makes a token for the profile.
	Issue(p domain.Profile) (token string, expiry time.Time, err error)

	// Verify parses the token and returns who has it.
	//
	// Expired, malformed or forged tokens are ErrInvalidToken.
	Verify(token string) (domain.Principal, error)
}

type hs256 struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type Option func(*hs256)

// WithClock replaces the clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(h *hs256) {
		h.now = now
	}
}

// New returns Tokens signing with HMAC-SHA256 by key. Tokens are valid for ttl.
func New(key []byte, ttl time.Duration, options ...Option) Tokens {
	h := &hs256{key: key, ttl: ttl, now: time.Now}
	for _, o := range options {
		o(h)
	}
	return h
}

func (h *hs256) Issue(p domain.Profile) (string, time.Time, error) {
	now := h.now()
	exp := now.Add(h.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   p.Id,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: string(p.Role),
	})
	signed, err := token.SignedString(h.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (h *hs256) Verify(token string) (domain.Principal, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(
		token, c,
		func(*jwt.Token) (any, error) { return h.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	role, err := domain.AsRole(c.Role)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return domain.Principal{ProfileId: c.Subject, Role: role}, nil
}
