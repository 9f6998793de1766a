package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
)

var key = []byte("0123456789abcdef0123456789abcdef")

func TestTokens(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("issued token is verified as the profile", func(t *testing.T) {
		testee := auth.New(key, time.Hour, auth.WithClock(clock))
		token, exp, err := testee.Issue(domain.Profile{Id: "profile-1", Role: domain.Sales})
		if err != nil {
			t.Fatal(err)
		}
		if !exp.Equal(now.Add(time.Hour)) {
			t.Errorf("expiry: actual = %s, expected = %s", exp, now.Add(time.Hour))
		}

		p, err := testee.Verify(token)
		if err != nil {
			t.Fatal(err)
		}
		want := domain.Principal{ProfileId: "profile-1", Role: domain.Sales}
		if p != want {
			t.Errorf("principal: actual = %+v, expected = %+v", p, want)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		issuer := auth.New(key, time.Hour, auth.WithClock(clock))
		token, _, err := issuer.Issue(domain.Profile{Id: "profile-1", Role: domain.Admin})
		if err != nil {
			t.Fatal(err)
		}

		later := auth.New(key, time.Hour, auth.WithClock(func() time.Time { return now.Add(2 * time.Hour) }))
		if _, err := later.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("token signed by other key is rejected", func(t *testing.T) {
		other := auth.New([]byte("fedcba9876543210fedcba9876543210"), time.Hour, auth.WithClock(clock))
		token, _, err := other.Issue(domain.Profile{Id: "profile-1", Role: domain.Admin})
		if err != nil {
			t.Fatal(err)
		}

		testee := auth.New(key, time.Hour, auth.WithClock(clock))
		if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	for name, claims := range map[string]jwt.MapClaims{
		"token with unknown role is rejected": {
			"iss": auth.Issuer, "sub": "profile-1", "exp": now.Add(time.Hour).Unix(),
			auth.ClaimRole: "manager",
		},
		"token from other issuer is rejected": {
			"iss": "someone", "sub": "profile-1", "exp": now.Add(time.Hour).Unix(),
			auth.ClaimRole: "admin",
		},
		"token without expiry is rejected": {
			"iss": auth.Issuer, "sub": "profile-1",
			auth.ClaimRole: "admin",
		},
		"token without subject is rejected": {
			"iss": auth.Issuer, "exp": now.Add(time.Hour).Unix(),
			auth.ClaimRole: "admin",
		},
	} {
		t.Run(name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
			if err != nil {
				t.Fatal(err)
			}
			testee := auth.New(key, time.Hour, auth.WithClock(clock))
			if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("garbage is rejected", func(t *testing.T) {
		testee := auth.New(key, time.Hour, auth.WithClock(clock))
		if _, err := testee.Verify("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
