package auth

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	"github.com/opst/leadline/pkg/domain"
)

const principalKey = "leadline/principal"

// Middleware verifies the bearer token of requests and puts the principal in the context.
//
// Requests for which skip returns true pass through without tokens.
func Middleware(tokens Tokens, skip func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			h := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(h, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return binderr.Unauthorized("bearer token is required", nil)
			}
			p, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				return binderr.Unauthorized("token is invalid or expired", err)
			}
			SetPrincipal(c, p)
			return next(c)
		}
	}
}

func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalOf returns who is calling. It is false when the request is not authenticated.
func PrincipalOf(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// RequireRole rejects requests from roles other than the given ones with 403.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalOf(c)
			if !ok {
				return binderr.Unauthorized("bearer token is required", nil)
			}
			if !slices.Contains(roles, p.Role) {
				return binderr.Forbidden("your role is not allowed to do it")
			}
			return next(c)
		}
	}
}
