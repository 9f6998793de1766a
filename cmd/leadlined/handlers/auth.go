package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindprofiles "github.com/opst/leadline/pkg/api-types-binding/profiles"
	apiauth "github.com/opst/leadline/pkg/api/types/auth"
	"github.com/opst/leadline/pkg/auth"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	kprofile "github.com/opst/leadline/pkg/domain/profile/db"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func LoginHandler(dbprofile kprofile.Interface, tokens auth.Tokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := readJSON[apiauth.LoginRequest](c)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()

		denied := binderr.NewErrorMessage(
			http.StatusUnauthorized, "email or password is wrong",
			binderr.WithAdvice("check your email and password."),
		)

		cred, err := dbprofile.Credential(ctx, req.Email)
		if errors.Is(err, domerr.ErrMissing) {
			return denied
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		if !cred.Active {
			return denied
		}
		if err := auth.ComparePassword(cred.PasswordHash, req.Password); err != nil {
			c.Logger().Infof("login failed for %s: %s", cred.Id, err)
			return denied
		}

		token, exp, err := tokens.Issue(cred.Profile)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiauth.LoginResponse{
			Token:     token,
			ExpiresAt: rfctime.RFC3339(exp),
			Profile:   bindprofiles.Compose(cred.Profile),
		})
	}
}

func MeHandler(dbprofile kprofile.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		profiles, err := dbprofile.Get(c.Request().Context(), []string{p.ProfileId})
		me, err := getOne(profiles, err, p.ProfileId)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindprofiles.Compose(me))
	}
}
