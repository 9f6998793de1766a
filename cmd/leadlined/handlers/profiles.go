package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindprofiles "github.com/opst/leadline/pkg/api-types-binding/profiles"
	apiprofiles "github.com/opst/leadline/pkg/api/types/profiles"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
	kprofile "github.com/opst/leadline/pkg/domain/profile/db"
	"github.com/opst/leadline/pkg/utils"
)

func FindProfilesHandler(dbprofile kprofile.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, err := listParam(c, "role", domain.AsRole, `"role" should be admin, sales or intern`)
		if err != nil {
			return err
		}
		query := domain.ProfileQuery{Roles: roles}
		if a := c.QueryParam("active"); a != "" {
			active, err := strconv.ParseBool(a)
			if err != nil {
				return binderr.BadRequest(`"active" should be true or false`, err)
			}
			query.Active = &active
		}

		found, err := dbprofile.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindprofiles.Compose))
	}
}

func RegisterProfileHandler(dbprofile kprofile.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := readJSON[apiprofiles.RegisterRequest](c)
		if err != nil {
			return err
		}
		role, err := domain.AsRole(req.Role)
		if err != nil {
			return binderr.BadRequest(`"role" should be admin, sales or intern`, err)
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return binderr.FromDomain(err)
		}

		spec := domain.ProfileSpec{
			Email:        req.Email,
			FullName:     req.FullName,
			Role:         role,
			PasswordHash: hash,
		}
		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		p, err := dbprofile.Register(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindprofiles.Compose(p))
	}
}

func GetProfileHandler(dbprofile kprofile.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		profiles, err := dbprofile.Get(c.Request().Context(), []string{id})
		p, err := getOne(profiles, err, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindprofiles.Compose(p))
	}
}

func UpdateProfileHandler(dbprofile kprofile.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		me, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiprofiles.UpdateRequest](c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		change := domain.ProfileChange{FullName: req.FullName, Active: req.Active}
		if req.Role != nil {
			role, err := domain.AsRole(*req.Role)
			if err != nil {
				return binderr.BadRequest(`"role" should be admin, sales or intern`, err)
			}
			change.Role = &role
		}
		if id == me.ProfileId && (change.Role != nil && *change.Role != domain.Admin || change.Active != nil && !*change.Active) {
			return binderr.Conflict(
				"admins cannot demote or deactivate themselves",
				binderr.WithAdvice("ask another admin."),
			)
		}

		p, err := dbprofile.Update(c.Request().Context(), id, change)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindprofiles.Compose(p))
	}
}

// SetPasswordHandler changes the password. Admins can change anyone's, others only their own.
func SetPasswordHandler(dbprofile kprofile.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		me, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if !visibleByOwner(me, id) {
			return binderr.Forbidden("you can change only your own password")
		}
		req, err := readJSON[apiprofiles.PasswordRequest](c)
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return binderr.FromDomain(err)
		}
		if err := dbprofile.SetPassword(c.Request().Context(), id, hash); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
