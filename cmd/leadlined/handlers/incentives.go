package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindincentives "github.com/opst/leadline/pkg/api-types-binding/incentives"
	apiincentives "github.com/opst/leadline/pkg/api/types/incentives"
	"github.com/opst/leadline/pkg/domain"
	kincentive "github.com/opst/leadline/pkg/domain/incentive/db"
	"github.com/opst/leadline/pkg/utils"
)

const adviceIncentiveStatus = `"status" should be one of "pending", "approved", "paid" or "rejected"`

func FindIncentivesHandler(dbincentive kincentive.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		profile, err := idParam(c, "profile")
		if err != nil {
			return err
		}
		query := domain.IncentiveQuery{ProfileId: self(p, profile)}
		if query.Period, err = listParam(c, "period", domain.AsPeriod, `"period" should be YYYY-MM`); err != nil {
			return err
		}
		if query.Status, err = listParam(c, "status", domain.AsIncentiveStatus, adviceIncentiveStatus); err != nil {
			return err
		}

		found, err := dbincentive.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindincentives.Compose))
	}
}

func CreateIncentiveHandler(dbincentive kincentive.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiincentives.CreateRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("profileId", &req.ProfileId); err != nil {
			return err
		}

		spec := domain.IncentiveSpec{
			ProfileId:   req.ProfileId,
			AmountCents: req.AmountCents,
			Reason:      req.Reason,
			Period:      req.Period,
			CreatedBy:   p.ProfileId,
		}
		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		i, err := dbincentive.Create(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindincentives.Compose(i))
	}
}

func SetIncentiveStatusHandler(dbincentive kincentive.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := readJSON[apiincentives.StatusRequest](c)
		if err != nil {
			return err
		}
		status, err := domain.AsIncentiveStatus(req.Status)
		if err != nil {
			return binderr.BadRequest(adviceIncentiveStatus, err)
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}

		i, err := dbincentive.SetStatus(c.Request().Context(), id, status)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindincentives.Compose(i))
	}
}

// IncentiveSummaryHandler totals incentives per status.
//
// Admins can ask for anyone with the "profile" query parameter. Others get their own.
func IncentiveSummaryHandler(dbincentive kincentive.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		profileId := p.ProfileId
		if q := c.QueryParam("profile"); p.IsAdmin() && q != "" {
			if profileId, err = asId(q); err != nil {
				return binderr.BadRequest(`"profile" should be an id`, err)
			}
		}

		s, err := dbincentive.Summary(c.Request().Context(), profileId)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindincentives.ComposeSummary(s))
	}
}
