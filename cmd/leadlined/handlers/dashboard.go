package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	binddashboard "github.com/opst/leadline/pkg/api-types-binding/dashboard"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	"github.com/opst/leadline/pkg/domain"
	kdashboard "github.com/opst/leadline/pkg/domain/dashboard/db"
	"github.com/opst/leadline/pkg/metrics"
)

func DashboardHandler(dbdashboard kdashboard.Interface, now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		d, err := dbdashboard.Summarize(c.Request().Context(), p, now())
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, binddashboard.Compose(d))
	}
}

// MetricsHandler exposes the admin dashboard in the Prometheus text format.
func MetricsHandler(dbdashboard kdashboard.Interface, now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		d, err := dbdashboard.Summarize(
			c.Request().Context(), domain.Principal{Role: domain.Admin}, now(),
		)
		if err != nil {
			return binderr.FromDomain(err)
		}

		format := metrics.Negotiate(c.Request().Header)
		c.Response().Header().Set(echo.HeaderContentType, string(format))
		c.Response().WriteHeader(http.StatusOK)
		return metrics.Write(c.Response(), format, metrics.FromDashboard(d))
	}
}
