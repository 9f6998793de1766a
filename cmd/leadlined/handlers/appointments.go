package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	bindappointments "github.com/opst/leadline/pkg/api-types-binding/appointments"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	apiappointments "github.com/opst/leadline/pkg/api/types/appointments"
	"github.com/opst/leadline/pkg/domain"
	kappointment "github.com/opst/leadline/pkg/domain/appointment/db"
	"github.com/opst/leadline/pkg/utils"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

const adviceAppointmentStatus = `"status" should be one of "scheduled", "completed" or "cancelled"`

func FindAppointmentsHandler(dbappointment kappointment.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		owner, err := idParam(c, "owner")
		if err != nil {
			return err
		}
		query := domain.AppointmentQuery{Owner: self(p, owner)}
		if query.Status, err = listParam(c, "status", domain.AsAppointmentStatus, adviceAppointmentStatus); err != nil {
			return err
		}
		if query.From, query.To, err = window(c); err != nil {
			return err
		}

		found, err := dbappointment.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindappointments.Compose))
	}
}

func CreateAppointmentHandler(dbappointment kappointment.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiappointments.CreateRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("leadId", req.LeadId); err != nil {
			return err
		}
		if err := bodyId("clientId", req.ClientId); err != nil {
			return err
		}

		spec := domain.AppointmentSpec{
			Title:    req.Title,
			LeadId:   req.LeadId,
			ClientId: req.ClientId,
			Owner:    p.ProfileId,
			StartsAt: req.StartsAt.Time(),
			EndsAt:   req.EndsAt.Time(),
			Location: req.Location,
			Notes:    req.Notes,
		}
		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		a, err := dbappointment.Create(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindappointments.Compose(a))
	}
}

func visibleAppointment(c echo.Context, dbappointment kappointment.Interface, p domain.Principal, id string) (domain.Appointment, error) {
	a, err := getById(c.Request().Context(), dbappointment.Get, id)
	if err != nil {
		return a, err
	}
	if !visibleByOwner(p, a.Owner) {
		return a, binderr.NotFound()
	}
	return a, nil
}

func GetAppointmentHandler(dbappointment kappointment.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		a, err := visibleAppointment(c, dbappointment, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindappointments.Compose(a))
	}
}

func timeOf(t *rfctime.RFC3339) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time()
	return &v
}

func UpdateAppointmentHandler(dbappointment kappointment.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiappointments.UpdateRequest](c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleAppointment(c, dbappointment, p, id); err != nil {
			return err
		}

		a, err := dbappointment.Update(c.Request().Context(), id, domain.AppointmentChange{
			Title:    req.Title,
			StartsAt: timeOf(req.StartsAt),
			EndsAt:   timeOf(req.EndsAt),
			Location: req.Location,
			Notes:    req.Notes,
		})
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindappointments.Compose(a))
	}
}

func SetAppointmentStatusHandler(dbappointment kappointment.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiappointments.StatusRequest](c)
		if err != nil {
			return err
		}
		status, err := domain.AsAppointmentStatus(req.Status)
		if err != nil {
			return binderr.BadRequest(adviceAppointmentStatus, err)
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleAppointment(c, dbappointment, p, id); err != nil {
			return err
		}

		a, err := dbappointment.SetStatus(c.Request().Context(), id, status)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindappointments.Compose(a))
	}
}

func DeleteAppointmentHandler(dbappointment kappointment.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleAppointment(c, dbappointment, p, id); err != nil {
			return err
		}
		if err := dbappointment.Delete(c.Request().Context(), id); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
