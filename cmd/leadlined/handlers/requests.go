package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindrequests "github.com/opst/leadline/pkg/api-types-binding/requests"
	apirequests "github.com/opst/leadline/pkg/api/types/requests"
	"github.com/opst/leadline/pkg/domain"
	krequest "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
	kclient "github.com/opst/leadline/pkg/domain/client/db"
	"github.com/opst/leadline/pkg/utils"
)

const adviceRequestStatus = `"status" should be one of "pending", "approved", "rejected" or "cancelled"`

func FindRequestsHandler(dbrequest krequest.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		requester, err := idParam(c, "requester")
		if err != nil {
			return err
		}
		client, err := idParam(c, "client")
		if err != nil {
			return err
		}
		query := domain.AppointmentRequestQuery{
			RequestedBy: self(p, requester),
			ClientId:    client,
		}
		if query.Status, err = listParam(c, "status", domain.AsAppointmentRequestStatus, adviceRequestStatus); err != nil {
			return err
		}

		found, err := dbrequest.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindrequests.Compose))
	}
}

// CreateRequestHandler asks admins for an appointment with a client the caller can see.
func CreateRequestHandler(dbclient kclient.Interface, dbrequest krequest.Interface, now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apirequests.CreateRequest](c)
		if err != nil {
			return err
		}
		spec := domain.AppointmentRequestSpec{
			ClientId:       req.ClientId,
			RequestedBy:    p.ProfileId,
			RequestedStart: req.RequestedStart.Time(),
			RequestedEnd:   req.RequestedEnd.Time(),
			Purpose:        req.Purpose,
		}
		if err := spec.Validate(now()); err != nil {
			return binderr.FromDomain(err)
		}
		if _, err := visibleClient(c, dbclient, p, spec.ClientId); err != nil {
			return err
		}

		r, err := dbrequest.Request(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindrequests.Compose(r))
	}
}

func visibleRequest(c echo.Context, dbrequest krequest.Interface, p domain.Principal, id string) (domain.AppointmentRequest, error) {
	r, err := getById(c.Request().Context(), dbrequest.Get, id)
	if err != nil {
		return r, err
	}
	if !visibleByOwner(p, r.RequestedBy) {
		return r, binderr.NotFound()
	}
	return r, nil
}

func GetRequestHandler(dbrequest krequest.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		r, err := visibleRequest(c, dbrequest, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindrequests.Compose(r))
	}
}

func decision(c echo.Context, p domain.Principal, param string) (domain.Decision, error) {
	id, err := pathId(c, param)
	if err != nil {
		return domain.Decision{}, err
	}
	d := domain.Decision{RequestId: id, By: p.ProfileId}
	if c.Request().ContentLength == 0 {
		return d, nil
	}
	req, err := readJSON[apirequests.DecisionRequest](c)
	if err != nil {
		return d, err
	}
	d.Note = req.Note
	return d, nil
}

// ApproveRequestHandler approves a pending request, which makes a client appointment.
func ApproveRequestHandler(dbrequest krequest.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		d, err := decision(c, p, param)
		if err != nil {
			return err
		}

		r, ca, err := dbrequest.Approve(c.Request().Context(), d)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, apirequests.Approval{
			Request:           bindrequests.Compose(r),
			ClientAppointment: bindrequests.ComposeClientAppointment(ca),
		})
	}
}

func RejectRequestHandler(dbrequest krequest.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		d, err := decision(c, p, param)
		if err != nil {
			return err
		}

		r, err := dbrequest.Reject(c.Request().Context(), d)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindrequests.Compose(r))
	}
}

// CancelRequestHandler withdraws a pending request. Only the requester or admins can do it.
func CancelRequestHandler(dbrequest krequest.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		d, err := decision(c, p, param)
		if err != nil {
			return err
		}
		if _, err := visibleRequest(c, dbrequest, p, d.RequestId); err != nil {
			return err
		}

		r, err := dbrequest.Cancel(c.Request().Context(), d)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindrequests.Compose(r))
	}
}

func FindClientAppointmentsHandler(dbrequest krequest.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		client, err := idParam(c, "client")
		if err != nil {
			return err
		}
		host, err := idParam(c, "host")
		if err != nil {
			return err
		}
		query := domain.ClientAppointmentQuery{
			ClientId: client,
			Host:     self(p, host),
		}
		if query.From, query.To, err = window(c); err != nil {
			return err
		}

		found, err := dbrequest.ClientAppointments(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindrequests.ComposeClientAppointment))
	}
}
