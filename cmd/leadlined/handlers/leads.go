package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bindclients "github.com/opst/leadline/pkg/api-types-binding/clients"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindleads "github.com/opst/leadline/pkg/api-types-binding/leads"
	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
	"github.com/opst/leadline/pkg/domain"
	klead "github.com/opst/leadline/pkg/domain/lead/db"
	"github.com/opst/leadline/pkg/utils"
)

const (
	adviceLeadStatus   = `"status" should be one of "new", "contacted", "qualified", "converted" or "lost"`
	adviceReviewStatus = `review status should be one of "pending", "approved" or "rejected"`
)

// leadVisible tells the lead can be seen by p.
//
// Admins see all leads. Sales see leads assigned to or created by them.
// Interns see leads they created.
func leadVisible(p domain.Principal, l domain.Lead) bool {
	switch p.Role {
	case domain.Admin:
		return true
	case domain.Sales:
		return l.CreatedBy == p.ProfileId || (l.AssignedTo != nil && *l.AssignedTo == p.ProfileId)
	default:
		return l.CreatedBy == p.ProfileId
	}
}

func FindLeadsHandler(dblead klead.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		assignee, err := idParam(c, "assignee")
		if err != nil {
			return err
		}
		creator, err := idParam(c, "creator")
		if err != nil {
			return err
		}
		query := domain.LeadQuery{
			AssignedTo: assignee,
			CreatedBy:  creator,
		}
		if query.Status, err = listParam(c, "status", domain.AsLeadStatus, adviceLeadStatus); err != nil {
			return err
		}
		if query.ReviewStatus, err = listParam(c, "review", domain.AsReviewStatus, adviceReviewStatus); err != nil {
			return err
		}
		if query.UpdatedSince, query.UpdatedUntil, err = window(c); err != nil {
			return err
		}
		switch p.Role {
		case domain.Admin:
		case domain.Sales:
			query.VisibleTo = &p.ProfileId
		default:
			query.CreatedBy = []string{p.ProfileId}
		}

		found, err := dblead.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindleads.Compose))
	}
}

func CreateLeadHandler(dblead klead.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apileads.CreateRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("assignedTo", req.AssignedTo); err != nil {
			return err
		}
		spec := domain.LeadSpec{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Company:      req.Company,
			Source:       req.Source,
			Notes:        req.Notes,
			AssignedTo:   req.AssignedTo,
			CreatedBy:    p.ProfileId,
			ReviewStatus: domain.InitialReviewStatus(p.Role),
		}
		if p.Role == domain.Intern {
			spec.AssignedTo = nil
		}

		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		lead, err := dblead.Create(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindleads.Compose(lead))
	}
}

// visibleLead loads the lead, and hides it from those who cannot see it.
func visibleLead(c echo.Context, dblead klead.Interface, p domain.Principal, id string) (domain.Lead, error) {
	lead, err := getById(c.Request().Context(), dblead.Get, id)
	if err != nil {
		return lead, err
	}
	if !leadVisible(p, lead) {
		return lead, binderr.NotFound()
	}
	return lead, nil
}

func GetLeadHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		lead, err := visibleLead(c, dblead, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindleads.Compose(lead))
	}
}

func UpdateLeadHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apileads.UpdateRequest](c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleLead(c, dblead, p, id); err != nil {
			return err
		}

		lead, err := dblead.Update(c.Request().Context(), id, domain.LeadChange{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Source:  req.Source,
			Notes:   req.Notes,
		})
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindleads.Compose(lead))
	}
}

func SetLeadStatusHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apileads.StatusRequest](c)
		if err != nil {
			return err
		}
		status, err := domain.AsLeadStatus(req.Status)
		if err != nil {
			return binderr.BadRequest(adviceLeadStatus, err)
		}
		if status == domain.LeadConverted {
			return binderr.BadRequest("use POST /api/leads/:id/convert to convert leads", nil)
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleLead(c, dblead, p, id); err != nil {
			return err
		}

		lead, err := dblead.SetStatus(c.Request().Context(), id, status)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindleads.Compose(lead))
	}
}

func AssignLeadHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := readJSON[apileads.AssignRequest](c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if req.AssignedTo != nil {
			if _, err := asId(*req.AssignedTo); err != nil {
				return binderr.BadRequest(`"assignedTo" should be an id of a profile`, err)
			}
		}
		lead, err := dblead.Assign(c.Request().Context(), id, req.AssignedTo)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindleads.Compose(lead))
	}
}

func DeleteLeadHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if err := dblead.Delete(c.Request().Context(), id); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ConvertLeadHandler converts a qualified lead into a client owned by the caller.
func ConvertLeadHandler(dblead klead.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleLead(c, dblead, p, id); err != nil {
			return err
		}

		lead, client, err := dblead.Convert(c.Request().Context(), id, p.ProfileId)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, apiclients.Conversion{
			LeadId: lead.Id,
			Client: bindclients.Compose(client),
		})
	}
}
