package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindprojects "github.com/opst/leadline/pkg/api-types-binding/projects"
	apiprojects "github.com/opst/leadline/pkg/api/types/projects"
	"github.com/opst/leadline/pkg/domain"
	kclient "github.com/opst/leadline/pkg/domain/client/db"
	kproject "github.com/opst/leadline/pkg/domain/project/db"
	"github.com/opst/leadline/pkg/utils"
)

const adviceProjectStatus = `"status" should be one of "planned", "active", "completed" or "cancelled"`

func FindProjectsHandler(dbproject kproject.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		client, err := idParam(c, "client")
		if err != nil {
			return err
		}
		owner, err := idParam(c, "owner")
		if err != nil {
			return err
		}
		query := domain.ProjectQuery{
			ClientId: client,
			Owner:    self(p, owner),
		}
		if query.Status, err = listParam(c, "status", domain.AsProjectStatus, adviceProjectStatus); err != nil {
			return err
		}

		found, err := dbproject.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindprojects.Compose))
	}
}

// dates parses start and end dates. nil is kept nil.
func dates(start, end *string) (*time.Time, *time.Time, error) {
	var s, e *time.Time
	var err error
	if start != nil {
		if s, err = bindprojects.ParseDate(*start); err != nil {
			return nil, nil, binderr.BadRequest(`"startDate" should be YYYY-MM-DD`, err)
		}
	}
	if end != nil {
		if e, err = bindprojects.ParseDate(*end); err != nil {
			return nil, nil, binderr.BadRequest(`"endDate" should be YYYY-MM-DD`, err)
		}
	}
	return s, e, nil
}

// CreateProjectHandler creates a project for a client the caller owns.
func CreateProjectHandler(dbclient kclient.Interface, dbproject kproject.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiprojects.CreateRequest](c)
		if err != nil {
			return err
		}
		start, end, err := dates(&req.StartDate, &req.EndDate)
		if err != nil {
			return err
		}
		if _, err := visibleClient(c, dbclient, p, req.ClientId); err != nil {
			return err
		}

		spec := domain.ProjectSpec{
			ClientId:    req.ClientId,
			Name:        req.Name,
			Description: req.Description,
			ValueCents:  req.ValueCents,
			StartDate:   start,
			EndDate:     end,
			Owner:       p.ProfileId,
		}
		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		project, err := dbproject.Create(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindprojects.Compose(project))
	}
}

func visibleProject(c echo.Context, dbproject kproject.Interface, p domain.Principal, id string) (domain.Project, error) {
	project, err := getById(c.Request().Context(), dbproject.Get, id)
	if err != nil {
		return project, err
	}
	if !visibleByOwner(p, project.Owner) {
		return project, binderr.NotFound()
	}
	return project, nil
}

func GetProjectHandler(dbproject kproject.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		project, err := visibleProject(c, dbproject, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindprojects.Compose(project))
	}
}

func UpdateProjectHandler(dbproject kproject.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiprojects.UpdateRequest](c)
		if err != nil {
			return err
		}
		start, end, err := dates(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleProject(c, dbproject, p, id); err != nil {
			return err
		}

		project, err := dbproject.Update(c.Request().Context(), id, domain.ProjectChange{
			Name:        req.Name,
			Description: req.Description,
			ValueCents:  req.ValueCents,
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindprojects.Compose(project))
	}
}

func SetProjectStatusHandler(dbproject kproject.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiprojects.StatusRequest](c)
		if err != nil {
			return err
		}
		status, err := domain.AsProjectStatus(req.Status)
		if err != nil {
			return binderr.BadRequest(adviceProjectStatus, err)
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleProject(c, dbproject, p, id); err != nil {
			return err
		}

		project, err := dbproject.SetStatus(c.Request().Context(), id, status)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindprojects.Compose(project))
	}
}

func DeleteProjectHandler(dbproject kproject.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if err := dbproject.Delete(c.Request().Context(), id); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
