package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bindclients "github.com/opst/leadline/pkg/api-types-binding/clients"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	"github.com/opst/leadline/pkg/domain"
	kclient "github.com/opst/leadline/pkg/domain/client/db"
	"github.com/opst/leadline/pkg/utils"
)

func FindClientsHandler(dbclient kclient.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		owner, err := idParam(c, "owner")
		if err != nil {
			return err
		}
		query := domain.ClientQuery{Owner: self(p, owner)}
		if query.ReviewStatus, err = listParam(c, "review", domain.AsReviewStatus, adviceReviewStatus); err != nil {
			return err
		}

		found, err := dbclient.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindclients.Compose))
	}
}

func CreateClientHandler(dbclient kclient.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiclients.CreateRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("owner", optional(req.Owner)); err != nil {
			return err
		}
		owner := p.ProfileId
		if p.IsAdmin() && req.Owner != "" {
			owner = req.Owner
		}

		spec := domain.ClientSpec{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Company:      req.Company,
			Owner:        owner,
			ReviewStatus: domain.InitialReviewStatus(p.Role),
		}
		if err := spec.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		client, err := dbclient.Create(c.Request().Context(), spec)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindclients.Compose(client))
	}
}

func visibleClient(c echo.Context, dbclient kclient.Interface, p domain.Principal, id string) (domain.Client, error) {
	client, err := getById(c.Request().Context(), dbclient.Get, id)
	if err != nil {
		return client, err
	}
	if !visibleByOwner(p, client.Owner) {
		return client, binderr.NotFound()
	}
	return client, nil
}

func GetClientHandler(dbclient kclient.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		client, err := visibleClient(c, dbclient, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindclients.Compose(client))
	}
}

func UpdateClientHandler(dbclient kclient.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apiclients.UpdateRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("owner", req.Owner); err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleClient(c, dbclient, p, id); err != nil {
			return err
		}
		if req.Owner != nil && !p.IsAdmin() {
			return binderr.Forbidden("only admins can change owners of clients")
		}

		client, err := dbclient.Update(c.Request().Context(), id, domain.ClientChange{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Owner:   req.Owner,
		})
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, bindclients.Compose(client))
	}
}

func DeleteClientHandler(dbclient kclient.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if err := dbclient.Delete(c.Request().Context(), id); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
