package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils"
	"github.com/opst/leadline/pkg/utils/rfctime"
	kstrings "github.com/opst/leadline/pkg/utils/strings"
)

func principal(c echo.Context) (domain.Principal, error) {
	p, ok := auth.PrincipalOf(c)
	if !ok {
		return domain.Principal{}, binderr.Unauthorized("bearer token is required", nil)
	}
	return p, nil
}

func isJSON(c echo.Context) bool {
	mt, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	return err == nil && mt == echo.MIMEApplicationJSON
}

// readJSON decodes the request body as T.
func readJSON[T any](c echo.Context) (T, error) {
	v := new(T)
	if !isJSON(c) {
		return *v, binderr.BadRequest("unexpected content type. it should be application/json", nil)
	}
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		return *v, binderr.BadRequest("can not understand the requested json", err)
	}
	return *v, nil
}

// listParam parses a comma separated query parameter.
func listParam[T any](c echo.Context, name string, parse func(string) (T, error), advice string) ([]T, error) {
	ret, err := utils.MapUntilError(kstrings.SplitIfNotEmpty(c.QueryParam(name), ","), parse)
	if err != nil {
		return nil, binderr.BadRequest(advice, err)
	}
	return ret, nil
}

// asId accepts uuids only. Ids are stored as uuid, so anything else names nothing.
func asId(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// idParam parses a comma separated query parameter of ids.
func idParam(c echo.Context, name string) ([]string, error) {
	return listParam(c, name, asId, fmt.Sprintf(`"%s" should be comma separated ids`, name))
}

// bodyId rejects a malformed id in a request body with 400. nil is left as absent.
func bodyId(field string, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := asId(*id); err != nil {
		return binderr.BadRequest(fmt.Sprintf(`"%s" should be an id`, field), err)
	}
	return nil
}

// pathId is the id in the path parameter.
//
// Malformed ids are reported as 404, same as ids of nothing.
func pathId(c echo.Context, param string) (string, error) {
	id, err := asId(c.Param(param))
	if err != nil {
		return "", binderr.NotFound()
	}
	return id, nil
}

// window parses "since" and "duration" query parameters.
//
// "duration" makes sense only with "since".
func window(c echo.Context) (*time.Time, *time.Time, error) {
	s := c.QueryParam("since")
	d := c.QueryParam("duration")
	if s == "" {
		if d != "" {
			return nil, nil, binderr.BadRequest(`"duration" requires "since"`, nil)
		}
		return nil, nil, nil
	}
	t, err := rfctime.ParseRFC3339DateTime(s)
	if err != nil {
		return nil, nil, binderr.BadRequest(`"since" should be a RFC3339 date-time format`, err)
	}
	since := t.Time()
	if d == "" {
		return &since, nil, nil
	}
	dur, err := time.ParseDuration(d)
	if err != nil {
		return nil, nil, binderr.BadRequest(`"duration" should be a Go duration format`, err)
	}
	until := since.Add(dur)
	return &since, &until, nil
}

// getOne picks the item for id, or returns 404.
func getOne[T any](items map[string]T, err error, id string) (T, error) {
	if err != nil {
		return *new(T), binderr.InternalServerError(err)
	}
	item, ok := items[id]
	if !ok {
		return item, binderr.NotFound()
	}
	return item, nil
}

// getById loads the item for id with get, or returns 404.
func getById[T any](ctx context.Context, get func(context.Context, []string) (map[string]T, error), id string) (T, error) {
	if _, err := asId(id); err != nil {
		return *new(T), binderr.NotFound()
	}
	items, err := get(ctx, []string{id})
	return getOne(items, err, id)
}

// self restricts ids to the principal unless it is an admin.
func self(p domain.Principal, requested []string) []string {
	if p.IsAdmin() {
		return requested
	}
	return []string{p.ProfileId}
}

func visibleByOwner(p domain.Principal, owner string) bool {
	return p.IsAdmin() || p.ProfileId == owner
}
