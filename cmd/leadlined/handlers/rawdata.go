package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindrawdata "github.com/opst/leadline/pkg/api-types-binding/rawdata"
	apirawdata "github.com/opst/leadline/pkg/api/types/rawdata"
	"github.com/opst/leadline/pkg/domain"
	krawdata "github.com/opst/leadline/pkg/domain/rawdata/db"
	"github.com/opst/leadline/pkg/utils"
)

// MaxRawDataRows bounds rows submitted at once.
const MaxRawDataRows = 5000

func FindRawDataHandler(dbrawdata krawdata.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		submitter, err := idParam(c, "submitter")
		if err != nil {
			return err
		}
		query := domain.RawDataQuery{SubmittedBy: submitter}
		if p.Role == domain.Intern {
			query.SubmittedBy = []string{p.ProfileId}
		}
		if query.ReviewStatus, err = listParam(c, "review", domain.AsReviewStatus, adviceReviewStatus); err != nil {
			return err
		}

		found, err := dbrawdata.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindrawdata.Compose))
	}
}

// readCSV reads rows of the csv as payloads. The first row is the header.
//
// Header names are lowercased and trimmed. Empty cells are dropped.
func readCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv is empty")
	} else if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	cr.FieldsPerRecord = len(header)

	rows := []map[string]string{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		row := map[string]string{}
		for i, v := range rec {
			if v = strings.TrimSpace(v); v != "" && header[i] != "" {
				row[header[i]] = v
			}
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
		if MaxRawDataRows < len(rows) {
			return nil, fmt.Errorf("too many rows: up to %d rows can be submitted at once", MaxRawDataRows)
		}
	}
	return rows, nil
}

// SubmitRawDataHandler takes raw data as a JSON array or a text/csv body.
//
// For csv, the "source" query parameter names where the rows come from.
func SubmitRawDataHandler(dbrawdata krawdata.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}

		var specs []domain.RawDataSpec
		mt, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
		switch mt {
		case "text/csv":
			rows, err := readCSV(c.Request().Body)
			if err != nil {
				return binderr.BadRequest("can not understand the requested csv", err)
			}
			source := c.QueryParam("source")
			if source == "" {
				source = "csv"
			}
			specs = utils.Map(rows, func(row map[string]string) domain.RawDataSpec {
				return domain.RawDataSpec{
					Source: source, Payload: row, SubmittedBy: p.ProfileId,
				}
			})
		case echo.MIMEApplicationJSON:
			reqs, err := readJSON[[]apirawdata.SubmitRequest](c)
			if err != nil {
				return err
			}
			if MaxRawDataRows < len(reqs) {
				return binderr.BadRequest(fmt.Sprintf("up to %d items can be submitted at once", MaxRawDataRows), nil)
			}
			specs = utils.Map(reqs, func(r apirawdata.SubmitRequest) domain.RawDataSpec {
				return domain.RawDataSpec{
					Source: r.Source, Payload: r.Payload, SubmittedBy: p.ProfileId,
				}
			})
		default:
			return binderr.BadRequest("unexpected content type. it should be application/json or text/csv", nil)
		}
		if len(specs) == 0 {
			return binderr.BadRequest("no raw data are submitted", nil)
		}
		for _, s := range specs {
			if err := s.Validate(); err != nil {
				return binderr.FromDomain(err)
			}
		}

		created, err := dbrawdata.Submit(c.Request().Context(), specs)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, utils.Map(created, bindrawdata.Compose))
	}
}

func visibleRawData(c echo.Context, dbrawdata krawdata.Interface, p domain.Principal, id string) (domain.RawData, error) {
	r, err := getById(c.Request().Context(), dbrawdata.Get, id)
	if err != nil {
		return r, err
	}
	if p.Role == domain.Intern && r.SubmittedBy != p.ProfileId {
		return r, binderr.NotFound()
	}
	return r, nil
}

func GetRawDataHandler(dbrawdata krawdata.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		r, err := visibleRawData(c, dbrawdata, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, bindrawdata.Compose(r))
	}
}

// DeleteRawDataHandler removes raw data still under review. Only the submitter or admins can do it.
func DeleteRawDataHandler(dbrawdata krawdata.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		r, err := visibleRawData(c, dbrawdata, p, id)
		if err != nil {
			return err
		}
		if !visibleByOwner(p, r.SubmittedBy) {
			return binderr.Forbidden("only the submitter can delete raw data")
		}
		if err := dbrawdata.Delete(c.Request().Context(), id); err != nil {
			return binderr.FromDomain(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
