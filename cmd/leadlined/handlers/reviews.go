package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	bindreviews "github.com/opst/leadline/pkg/api-types-binding/reviews"
	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
	"github.com/opst/leadline/pkg/domain"
	kreview "github.com/opst/leadline/pkg/domain/review/db"
	"github.com/opst/leadline/pkg/utils"
)

const adviceEntityType = `"entity" should be one of "lead", "client", "raw_data" or "document"`

func FindReviewsHandler(dbreview kreview.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		submitter, err := idParam(c, "submitter")
		if err != nil {
			return err
		}
		query := domain.ReviewQuery{SubmittedBy: self(p, submitter)}
		if query.Status, err = listParam(c, "status", domain.AsReviewStatus, adviceReviewStatus); err != nil {
			return err
		}
		if query.EntityType, err = listParam(c, "entity", domain.AsEntityType, adviceEntityType); err != nil {
			return err
		}

		found, err := dbreview.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, bindreviews.Compose))
	}
}

// SubmitReviewHandler queues an entity for review explicitly.
func SubmitReviewHandler(dbreview kreview.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apireviews.SubmitRequest](c)
		if err != nil {
			return err
		}
		if err := bodyId("entityId", &req.EntityId); err != nil {
			return err
		}
		et, err := domain.AsEntityType(req.EntityType)
		if err != nil {
			return binderr.BadRequest(`"entityType" should be one of "lead", "client", "raw_data" or "document"`, err)
		}
		if req.EntityId == "" {
			return binderr.BadRequest(`"entityId" is required`, nil)
		}

		r, err := dbreview.Submit(c.Request().Context(), domain.ReviewSpec{
			EntityType:  et,
			EntityId:    req.EntityId,
			SubmittedBy: p.ProfileId,
		})
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, bindreviews.Compose(r))
	}
}

// DecideReviewsHandler approves or rejects reviews in a batch.
//
// Either all of them are decided, or none.
func DecideReviewsHandler(dbreview kreview.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		req, err := readJSON[apireviews.DecisionRequest](c)
		if err != nil {
			return err
		}
		for _, id := range req.ReviewIds {
			if err := bodyId("reviewIds", &id); err != nil {
				return err
			}
		}
		verdict, err := domain.AsReviewStatus(req.Decision)
		if err != nil || verdict == domain.ReviewPending {
			return binderr.BadRequest(`"decision" should be "approved" or "rejected"`, err)
		}
		d := domain.ReviewDecision{
			ReviewIds:  req.ReviewIds,
			Verdict:    verdict,
			ReviewedBy: p.ProfileId,
			Note:       req.Note,
		}
		if err := d.Validate(); err != nil {
			return binderr.FromDomain(err)
		}

		outcomes, err := dbreview.Decide(c.Request().Context(), d)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(outcomes, bindreviews.ComposeOutcome))
	}
}
