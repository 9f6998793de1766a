package rest

import (
	"context"
	"net/http"

	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
)

func (c *client) FindReviews(ctx context.Context, query ReviewQuery) ([]apireviews.Review, error) {
	return sendJSON[[]apireviews.Review](
		ctx, c, http.MethodGet, c.apipath("reviews")+query.encode(), nil,
		MessageFor{Status4xx: "finding reviews is rejected", Status5xx: "server error"},
	)
}

func (c *client) DecideReviews(ctx context.Context, decision apireviews.DecisionRequest) ([]apireviews.Outcome, error) {
	return sendJSON[[]apireviews.Outcome](
		ctx, c, http.MethodPut, c.apipath("reviews", "decision"), decision,
		MessageFor{
			Status4xx: "decision is rejected. none of reviews are decided",
			Status5xx: "server error. none of reviews are decided",
		},
	)
}
