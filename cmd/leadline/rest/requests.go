package rest

import (
	"context"
	"net/http"

	apirequests "github.com/opst/leadline/pkg/api/types/requests"
)

func (c *client) FindRequests(ctx context.Context, query RequestQuery) ([]apirequests.Request, error) {
	return sendJSON[[]apirequests.Request](
		ctx, c, http.MethodGet, c.apipath("appointment-requests")+query.encode(), nil,
		MessageFor{Status4xx: "finding appointment requests is rejected", Status5xx: "server error"},
	)
}

func (c *client) CreateRequest(ctx context.Context, req apirequests.CreateRequest) (apirequests.Request, error) {
	return sendJSON[apirequests.Request](
		ctx, c, http.MethodPost, c.apipath("appointment-requests"), req,
		MessageFor{Status4xx: "appointment request is rejected", Status5xx: "server error"},
	)
}

func (c *client) ApproveRequest(ctx context.Context, requestId string, note string) (apirequests.Approval, error) {
	return sendJSON[apirequests.Approval](
		ctx, c, http.MethodPut, c.apipath("appointment-requests", requestId, "approve"),
		apirequests.DecisionRequest{Note: note},
		MessageFor{Status4xx: "approval is rejected", Status5xx: "server error"},
	)
}

func (c *client) RejectRequest(ctx context.Context, requestId string, note string) (apirequests.Request, error) {
	return sendJSON[apirequests.Request](
		ctx, c, http.MethodPut, c.apipath("appointment-requests", requestId, "reject"),
		apirequests.DecisionRequest{Note: note},
		MessageFor{Status4xx: "rejection is rejected", Status5xx: "server error"},
	)
}

func (c *client) CancelRequest(ctx context.Context, requestId string) (apirequests.Request, error) {
	return sendJSON[apirequests.Request](
		ctx, c, http.MethodPut, c.apipath("appointment-requests", requestId, "cancel"),
		apirequests.DecisionRequest{},
		MessageFor{Status4xx: "cancellation is rejected", Status5xx: "server error"},
	)
}
