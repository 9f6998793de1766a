package rest

import (
	"context"
	"net/http"

	apiclients "github.com/opst/leadline/pkg/api/types/clients"
	apidashboard "github.com/opst/leadline/pkg/api/types/dashboard"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
)

func (c *client) FindLeads(ctx context.Context, query LeadQuery) ([]apileads.Lead, error) {
	return sendJSON[[]apileads.Lead](
		ctx, c, http.MethodGet, c.apipath("leads")+query.encode(), nil,
		MessageFor{Status4xx: "finding leads is rejected", Status5xx: "server error"},
	)
}

func (c *client) CreateLead(ctx context.Context, req apileads.CreateRequest) (apileads.Lead, error) {
	return sendJSON[apileads.Lead](
		ctx, c, http.MethodPost, c.apipath("leads"), req,
		MessageFor{Status4xx: "lead is rejected", Status5xx: "server error"},
	)
}

func (c *client) ConvertLead(ctx context.Context, leadId string) (apiclients.Conversion, error) {
	return sendJSON[apiclients.Conversion](
		ctx, c, http.MethodPost, c.apipath("leads", leadId, "convert"), nil,
		MessageFor{Status4xx: "conversion is rejected", Status5xx: "server error"},
	)
}

func (c *client) Dashboard(ctx context.Context) (apidashboard.Dashboard, error) {
	return sendJSON[apidashboard.Dashboard](
		ctx, c, http.MethodGet, c.apipath("dashboard"), nil,
		MessageFor{Status5xx: "server error"},
	)
}
