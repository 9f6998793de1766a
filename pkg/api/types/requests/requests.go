package requests

import "github.com/opst/leadline/pkg/utils/rfctime"

type Request struct {
	Id             string           `json:"id"`
	ClientId       string           `json:"clientId"`
	RequestedBy    string           `json:"requestedBy"`
	RequestedStart rfctime.RFC3339  `json:"requestedStart"`
	RequestedEnd   rfctime.RFC3339  `json:"requestedEnd"`
	Purpose        string           `json:"purpose,omitempty"`
	Status         string           `json:"status"`
	DecidedBy      *string          `json:"decidedBy,omitempty"`
	DecidedAt      *rfctime.RFC3339 `json:"decidedAt,omitempty"`
	DecisionNote   string           `json:"decisionNote,omitempty"`
	CreatedAt      rfctime.RFC3339  `json:"createdAt"`
	UpdatedAt      rfctime.RFC3339  `json:"updatedAt"`
}

type ClientAppointment struct {
	Id        string          `json:"id"`
	RequestId string          `json:"requestId"`
	ClientId  string          `json:"clientId"`
	Host      string          `json:"host"`
	StartsAt  rfctime.RFC3339 `json:"startsAt"`
	EndsAt    rfctime.RFC3339 `json:"endsAt"`
	Purpose   string          `json:"purpose,omitempty"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
}

type CreateRequest struct {
	ClientId       string          `json:"clientId"`
	RequestedStart rfctime.RFC3339 `json:"requestedStart"`
	RequestedEnd   rfctime.RFC3339 `json:"requestedEnd"`
	Purpose        string          `json:"purpose,omitempty"`
}

type DecisionRequest struct {
	Note string `json:"note,omitempty"`
}

// Approval is the result of approving a request.
type Approval struct {
	Request           Request           `json:"request"`
	ClientAppointment ClientAppointment `json:"clientAppointment"`
}

// Event is the payload posted to appointment webhooks.
type Event struct {
	Id                int64              `json:"id"`
	Type              string             `json:"type"`
	Actor             string             `json:"actor,omitempty"`
	Request           Request            `json:"request"`
	ClientAppointment *ClientAppointment `json:"clientAppointment,omitempty"`
	CreatedAt         rfctime.RFC3339    `json:"createdAt"`
}
