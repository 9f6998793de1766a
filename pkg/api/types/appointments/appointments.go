package appointments

import "github.com/opst/leadline/pkg/utils/rfctime"

type Appointment struct {
	Id        string          `json:"id"`
	Title     string          `json:"title"`
	LeadId    *string         `json:"leadId,omitempty"`
	ClientId  *string         `json:"clientId,omitempty"`
	Owner     string          `json:"owner"`
	StartsAt  rfctime.RFC3339 `json:"startsAt"`
	EndsAt    rfctime.RFC3339 `json:"endsAt"`
	Location  string          `json:"location,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Status    string          `json:"status"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
}

type CreateRequest struct {
	Title    string          `json:"title"`
	LeadId   *string         `json:"leadId,omitempty"`
	ClientId *string         `json:"clientId,omitempty"`
	StartsAt rfctime.RFC3339 `json:"startsAt"`
	EndsAt   rfctime.RFC3339 `json:"endsAt"`
	Location string          `json:"location,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

type UpdateRequest struct {
	Title    *string          `json:"title,omitempty"`
	StartsAt *rfctime.RFC3339 `json:"startsAt,omitempty"`
	EndsAt   *rfctime.RFC3339 `json:"endsAt,omitempty"`
	Location *string          `json:"location,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
