package projects

import "github.com/opst/leadline/pkg/utils/rfctime"

type Project struct {
	Id          string          `json:"id"`
	ClientId    string          `json:"clientId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	ValueCents  int64           `json:"valueCents"`
	StartDate   string          `json:"startDate,omitempty"`
	EndDate     string          `json:"endDate,omitempty"`
	Owner       string          `json:"owner"`
	CreatedAt   rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt   rfctime.RFC3339 `json:"updatedAt"`
}

// DateFormat is the format of StartDate and EndDate.
const DateFormat = "2006-01-02"

type CreateRequest struct {
	ClientId    string `json:"clientId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ValueCents  int64  `json:"valueCents"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// UpdateRequest changes a project. Absent fields are kept.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ValueCents  *int64  `json:"valueCents,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
