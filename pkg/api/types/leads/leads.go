package leads

import "github.com/opst/leadline/pkg/utils/rfctime"

type Lead struct {
	Id           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Company      string          `json:"company,omitempty"`
	Source       string          `json:"source,omitempty"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	AssignedTo   *string         `json:"assignedTo,omitempty"`
	CreatedBy    string          `json:"createdBy"`
	ReviewStatus string          `json:"reviewStatus"`
	CreatedAt    rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt    rfctime.RFC3339 `json:"updatedAt"`
}

type CreateRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Company    string  `json:"company,omitempty"`
	Source     string  `json:"source,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
}

// UpdateRequest changes a lead. Absent fields are kept.
type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Source  *string `json:"source,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

// AssignRequest sets the assignee. null unassigns.
type AssignRequest struct {
	AssignedTo *string `json:"assignedTo"`
}
