package clients

import "github.com/opst/leadline/pkg/utils/rfctime"

type Client struct {
	Id           string          `json:"id"`
	LeadId       *string         `json:"leadId,omitempty"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Company      string          `json:"company,omitempty"`
	Owner        string          `json:"owner"`
	ReviewStatus string          `json:"reviewStatus"`
	CreatedAt    rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt    rfctime.RFC3339 `json:"updatedAt"`
}

type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`

	// admins can create clients for others. Default is the caller.
	Owner string `json:"owner,omitempty"`
}

type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Owner   *string `json:"owner,omitempty"`
}

// Conversion is the result of converting a lead into a client.
type Conversion struct {
	LeadId string `json:"leadId"`
	Client Client `json:"client"`
}
