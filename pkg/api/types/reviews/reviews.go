package reviews

import "github.com/opst/leadline/pkg/utils/rfctime"

type Review struct {
	Id          string           `json:"id"`
	EntityType  string           `json:"entityType"`
	EntityId    string           `json:"entityId"`
	SubmittedBy string           `json:"submittedBy"`
	Status      string           `json:"status"`
	ReviewedBy  *string          `json:"reviewedBy,omitempty"`
	ReviewedAt  *rfctime.RFC3339 `json:"reviewedAt,omitempty"`
	Note        string           `json:"note,omitempty"`
	CreatedAt   rfctime.RFC3339  `json:"createdAt"`
}

type SubmitRequest struct {
	EntityType string `json:"entityType"`
	EntityId   string `json:"entityId"`
}

type DecisionRequest struct {
	ReviewIds []string `json:"reviewIds"`

	// "approved" or "rejected"
	Decision string `json:"decision"`
	Note     string `json:"note,omitempty"`
}

type Outcome struct {
	Review

	// lead created from approved raw data.
	CreatedLeadId *string `json:"createdLeadId,omitempty"`
}
