package rawdata

import "github.com/opst/leadline/pkg/utils/rfctime"

type RawData struct {
	Id           string            `json:"id"`
	Source       string            `json:"source,omitempty"`
	Payload      map[string]string `json:"payload"`
	SubmittedBy  string            `json:"submittedBy"`
	ReviewStatus string            `json:"reviewStatus"`
	LeadId       *string           `json:"leadId,omitempty"`
	CreatedAt    rfctime.RFC3339   `json:"createdAt"`
}

type SubmitRequest struct {
	Source  string            `json:"source,omitempty"`
	Payload map[string]string `json:"payload"`
}
