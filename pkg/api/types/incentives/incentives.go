package incentives

import "github.com/opst/leadline/pkg/utils/rfctime"

type Incentive struct {
	Id          string          `json:"id"`
	ProfileId   string          `json:"profileId"`
	AmountCents int64           `json:"amountCents"`
	Reason      string          `json:"reason"`
	Period      string          `json:"period"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt   rfctime.RFC3339 `json:"updatedAt"`
}

type CreateRequest struct {
	ProfileId   string `json:"profileId"`
	AmountCents int64  `json:"amountCents"`
	Reason      string `json:"reason"`
	Period      string `json:"period"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type Summary struct {
	ProfileId string           `json:"profileId"`
	Totals    map[string]int64 `json:"totals"`
}
