package clients

import (
	"github.com/opst/leadline/pkg/api/types/clients"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(c domain.Client) clients.Client {
	return clients.Client{
		Id:           c.Id,
		LeadId:       c.LeadId,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Company:      c.Company,
		Owner:        c.Owner,
		ReviewStatus: string(c.ReviewStatus),
		CreatedAt:    rfctime.RFC3339(c.CreatedAt),
		UpdatedAt:    rfctime.RFC3339(c.UpdatedAt),
	}
}
