package leads

import (
	"github.com/opst/leadline/pkg/api/types/leads"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(l domain.Lead) leads.Lead {
	return leads.Lead{
		Id:           l.Id,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      l.Company,
		Source:       l.Source,
		Status:       string(l.Status),
		Notes:        l.Notes,
		AssignedTo:   l.AssignedTo,
		CreatedBy:    l.CreatedBy,
		ReviewStatus: string(l.ReviewStatus),
		CreatedAt:    rfctime.RFC3339(l.CreatedAt),
		UpdatedAt:    rfctime.RFC3339(l.UpdatedAt),
	}
}
