package appointments

import (
	"github.com/opst/leadline/pkg/api/types/appointments"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(a domain.Appointment) appointments.Appointment {
	return appointments.Appointment{
		Id:        a.Id,
		Title:     a.Title,
		LeadId:    a.LeadId,
		ClientId:  a.ClientId,
		Owner:     a.Owner,
		StartsAt:  rfctime.RFC3339(a.StartsAt),
		EndsAt:    rfctime.RFC3339(a.EndsAt),
		Location:  a.Location,
		Notes:     a.Notes,
		Status:    string(a.Status),
		CreatedAt: rfctime.RFC3339(a.CreatedAt),
		UpdatedAt: rfctime.RFC3339(a.UpdatedAt),
	}
}
