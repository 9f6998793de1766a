package dashboard

import (
	bindappointments "github.com/opst/leadline/pkg/api-types-binding/appointments"
	bindincentives "github.com/opst/leadline/pkg/api-types-binding/incentives"
	"github.com/opst/leadline/pkg/api/types/appointments"
	"github.com/opst/leadline/pkg/api/types/dashboard"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils"
)

func counts[K ~string](m map[K]int) map[string]int {
	if m == nil {
		return nil
	}
	ret := make(map[string]int, len(m))
	for k, v := range m {
		ret[string(k)] = v
	}
	return ret
}

func Compose(d domain.Dashboard) dashboard.Dashboard {
	var upcoming []appointments.Appointment
	if d.UpcomingAppointments != nil {
		upcoming = utils.Map(d.UpcomingAppointments, bindappointments.Compose)
	}
	return dashboard.Dashboard{
		Role:                 string(d.Role),
		LeadsByStatus:        counts(d.LeadsByStatus),
		PendingReviews:       counts(d.PendingReviews),
		PendingRequests:      d.PendingRequests,
		IncentiveTotals:      bindincentives.Totals(d.IncentiveTotals),
		ActiveProfiles:       counts(d.ActiveProfiles),
		UpcomingAppointments: upcoming,
		Submissions:          counts(d.Submissions),
	}
}
