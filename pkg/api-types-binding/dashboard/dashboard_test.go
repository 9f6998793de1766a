package dashboard_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	binddashboard "github.com/opst/leadline/pkg/api-types-binding/dashboard"
	"github.com/opst/leadline/pkg/api/types/appointments"
	"github.com/opst/leadline/pkg/api/types/dashboard"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func TestCompose(t *testing.T) {
	start := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	for name, testcase := range map[string]struct {
		when domain.Dashboard
		then dashboard.Dashboard
	}{
		"admin": {
			when: domain.Dashboard{
				Role:            domain.Admin,
				LeadsByStatus:   map[domain.LeadStatus]int{domain.LeadNew: 3},
				PendingReviews:  map[domain.EntityType]int{domain.EntityDocument: 1},
				PendingRequests: 2,
				IncentiveTotals: map[domain.IncentiveStatus]int64{domain.IncentivePaid: 1000},
				ActiveProfiles:  map[domain.Role]int{domain.Sales: 4},
			},
			then: dashboard.Dashboard{
				Role:            "admin",
				LeadsByStatus:   map[string]int{"new": 3},
				PendingReviews:  map[string]int{"document": 1},
				PendingRequests: 2,
				IncentiveTotals: map[string]int64{"paid": 1000},
				ActiveProfiles:  map[string]int{"sales": 4},
			},
		},
		"sales": {
			when: domain.Dashboard{
				Role: domain.Sales,
				UpcomingAppointments: []domain.Appointment{
					{
						Id: "a-1", Title: "demo", Owner: "p-1",
						StartsAt: start, EndsAt: start.Add(time.Hour),
						Status:    domain.AppointmentScheduled,
						CreatedAt: start, UpdatedAt: start,
					},
				},
			},
			then: dashboard.Dashboard{
				Role: "sales",
				UpcomingAppointments: []appointments.Appointment{
					{
						Id: "a-1", Title: "demo", Owner: "p-1",
						StartsAt:  rfctime.RFC3339(start),
						EndsAt:    rfctime.RFC3339(start.Add(time.Hour)),
						Status:    "scheduled",
						CreatedAt: rfctime.RFC3339(start),
						UpdatedAt: rfctime.RFC3339(start),
					},
				},
			},
		},
		"intern": {
			when: domain.Dashboard{
				Role:        domain.Intern,
				Submissions: map[domain.ReviewStatus]int{domain.ReviewPending: 5},
			},
			then: dashboard.Dashboard{
				Role:        "intern",
				Submissions: map[string]int{"pending": 5},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := binddashboard.Compose(testcase.when)
			if diff := cmp.Diff(testcase.then, got, cmp.Comparer(func(a, b rfctime.RFC3339) bool {
				return a.Equal(&b)
			})); diff != "" {
				t.Errorf("dashboard (-want +got):\n%s", diff)
			}
		})
	}
}
