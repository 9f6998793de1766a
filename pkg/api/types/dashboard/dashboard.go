package dashboard

import "github.com/opst/leadline/pkg/api/types/appointments"

// Dashboard is a role-specific summary. Fields not for the role are omitted.
type Dashboard struct {
	Role                 string                     `json:"role"`
	LeadsByStatus        map[string]int             `json:"leadsByStatus,omitempty"`
	PendingReviews       map[string]int             `json:"pendingReviews,omitempty"`
	PendingRequests      int                        `json:"pendingRequests"`
	IncentiveTotals      map[string]int64           `json:"incentiveTotals,omitempty"`
	ActiveProfiles       map[string]int             `json:"activeProfiles,omitempty"`
	UpcomingAppointments []appointments.Appointment `json:"upcomingAppointments,omitempty"`
	Submissions          map[string]int             `json:"submissions,omitempty"`
}
