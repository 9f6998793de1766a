package domain

import "time"

// Dashboard is the summary shown to a profile. Which fields are filled depends on the role.
type Dashboard struct {
	Role Role

	// admin: all leads. sales: visible leads. intern: leads created by the intern.
	LeadsByStatus map[LeadStatus]int

	// admin only.
	PendingReviews map[EntityType]int

	// admin: all pending requests. others: own pending requests.
	PendingRequests int

	// admin: all incentives. sales: own incentives.
	IncentiveTotals map[IncentiveStatus]int64

	// admin only.
	ActiveProfiles map[Role]int

	// sales: own appointments in the window.
	UpcomingAppointments []Appointment

	// intern: own submissions (leads, clients, raw data and documents) by review status.
	Submissions map[ReviewStatus]int
}

// UpcomingWindow is how far the dashboard looks ahead for appointments.
const UpcomingWindow = 7 * 24 * time.Hour
