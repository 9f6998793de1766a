package postgres_test

import (
	"context"
	"maps"
	"testing"
	"time"

	"github.com/opst/leadline/pkg/conn/db/postgres/pool/testenv"
	"github.com/opst/leadline/pkg/domain"
	kpgappointment "github.com/opst/leadline/pkg/domain/appointment/db/postgres"
	kpgdashboard "github.com/opst/leadline/pkg/domain/dashboard/db/postgres"
	kpgincentive "github.com/opst/leadline/pkg/domain/incentive/db/postgres"
	"github.com/opst/leadline/pkg/domain/internal/db/postgres/seed"
	kpgraw "github.com/opst/leadline/pkg/domain/rawdata/db/postgres"
	"github.com/opst/leadline/pkg/utils/try"
)

func TestDashboard_Summarize(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)
	ctx := context.Background()
	pool := poolBroaker.GetPool(ctx, t)
	now := time.Now().Truncate(time.Second)

	admin := seed.Profile(ctx, t, pool, domain.Admin)
	sales := seed.Profile(ctx, t, pool, domain.Sales)
	otherSales := seed.Profile(ctx, t, pool, domain.Sales)
	intern := seed.Profile(ctx, t, pool, domain.Intern)

	seed.Lead(ctx, t, pool, sales, domain.LeadNew)
	seed.Lead(ctx, t, pool, otherSales, domain.LeadContacted)
	seed.Lead(ctx, t, pool, intern, domain.LeadLost)

	client := seed.Client(ctx, t, pool, sales)
	seed.Request(ctx, t, pool, client.Id, sales, now.Add(48*time.Hour))
	seed.Request(ctx, t, pool, client.Id, otherSales, now.Add(48*time.Hour))

	try.To(kpgraw.New(pool).Submit(ctx, []domain.RawDataSpec{
		{Source: "fair", Payload: map[string]string{"name": "Jane"}, SubmittedBy: intern},
	})).OrFatal(t)

	incentives := kpgincentive.New(pool)
	for profile, amount := range map[string]int64{sales: 1000, otherSales: 2000} {
		try.To(incentives.Create(ctx, domain.IncentiveSpec{
			ProfileId: profile, AmountCents: amount, Reason: "deal", Period: "2026-04", CreatedBy: admin,
		})).OrFatal(t)
	}

	appointments := kpgappointment.New(pool)
	schedule := func(owner string, title string, after time.Duration) domain.Appointment {
		t.Helper()
		return try.To(appointments.Create(ctx, domain.AppointmentSpec{
			Title: title, Owner: owner, StartsAt: now.Add(after), EndsAt: now.Add(after + time.Hour),
		})).OrFatal(t)
	}
	upcoming := schedule(sales, "soon", 24*time.Hour)
	schedule(sales, "later", 8*24*time.Hour)
	cancelled := schedule(sales, "cancelled", 48*time.Hour)
	try.To(appointments.SetStatus(ctx, cancelled.Id, domain.AppointmentCancelled)).OrFatal(t)
	schedule(otherSales, "not mine", 24*time.Hour)

	leads := func(counts map[domain.LeadStatus]int) map[domain.LeadStatus]int {
		ret := map[domain.LeadStatus]int{}
		for _, s := range domain.LeadStatuses() {
			ret[s] = counts[s]
		}
		return ret
	}

	testee := kpgdashboard.New(pool)

	t.Run("admin sees everything", func(t *testing.T) {
		d := try.To(testee.Summarize(ctx, domain.Principal{ProfileId: admin, Role: domain.Admin}, now)).OrFatal(t)

		if expected := leads(map[domain.LeadStatus]int{
			domain.LeadNew: 1, domain.LeadContacted: 1, domain.LeadLost: 1,
		}); !maps.Equal(d.LeadsByStatus, expected) {
			t.Errorf("leads: (actual, expected) = (%v, %v)", d.LeadsByStatus, expected)
		}
		if d.PendingRequests != 2 {
			t.Errorf("pending requests: %d", d.PendingRequests)
		}
		if d.PendingReviews[domain.EntityRawData] != 1 || d.PendingReviews[domain.EntityLead] != 0 {
			t.Errorf("pending reviews: %v", d.PendingReviews)
		}
		if expected := map[domain.Role]int{domain.Admin: 1, domain.Sales: 2, domain.Intern: 1}; !maps.Equal(d.ActiveProfiles, expected) {
			t.Errorf("active profiles: (actual, expected) = (%v, %v)", d.ActiveProfiles, expected)
		}
		if d.IncentiveTotals[domain.IncentivePending] != 3000 {
			t.Errorf("incentives: %v", d.IncentiveTotals)
		}
		if d.UpcomingAppointments != nil || d.Submissions != nil {
			t.Errorf("unexpected sections for admin: %+v", d)
		}
	})

	t.Run("sales sees own business", func(t *testing.T) {
		d := try.To(testee.Summarize(ctx, domain.Principal{ProfileId: sales, Role: domain.Sales}, now)).OrFatal(t)

		if expected := leads(map[domain.LeadStatus]int{domain.LeadNew: 1}); !maps.Equal(d.LeadsByStatus, expected) {
			t.Errorf("leads: (actual, expected) = (%v, %v)", d.LeadsByStatus, expected)
		}
		if d.PendingRequests != 1 {
			t.Errorf("pending requests: %d", d.PendingRequests)
		}
		if d.IncentiveTotals[domain.IncentivePending] != 1000 {
			t.Errorf("incentives: %v", d.IncentiveTotals)
		}
		if len(d.UpcomingAppointments) != 1 || d.UpcomingAppointments[0].Id != upcoming.Id {
			t.Errorf("upcoming appointments: %+v", d.UpcomingAppointments)
		}
		if d.PendingReviews != nil || d.ActiveProfiles != nil || d.Submissions != nil {
			t.Errorf("unexpected sections for sales: %+v", d)
		}
	})

	t.Run("intern sees own submissions", func(t *testing.T) {
		d := try.To(testee.Summarize(ctx, domain.Principal{ProfileId: intern, Role: domain.Intern}, now)).OrFatal(t)

		if expected := leads(map[domain.LeadStatus]int{domain.LeadLost: 1}); !maps.Equal(d.LeadsByStatus, expected) {
			t.Errorf("leads: (actual, expected) = (%v, %v)", d.LeadsByStatus, expected)
		}
		if d.PendingRequests != 0 {
			t.Errorf("pending requests: %d", d.PendingRequests)
		}
		expected := map[domain.ReviewStatus]int{
			domain.ReviewPending: 1, domain.ReviewApproved: 1, domain.ReviewRejected: 0,
		}
		if !maps.Equal(d.Submissions, expected) {
			t.Errorf("submissions: (actual, expected) = (%v, %v)", d.Submissions, expected)
		}
		if d.IncentiveTotals != nil || d.UpcomingAppointments != nil || d.PendingReviews != nil {
			t.Errorf("unexpected sections for intern: %+v", d)
		}
	})
}
