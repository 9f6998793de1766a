package postgres_test

import (
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/opst/leadline/pkg/conn/db/postgres/pool/testenv"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	kpgincentive "github.com/opst/leadline/pkg/domain/incentive/db/postgres"
	"github.com/opst/leadline/pkg/domain/internal/db/postgres/seed"
	"github.com/opst/leadline/pkg/utils/try"
)

func TestIncentive_SetStatus(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	for name, testcase := range map[string]struct {
		path   []domain.IncentiveStatus
		refuse []domain.IncentiveStatus
	}{
		"pending -> approved -> paid": {
			path:   []domain.IncentiveStatus{domain.IncentiveApproved, domain.IncentivePaid},
			refuse: []domain.IncentiveStatus{domain.IncentivePending, domain.IncentiveApproved, domain.IncentiveRejected},
		},
		"pending -> rejected": {
			path:   []domain.IncentiveStatus{domain.IncentiveRejected},
			refuse: []domain.IncentiveStatus{domain.IncentivePending, domain.IncentiveApproved, domain.IncentivePaid},
		},
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			pool := poolBroaker.GetPool(ctx, t)
			admin := seed.Profile(ctx, t, pool, domain.Admin)
			sales := seed.Profile(ctx, t, pool, domain.Sales)
			testee := kpgincentive.New(pool)

			inc := try.To(testee.Create(ctx, domain.IncentiveSpec{
				ProfileId: sales, AmountCents: 5000, Reason: "deal", Period: "2026-04", CreatedBy: admin,
			})).OrFatal(t)
			if inc.Status != domain.IncentivePending {
				t.Fatalf("unexpected incentive: %+v", inc)
			}

			for _, next := range testcase.path {
				got := try.To(testee.SetStatus(ctx, inc.Id, next)).OrFatal(t)
				if got.Status != next {
					t.Errorf("status: (actual, expected) = (%s, %s)", got.Status, next)
				}
			}
			for _, next := range testcase.refuse {
				if _, err := testee.SetStatus(ctx, inc.Id, next); !errors.Is(err, domerr.ErrInvalidStateChanging) {
					t.Errorf("-> %s: unexpected error: %v", next, err)
				}
			}
		})
	}

	t.Run("SetStatus reports missing incentives", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		_, err := kpgincentive.New(pool).SetStatus(ctx, "00000000-0000-4000-8000-000000000000", domain.IncentiveApproved)
		if !errors.Is(err, domerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestIncentive_Summary(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("Summary totals amounts per status of the profile", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		admin := seed.Profile(ctx, t, pool, domain.Admin)
		sales := seed.Profile(ctx, t, pool, domain.Sales)
		other := seed.Profile(ctx, t, pool, domain.Sales)
		testee := kpgincentive.New(pool)

		create := func(profile string, amount int64, status ...domain.IncentiveStatus) {
			t.Helper()
			inc := try.To(testee.Create(ctx, domain.IncentiveSpec{
				ProfileId: profile, AmountCents: amount, Reason: "deal", Period: "2026-04", CreatedBy: admin,
			})).OrFatal(t)
			for _, s := range status {
				try.To(testee.SetStatus(ctx, inc.Id, s)).OrFatal(t)
			}
		}
		create(sales, 1000)
		create(sales, 2000)
		create(sales, 4000, domain.IncentiveApproved)
		create(sales, 8000, domain.IncentiveApproved, domain.IncentivePaid)
		create(other, 16000, domain.IncentiveApproved, domain.IncentivePaid)

		summary := try.To(testee.Summary(ctx, sales)).OrFatal(t)
		expected := map[domain.IncentiveStatus]int64{
			domain.IncentivePending:  3000,
			domain.IncentiveApproved: 4000,
			domain.IncentivePaid:     8000,
			domain.IncentiveRejected: 0,
		}
		if summary.ProfileId != sales || !maps.Equal(summary.Totals, expected) {
			t.Errorf("summary: (actual, expected) = (%+v, %+v)", summary.Totals, expected)
		}
	})

	t.Run("Summary of a profile without incentives is all zero", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)
		intern := seed.Profile(ctx, t, pool, domain.Intern)

		summary := try.To(kpgincentive.New(pool).Summary(ctx, intern)).OrFatal(t)
		if len(summary.Totals) != len(domain.IncentiveStatuses()) {
			t.Errorf("statuses are missing: %+v", summary.Totals)
		}
		for s, v := range summary.Totals {
			if v != 0 {
				t.Errorf("%s: %d", s, v)
			}
		}
	})
}
