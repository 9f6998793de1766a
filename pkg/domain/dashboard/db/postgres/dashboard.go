package postgres

import (
	"context"
	"time"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/dashboard/db"
	incentive "github.com/opst/leadline/pkg/domain/incentive/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type pgDashboard struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgDashboard{pool: pool}
}

type bucket struct {
	Key   string
	Count int
}

// countBy runs a query returning ("key", "count") rows.
func countBy[K ~string](ctx context.Context, q kpool.Queryer, sql string, args ...any) (map[K]int, error) {
	bs, err := scanner.New[bucket]().QueryAll(ctx, q, sql, args...)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	ret := make(map[K]int, len(bs))
	for _, b := range bs {
		ret[K(b.Key)] = b.Count
	}
	return ret, nil
}

func zeroFilled[K comparable, V any](m map[K]V, keys []K) map[K]V {
	var zero V
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			m[k] = zero
		}
	}
	return m
}

func (m *pgDashboard) Summarize(ctx context.Context, principal domain.Principal, now time.Time) (domain.Dashboard, error) {
	d := domain.Dashboard{Role: principal.Role}
	var self *string
	if !principal.IsAdmin() {
		self = &principal.ProfileId
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var leadsOf string
		switch principal.Role {
		case domain.Admin:
			leadsOf = `$1::uuid is null`
		case domain.Sales:
			leadsOf = `$1::uuid in ("assigned_to", "created_by")`
		default:
			leadsOf = `"created_by" = $1::uuid`
		}
		c, err := countBy[domain.LeadStatus](
			ctx, m.pool,
			`select "status" as "key", count(*)::int as "count" from "leads"
			where `+leadsOf+` group by "status"`,
			self,
		)
		if err != nil {
			return err
		}
		d.LeadsByStatus = zeroFilled(c, domain.LeadStatuses())
		return nil
	})

	eg.Go(func() error {
		return m.pool.QueryRow(
			ctx,
			`select count(*)::int from "appointment_requests"
			where "status" = 'pending' and ($1::uuid is null or "requested_by" = $1::uuid)`,
			self,
		).Scan(&d.PendingRequests)
	})

	switch principal.Role {
	case domain.Admin:
		eg.Go(func() error {
			c, err := countBy[domain.EntityType](
				ctx, m.pool,
				`select "entity_type" as "key", count(*)::int as "count" from "reviews"
				where "status" = 'pending' group by "entity_type"`,
			)
			if err != nil {
				return err
			}
			d.PendingReviews = zeroFilled(c, domain.EntityTypes())
			return nil
		})
		eg.Go(func() error {
			c, err := countBy[domain.Role](
				ctx, m.pool,
				`select "role" as "key", count(*)::int as "count" from "profiles"
				where "active" group by "role"`,
			)
			if err != nil {
				return err
			}
			d.ActiveProfiles = zeroFilled(c, domain.Roles())
			return nil
		})
		eg.Go(func() error {
			ts, err := incentive.Totals(ctx, m.pool, nil)
			if err != nil {
				return err
			}
			d.IncentiveTotals = ts
			return nil
		})
	case domain.Sales:
		eg.Go(func() error {
			ts, err := incentive.Totals(ctx, m.pool, self)
			if err != nil {
				return err
			}
			d.IncentiveTotals = ts
			return nil
		})
		eg.Go(func() error {
			as, err := scanner.New[domain.Appointment]().QueryAll(
				ctx, m.pool,
				`
				select "id", "title", "lead_id", "client_id", "owner", "starts_at", "ends_at",
					"location", "notes", "status", "created_at", "updated_at"
				from "appointments"
				where "owner" = $1 and "status" = 'scheduled' and $2 <= "starts_at" and "starts_at" < $3
				order by "starts_at", "id"
				`,
				principal.ProfileId, now, now.Add(domain.UpcomingWindow),
			)
			if err != nil {
				return xe.Wrap(err)
			}
			d.UpcomingAppointments = as
			return nil
		})
	case domain.Intern:
		eg.Go(func() error {
			c, err := countBy[domain.ReviewStatus](
				ctx, m.pool,
				`
				select "review_status" as "key", count(*)::int as "count" from (
					select "review_status" from "leads" where "created_by" = $1
					union all
					select "review_status" from "clients" where "owner" = $1
					union all
					select "review_status" from "raw_data" where "submitted_by" = $1
					union all
					select "review_status" from "documents" where "owner" = $1
				) as "s"
				group by "review_status"
				`,
				principal.ProfileId,
			)
			if err != nil {
				return err
			}
			d.Submissions = zeroFilled(c, domain.ReviewStatuses())
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return domain.Dashboard{}, xe.Wrap(err)
	}
	return d, nil
}
