package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	kdb "github.com/opst/leadline/pkg/domain/incentive/db"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

const incentiveColumns = `
	"id", "profile_id", "amount_cents", "reason", "period", "status",
	"created_by", "created_at", "updated_at"`

type pgIncentive struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgIncentive{pool: pool}
}

func (m *pgIncentive) Create(ctx context.Context, spec domain.IncentiveSpec) (domain.Incentive, error) {
	is, err := scanner.New[domain.Incentive]().QueryAll(
		ctx, m.pool,
		`
		insert into "incentives" ("profile_id", "amount_cents", "reason", "period", "created_by")
		values ($1, $2, $3, $4, $5)
		returning `+incentiveColumns,
		spec.ProfileId, spec.AmountCents, spec.Reason, spec.Period, spec.CreatedBy,
	)
	if err != nil {
		return domain.Incentive{}, xe.Wrap(pgerrors.Translate(err))
	}
	return is[0], nil
}

func (m *pgIncentive) Get(ctx context.Context, ids []string) (map[string]domain.Incentive, error) {
	is, err := scanner.New[domain.Incentive]().QueryAll(
		ctx, m.pool,
		`select `+incentiveColumns+` from "incentives" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(is, func(i domain.Incentive) string { return i.Id }), nil
}

func (m *pgIncentive) Find(ctx context.Context, query domain.IncentiveQuery) ([]domain.Incentive, error) {
	w := pgi.Where{}
	if len(query.ProfileId) != 0 {
		w.Add(`"profile_id" = any(%s::uuid[])`, query.ProfileId)
	}
	pgi.Any(&w, `"period"`, query.Period)
	pgi.Any(&w, `"status"`, query.Status)

	is, err := scanner.New[domain.Incentive]().QueryAll(
		ctx, m.pool,
		`select `+incentiveColumns+` from "incentives" `+w.String()+` order by "period" desc, "created_at", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return is, nil
}

func (m *pgIncentive) SetStatus(ctx context.Context, id string, status domain.IncentiveStatus) (domain.Incentive, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Incentive{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	is, err := scanner.New[domain.Incentive]().QueryAll(
		ctx, tx,
		`select `+incentiveColumns+` from "incentives" where "id" = $1 for update`,
		id,
	)
	if err != nil {
		return domain.Incentive{}, xe.Wrap(err)
	}
	if len(is) == 0 {
		return domain.Incentive{}, xe.Wrap(pgerrors.Missing{Table: "incentives", Identity: id})
	}
	current := is[0]
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanChangeTo(status) {
		return domain.Incentive{}, xe.Wrap(domain.NewErrInvalidIncentiveStateChanging(current.Status, status))
	}

	is, err = scanner.New[domain.Incentive]().QueryAll(
		ctx, tx,
		`update "incentives" set "status" = $2, "updated_at" = now() where "id" = $1
		returning `+incentiveColumns,
		id, status,
	)
	if err != nil {
		return domain.Incentive{}, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Incentive{}, xe.Wrap(err)
	}
	return is[0], nil
}

type total struct {
	Status domain.IncentiveStatus
	Amount int64
}

// Totals sums incentives per status, of the profile or, when profileId is nil, of everyone.
//
// Statuses without incentives are in the result with 0.
func Totals(ctx context.Context, q kpool.Queryer, profileId *string) (map[domain.IncentiveStatus]int64, error) {
	ts, err := scanner.New[total]().QueryAll(
		ctx, q,
		`
		select "status", coalesce(sum("amount_cents"), 0)::bigint as "amount"
		from "incentives"
		where $1::uuid is null or "profile_id" = $1::uuid
		group by "status"
		`,
		profileId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	ret := map[domain.IncentiveStatus]int64{}
	for _, s := range domain.IncentiveStatuses() {
		ret[s] = 0
	}
	for _, t := range ts {
		ret[t.Status] = t.Amount
	}
	return ret, nil
}

func (m *pgIncentive) Summary(ctx context.Context, profileId string) (domain.IncentiveSummary, error) {
	ts, err := Totals(ctx, m.pool, &profileId)
	if err != nil {
		return domain.IncentiveSummary{}, err
	}
	return domain.IncentiveSummary{ProfileId: profileId, Totals: ts}, nil
}
