package postgres

import (
	"context"
	"strings"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/leadline/pkg/domain/review/db"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

type pgReview struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgReview{pool: pool}
}

func (m *pgReview) Submit(ctx context.Context, spec domain.ReviewSpec) (domain.Review, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Review{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if err := pgi.SetReviewStatus(ctx, tx, spec.EntityType, spec.EntityId, domain.ReviewPending); err != nil {
		return domain.Review{}, err
	}
	review, err := pgi.InsertReview(ctx, tx, spec)
	if err != nil {
		return domain.Review{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Review{}, xe.Wrap(err)
	}
	return review, nil
}

func (m *pgReview) Get(ctx context.Context, ids []string) (map[string]domain.Review, error) {
	reviews, err := scanner.New[domain.Review]().QueryAll(
		ctx, m.pool,
		`select `+pgi.ReviewColumns+` from "reviews" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(reviews, func(r domain.Review) string { return r.Id }), nil
}

func (m *pgReview) Find(ctx context.Context, query domain.ReviewQuery) ([]domain.Review, error) {
	w := pgi.Where{}
	pgi.Any(&w, `"status"`, query.Status)
	pgi.Any(&w, `"entity_type"`, query.EntityType)
	if len(query.SubmittedBy) != 0 {
		w.Add(`"submitted_by" = any(%s::uuid[])`, query.SubmittedBy)
	}

	reviews, err := scanner.New[domain.Review]().QueryAll(
		ctx, m.pool,
		`select `+pgi.ReviewColumns+` from "reviews" `+w.String()+` order by "created_at", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return reviews, nil
}

func (m *pgReview) Decide(ctx context.Context, decision domain.ReviewDecision) ([]domain.ReviewOutcome, error) {
	if err := decision.Validate(); err != nil {
		return nil, xe.Wrap(err)
	}
	ids := utils.Unique(decision.ReviewIds)

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	locked, err := scanner.New[domain.Review]().QueryAll(
		ctx, tx,
		`select `+pgi.ReviewColumns+` from "reviews" where "id" = any($1) for update`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	byId := utils.ToMap(locked, func(r domain.Review) string { return r.Id })
	missing := utils.Filter(ids, func(id string) bool {
		_, ok := byId[id]
		return !ok
	})
	if len(missing) != 0 {
		return nil, xe.Wrap(pgerrors.Missing{Table: "reviews", Identity: strings.Join(missing, ", ")})
	}
	if _, decided := utils.Group(locked, func(r domain.Review) bool { return r.Status == domain.ReviewPending }); len(decided) != 0 {
		return nil, xe.Wrap(domain.NewErrReviewNotPending(decided[0]))
	}

	outcomes := make([]domain.ReviewOutcome, 0, len(ids))
	for _, id := range ids {
		decided, err := scanner.New[domain.Review]().QueryAll(
			ctx, tx,
			`
			update "reviews" set
				"status" = $2, "reviewed_by" = $3, "reviewed_at" = now(), "note" = $4
			where "id" = $1
			returning `+pgi.ReviewColumns,
			id, decision.Verdict, decision.ReviewedBy, decision.Note,
		)
		if err != nil {
			return nil, xe.Wrap(pgerrors.Translate(err))
		}
		r := decided[0]
		if err := pgi.SetReviewStatus(ctx, tx, r.EntityType, r.EntityId, decision.Verdict); err != nil {
			return nil, err
		}

		outcome := domain.ReviewOutcome{Review: r}
		if r.EntityType == domain.EntityRawData && decision.Verdict == domain.ReviewApproved {
			leadId, err := leadFromRawData(ctx, tx, r.EntityId, decision.ReviewedBy)
			if err != nil {
				return nil, err
			}
			outcome.CreatedLeadId = leadId
		}
		outcomes = append(outcomes, outcome)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	return outcomes, nil
}

// leadFromRawData creates the lead from approved raw data, and links them.
//
// When the raw data has been linked to a lead already, it returns nil.
func leadFromRawData(ctx context.Context, tx kpool.Tx, rawDataId string, approvedBy string) (*string, error) {
	raws, err := scanner.New[domain.RawData]().QueryAll(
		ctx, tx,
		`select `+pgi.RawDataColumns+` from "raw_data" where "id" = $1 for update`,
		rawDataId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	if len(raws) == 0 {
		return nil, xe.Wrap(pgerrors.Missing{Table: "raw_data", Identity: rawDataId})
	}
	raw := raws[0]
	if raw.LeadId != nil {
		return nil, nil
	}

	lead, err := pgi.InsertLead(ctx, tx, raw.LeadSpec(approvedBy))
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(
		ctx, `update "raw_data" set "lead_id" = $2 where "id" = $1`, raw.Id, lead.Id,
	); err != nil {
		return nil, xe.Wrap(err)
	}
	return &lead.Id, nil
}
