package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/leadline/pkg/domain/rawdata/db"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

type pgRawData struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgRawData{pool: pool}
}

func (m *pgRawData) Submit(ctx context.Context, specs []domain.RawDataSpec) ([]domain.RawData, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	ret := make([]domain.RawData, 0, len(specs))
	for _, spec := range specs {
		payload, err := pgi.Payload(spec.Payload)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		raws, err := scanner.New[domain.RawData]().QueryAll(
			ctx, tx,
			`
			insert into "raw_data" ("source", "payload", "submitted_by", "review_status")
			values ($1, $2::jsonb, $3, $4)
			returning `+pgi.RawDataColumns,
			spec.Source, string(payload), spec.SubmittedBy, domain.ReviewPending,
		)
		if err != nil {
			return nil, xe.Wrap(pgerrors.Translate(err))
		}
		raw := raws[0]
		if _, err := pgi.InsertReview(ctx, tx, domain.ReviewSpec{
			EntityType: domain.EntityRawData, EntityId: raw.Id, SubmittedBy: raw.SubmittedBy,
		}); err != nil {
			return nil, err
		}
		ret = append(ret, raw)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	return ret, nil
}

func (m *pgRawData) Get(ctx context.Context, ids []string) (map[string]domain.RawData, error) {
	raws, err := scanner.New[domain.RawData]().QueryAll(
		ctx, m.pool,
		`select `+pgi.RawDataColumns+` from "raw_data" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(raws, func(r domain.RawData) string { return r.Id }), nil
}

func (m *pgRawData) Find(ctx context.Context, query domain.RawDataQuery) ([]domain.RawData, error) {
	w := pgi.Where{}
	if len(query.SubmittedBy) != 0 {
		w.Add(`"submitted_by" = any(%s::uuid[])`, query.SubmittedBy)
	}
	pgi.Any(&w, `"review_status"`, query.ReviewStatus)

	raws, err := scanner.New[domain.RawData]().QueryAll(
		ctx, m.pool,
		`select `+pgi.RawDataColumns+` from "raw_data" `+w.String()+` order by "created_at", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return raws, nil
}

func (m *pgRawData) Delete(ctx context.Context, id string) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	statuses, err := scanner.New[domain.ReviewStatus]().QueryAll(
		ctx, tx,
		`select "review_status" from "raw_data" where "id" = $1 for update`,
		id,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if len(statuses) == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "raw_data", Identity: id})
	}
	if statuses[0] != domain.ReviewPending {
		return xe.Wrap(pgerrors.StateChanging{
			Table: "raw_data", Identity: id, From: string(statuses[0]), To: "deleted",
		})
	}

	if _, err := tx.Exec(
		ctx,
		`delete from "reviews" where "entity_type" = $1 and "entity_id" = $2`,
		domain.EntityRawData, id,
	); err != nil {
		return xe.Wrap(err)
	}
	if _, err := tx.Exec(ctx, `delete from "raw_data" where "id" = $1`, id); err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
