package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/client/db"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

type pgClient struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgClient{pool: pool}
}

func (m *pgClient) Create(ctx context.Context, spec domain.ClientSpec) (domain.Client, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Client{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	client, err := pgi.InsertClient(ctx, tx, spec)
	if err != nil {
		return domain.Client{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Client{}, xe.Wrap(err)
	}
	return client, nil
}

func (m *pgClient) Get(ctx context.Context, ids []string) (map[string]domain.Client, error) {
	clients, err := scanner.New[domain.Client]().QueryAll(
		ctx, m.pool,
		`select `+pgi.ClientColumns+` from "clients" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(clients, func(c domain.Client) string { return c.Id }), nil
}

func (m *pgClient) Find(ctx context.Context, query domain.ClientQuery) ([]domain.Client, error) {
	w := pgi.Where{}
	if len(query.Owner) != 0 {
		w.Add(`"owner" = any(%s::uuid[])`, query.Owner)
	}
	pgi.Any(&w, `"review_status"`, query.ReviewStatus)

	clients, err := scanner.New[domain.Client]().QueryAll(
		ctx, m.pool,
		`select `+pgi.ClientColumns+` from "clients" `+w.String()+` order by "name", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return clients, nil
}

func (m *pgClient) Update(ctx context.Context, id string, change domain.ClientChange) (domain.Client, error) {
	clients, err := scanner.New[domain.Client]().QueryAll(
		ctx, m.pool,
		`
		update "clients" set
			"name" = coalesce($2, "name"),
			"email" = coalesce($3, "email"),
			"phone" = coalesce($4, "phone"),
			"company" = coalesce($5, "company"),
			"owner" = coalesce($6::uuid, "owner"),
			"updated_at" = now()
		where "id" = $1
		returning `+pgi.ClientColumns,
		id, change.Name, change.Email, change.Phone, change.Company, change.Owner,
	)
	if err != nil {
		return domain.Client{}, xe.Wrap(pgerrors.Translate(err))
	}
	if len(clients) == 0 {
		return domain.Client{}, xe.Wrap(pgerrors.Missing{Table: "clients", Identity: id})
	}
	return clients[0], nil
}

func (m *pgClient) Delete(ctx context.Context, id string) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		`delete from "reviews" where "entity_type" = $1 and "entity_id" = $2`,
		domain.EntityClient, id,
	); err != nil {
		return xe.Wrap(err)
	}
	// requests which made no appointment go along with the client. their events cascade.
	if _, err := tx.Exec(
		ctx,
		`delete from "appointment_requests" where "client_id" = $1 and "status" <> $2`,
		id, domain.RequestApproved,
	); err != nil {
		return xe.Wrap(err)
	}
	// projects and client appointments restrict deletion.
	ctag, err := tx.Exec(ctx, `delete from "clients" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "clients", Identity: id})
	}
	return xe.Wrap(tx.Commit(ctx))
}
