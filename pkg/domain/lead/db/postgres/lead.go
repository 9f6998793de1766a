package postgres

import (
	"context"
	"fmt"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/leadline/pkg/domain/lead/db"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

type pgLead struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgLead{pool: pool}
}

func (m *pgLead) Create(ctx context.Context, spec domain.LeadSpec) (domain.Lead, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	lead, err := pgi.InsertLead(ctx, tx, spec)
	if err != nil {
		return domain.Lead{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	return lead, nil
}

func (m *pgLead) Get(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, m.pool,
		`select `+pgi.LeadColumns+` from "leads" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(leads, func(l domain.Lead) string { return l.Id }), nil
}

func (m *pgLead) Find(ctx context.Context, query domain.LeadQuery) ([]domain.Lead, error) {
	w := pgi.Where{}
	pgi.Any(&w, `"status"`, query.Status)
	pgi.Any(&w, `"review_status"`, query.ReviewStatus)
	if len(query.AssignedTo) != 0 {
		w.Add(`"assigned_to" = any(%s::uuid[])`, query.AssignedTo)
	}
	if len(query.CreatedBy) != 0 {
		w.Add(`"created_by" = any(%s::uuid[])`, query.CreatedBy)
	}
	if query.UpdatedSince != nil {
		w.Add(`%s <= "updated_at"`, *query.UpdatedSince)
	}
	if query.UpdatedUntil != nil {
		w.Add(`"updated_at" < %s`, *query.UpdatedUntil)
	}
	if query.VisibleTo != nil {
		w.Add(`%s in ("assigned_to", "created_by")`, *query.VisibleTo)
	}

	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, m.pool,
		`select `+pgi.LeadColumns+` from "leads" `+w.String()+` order by "updated_at" desc, "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return leads, nil
}

func (m *pgLead) Update(ctx context.Context, id string, change domain.LeadChange) (domain.Lead, error) {
	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, m.pool,
		`
		update "leads" set
			"name" = coalesce($2, "name"),
			"email" = coalesce($3, "email"),
			"phone" = coalesce($4, "phone"),
			"company" = coalesce($5, "company"),
			"source" = coalesce($6, "source"),
			"notes" = coalesce($7, "notes"),
			"updated_at" = now()
		where "id" = $1
		returning `+pgi.LeadColumns,
		id, change.Name, change.Email, change.Phone, change.Company, change.Source, change.Notes,
	)
	if err != nil {
		return domain.Lead{}, xe.Wrap(pgerrors.Translate(err))
	}
	if len(leads) == 0 {
		return domain.Lead{}, xe.Wrap(pgerrors.Missing{Table: "leads", Identity: id})
	}
	return leads[0], nil
}

// lockLead gets the lead and locks it until the end of tx.
func lockLead(ctx context.Context, tx kpool.Tx, id string) (domain.Lead, error) {
	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, tx,
		`select `+pgi.LeadColumns+` from "leads" where "id" = $1 for update`,
		id,
	)
	if err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	if len(leads) == 0 {
		return domain.Lead{}, xe.Wrap(pgerrors.Missing{Table: "leads", Identity: id})
	}
	return leads[0], nil
}

func (m *pgLead) SetStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error) {
	if status == domain.LeadConverted {
		return domain.Lead{}, xe.Wrap(fmt.Errorf(
			"%w: leads are converted only by conversion", domerr.ErrInvalidStateChanging,
		))
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	current, err := lockLead(ctx, tx, id)
	if err != nil {
		return domain.Lead{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanChangeTo(status) {
		return domain.Lead{}, xe.Wrap(domain.NewErrInvalidLeadStateChanging(current.Status, status))
	}

	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, tx,
		`update "leads" set "status" = $2, "updated_at" = now() where "id" = $1
		returning `+pgi.LeadColumns,
		id, status,
	)
	if err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Lead{}, xe.Wrap(err)
	}
	return leads[0], nil
}

func (m *pgLead) Assign(ctx context.Context, id string, profileId *string) (domain.Lead, error) {
	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, m.pool,
		`update "leads" set "assigned_to" = $2, "updated_at" = now() where "id" = $1
		returning `+pgi.LeadColumns,
		id, profileId,
	)
	if err != nil {
		return domain.Lead{}, xe.Wrap(pgerrors.Translate(err))
	}
	if len(leads) == 0 {
		return domain.Lead{}, xe.Wrap(pgerrors.Missing{Table: "leads", Identity: id})
	}
	return leads[0], nil
}

func (m *pgLead) Delete(ctx context.Context, id string) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		`delete from "reviews" where "entity_type" = $1 and "entity_id" = $2`,
		domain.EntityLead, id,
	); err != nil {
		return xe.Wrap(err)
	}
	ctag, err := tx.Exec(ctx, `delete from "leads" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "leads", Identity: id})
	}
	return xe.Wrap(tx.Commit(ctx))
}

func (m *pgLead) Convert(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Lead{}, domain.Client{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	lead, err := lockLead(ctx, tx, id)
	if err != nil {
		return domain.Lead{}, domain.Client{}, err
	}
	if !lead.Status.CanChangeTo(domain.LeadConverted) {
		return domain.Lead{}, domain.Client{}, xe.Wrap(
			domain.NewErrInvalidLeadStateChanging(lead.Status, domain.LeadConverted),
		)
	}
	if lead.ReviewStatus != domain.ReviewApproved {
		return domain.Lead{}, domain.Client{}, xe.Wrap(fmt.Errorf(
			"%w: lead %s is %s in review, not approved",
			domerr.ErrInvalidStateChanging, id, lead.ReviewStatus,
		))
	}

	client, err := pgi.InsertClient(ctx, tx, domain.ClientFromLead(lead, by))
	if err != nil {
		return domain.Lead{}, domain.Client{}, err
	}

	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, tx,
		`update "leads" set "status" = $2, "updated_at" = now() where "id" = $1
		returning `+pgi.LeadColumns,
		id, domain.LeadConverted,
	)
	if err != nil {
		return domain.Lead{}, domain.Client{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Lead{}, domain.Client{}, xe.Wrap(err)
	}
	return leads[0], client, nil
}
