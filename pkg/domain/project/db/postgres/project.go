package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/leadline/pkg/domain/project/db"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

const projectColumns = `
	"id", "client_id", "name", "description", "status", "value_cents",
	"start_date", "end_date", "owner", "created_at", "updated_at"`

type pgProject struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgProject{pool: pool}
}

func (m *pgProject) Create(ctx context.Context, spec domain.ProjectSpec) (domain.Project, error) {
	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, m.pool,
		`
		insert into "projects"
			("client_id", "name", "description", "value_cents", "start_date", "end_date", "owner")
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+projectColumns,
		spec.ClientId, spec.Name, spec.Description, spec.ValueCents,
		spec.StartDate, spec.EndDate, spec.Owner,
	)
	if err != nil {
		return domain.Project{}, xe.Wrap(pgerrors.Translate(err))
	}
	return ps[0], nil
}

func (m *pgProject) Get(ctx context.Context, ids []string) (map[string]domain.Project, error) {
	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, m.pool,
		`select `+projectColumns+` from "projects" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(ps, func(p domain.Project) string { return p.Id }), nil
}

func (m *pgProject) Find(ctx context.Context, query domain.ProjectQuery) ([]domain.Project, error) {
	w := pgi.Where{}
	if len(query.ClientId) != 0 {
		w.Add(`"client_id" = any(%s::uuid[])`, query.ClientId)
	}
	if len(query.Owner) != 0 {
		w.Add(`"owner" = any(%s::uuid[])`, query.Owner)
	}
	pgi.Any(&w, `"status"`, query.Status)

	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, m.pool,
		`select `+projectColumns+` from "projects" `+w.String()+` order by "created_at" desc, "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return ps, nil
}

func lockProject(ctx context.Context, tx kpool.Tx, id string) (domain.Project, error) {
	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, tx,
		`select `+projectColumns+` from "projects" where "id" = $1 for update`,
		id,
	)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	if len(ps) == 0 {
		return domain.Project{}, xe.Wrap(pgerrors.Missing{Table: "projects", Identity: id})
	}
	return ps[0], nil
}

func (m *pgProject) Update(ctx context.Context, id string, change domain.ProjectChange) (domain.Project, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	current, err := lockProject(ctx, tx, id)
	if err != nil {
		return domain.Project{}, err
	}
	next, err := change.Apply(current)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}

	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, tx,
		`
		update "projects" set
			"name" = $2, "description" = $3, "value_cents" = $4,
			"start_date" = $5, "end_date" = $6, "updated_at" = now()
		where "id" = $1
		returning `+projectColumns,
		id, next.Name, next.Description, next.ValueCents, next.StartDate, next.EndDate,
	)
	if err != nil {
		return domain.Project{}, xe.Wrap(pgerrors.Translate(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	return ps[0], nil
}

func (m *pgProject) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	current, err := lockProject(ctx, tx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanChangeTo(status) {
		return domain.Project{}, xe.Wrap(domain.NewErrInvalidProjectStateChanging(current.Status, status))
	}

	ps, err := scanner.New[domain.Project]().QueryAll(
		ctx, tx,
		`update "projects" set "status" = $2, "updated_at" = now() where "id" = $1
		returning `+projectColumns,
		id, status,
	)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	return ps[0], nil
}

func (m *pgProject) Delete(ctx context.Context, id string) error {
	ctag, err := m.pool.Exec(ctx, `delete from "projects" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "projects", Identity: id})
	}
	return nil
}
