package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/leadline/pkg/domain/profile/db"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

const profileColumns = `"id", "email", "full_name", "role", "active", "created_at", "updated_at"`

type pgProfile struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgProfile{pool: pool}
}

func (m *pgProfile) Register(ctx context.Context, spec domain.ProfileSpec) (domain.Profile, error) {
	ps, err := scanner.New[domain.Profile]().QueryAll(
		ctx, m.pool,
		`
		insert into "profiles" ("email", "full_name", "role", "password_hash")
		values ($1, $2, $3, $4)
		returning `+profileColumns,
		spec.Email, spec.FullName, spec.Role, spec.PasswordHash,
	)
	if err != nil {
		return domain.Profile{}, xe.Wrap(pgerrors.Translate(err))
	}
	return ps[0], nil
}

func (m *pgProfile) Get(ctx context.Context, ids []string) (map[string]domain.Profile, error) {
	ps, err := scanner.New[domain.Profile]().QueryAll(
		ctx, m.pool,
		`select `+profileColumns+` from "profiles" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(ps, func(p domain.Profile) string { return p.Id }), nil
}

func (m *pgProfile) Find(ctx context.Context, query domain.ProfileQuery) ([]domain.Profile, error) {
	w := pgi.Where{}
	pgi.Any(&w, `"role"`, query.Roles)
	if query.Active != nil {
		w.Add(`"active" = %s`, *query.Active)
	}
	ps, err := scanner.New[domain.Profile]().QueryAll(
		ctx, m.pool,
		`select `+profileColumns+` from "profiles" `+w.String()+` order by "email"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return ps, nil
}

func (m *pgProfile) Update(ctx context.Context, id string, change domain.ProfileChange) (domain.Profile, error) {
	ps, err := scanner.New[domain.Profile]().QueryAll(
		ctx, m.pool,
		`
		update "profiles" set
			"full_name" = coalesce($2, "full_name"),
			"role" = coalesce($3, "role"),
			"active" = coalesce($4, "active"),
			"updated_at" = now()
		where "id" = $1
		returning `+profileColumns,
		id, change.FullName, change.Role, change.Active,
	)
	if err != nil {
		return domain.Profile{}, xe.Wrap(pgerrors.Translate(err))
	}
	if len(ps) == 0 {
		return domain.Profile{}, xe.Wrap(pgerrors.Missing{Table: "profiles", Identity: id})
	}
	return ps[0], nil
}

func (m *pgProfile) SetPassword(ctx context.Context, id string, hash []byte) error {
	ctag, err := m.pool.Exec(
		ctx,
		`update "profiles" set "password_hash" = $2, "updated_at" = now() where "id" = $1`,
		id, hash,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "profiles", Identity: id})
	}
	return nil
}

func (m *pgProfile) Credential(ctx context.Context, email string) (domain.Credential, error) {
	rows, err := m.pool.Query(
		ctx,
		`select `+profileColumns+`, "password_hash" from "profiles" where lower("email") = lower($1)`,
		email,
	)
	if err != nil {
		return domain.Credential{}, xe.Wrap(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Credential{}, xe.Wrap(err)
		}
		return domain.Credential{}, xe.Wrap(pgerrors.Missing{Table: "profiles", Identity: email})
	}
	c := domain.Credential{}
	if err := rows.Scan(
		&c.Id, &c.Email, &c.FullName, &c.Role, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		&c.PasswordHash,
	); err != nil {
		return domain.Credential{}, xe.Wrap(err)
	}
	return c, nil
}
