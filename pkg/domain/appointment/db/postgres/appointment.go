package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/appointment/db"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

const appointmentColumns = `
	"id", "title", "lead_id", "client_id", "owner", "starts_at", "ends_at",
	"location", "notes", "status", "created_at", "updated_at"`

type pgAppointment struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgAppointment{pool: pool}
}

func (m *pgAppointment) Create(ctx context.Context, spec domain.AppointmentSpec) (domain.Appointment, error) {
	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, m.pool,
		`
		insert into "appointments"
			("title", "lead_id", "client_id", "owner", "starts_at", "ends_at", "location", "notes")
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning `+appointmentColumns,
		spec.Title, spec.LeadId, spec.ClientId, spec.Owner,
		spec.StartsAt, spec.EndsAt, spec.Location, spec.Notes,
	)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(pgerrors.Translate(err))
	}
	return as[0], nil
}

func (m *pgAppointment) Get(ctx context.Context, ids []string) (map[string]domain.Appointment, error) {
	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, m.pool,
		`select `+appointmentColumns+` from "appointments" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(as, func(a domain.Appointment) string { return a.Id }), nil
}

func (m *pgAppointment) Find(ctx context.Context, query domain.AppointmentQuery) ([]domain.Appointment, error) {
	w := pgi.Where{}
	if len(query.Owner) != 0 {
		w.Add(`"owner" = any(%s::uuid[])`, query.Owner)
	}
	pgi.Any(&w, `"status"`, query.Status)
	if query.From != nil {
		w.Add(`%s < "ends_at"`, *query.From)
	}
	if query.To != nil {
		w.Add(`"starts_at" < %s`, *query.To)
	}

	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, m.pool,
		`select `+appointmentColumns+` from "appointments" `+w.String()+` order by "starts_at", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return as, nil
}

func lockAppointment(ctx context.Context, tx kpool.Tx, id string) (domain.Appointment, error) {
	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, tx,
		`select `+appointmentColumns+` from "appointments" where "id" = $1 for update`,
		id,
	)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	if len(as) == 0 {
		return domain.Appointment{}, xe.Wrap(pgerrors.Missing{Table: "appointments", Identity: id})
	}
	return as[0], nil
}

func (m *pgAppointment) Update(ctx context.Context, id string, change domain.AppointmentChange) (domain.Appointment, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	current, err := lockAppointment(ctx, tx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	next, err := change.Apply(current)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}

	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, tx,
		`
		update "appointments" set
			"title" = $2, "starts_at" = $3, "ends_at" = $4,
			"location" = $5, "notes" = $6, "updated_at" = now()
		where "id" = $1
		returning `+appointmentColumns,
		id, next.Title, next.StartsAt, next.EndsAt, next.Location, next.Notes,
	)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(pgerrors.Translate(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	return as[0], nil
}

func (m *pgAppointment) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	current, err := lockAppointment(ctx, tx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanChangeTo(status) {
		return domain.Appointment{}, xe.Wrap(pgerrors.StateChanging{
			Table: "appointments", Identity: id,
			From: string(current.Status), To: string(status),
		})
	}

	as, err := scanner.New[domain.Appointment]().QueryAll(
		ctx, tx,
		`update "appointments" set "status" = $2, "updated_at" = now() where "id" = $1
		returning `+appointmentColumns,
		id, status,
	)
	if err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Appointment{}, xe.Wrap(err)
	}
	return as[0], nil
}

func (m *pgAppointment) Delete(ctx context.Context, id string) error {
	ctag, err := m.pool.Exec(ctx, `delete from "appointments" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: "appointments", Identity: id})
	}
	return nil
}
