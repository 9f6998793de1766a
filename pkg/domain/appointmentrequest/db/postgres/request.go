package postgres

import (
	"context"
	"time"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

type pgRequest struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgRequest{pool: pool}
}

func (m *pgRequest) Request(ctx context.Context, spec domain.AppointmentRequestSpec) (domain.AppointmentRequest, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	reqs, err := scanner.New[domain.AppointmentRequest]().QueryAll(
		ctx, tx,
		`
		insert into "appointment_requests"
			("client_id", "requested_by", "requested_start", "requested_end", "purpose")
		values ($1, $2, $3, $4, $5)
		returning `+pgi.RequestColumns,
		spec.ClientId, spec.RequestedBy, spec.RequestedStart, spec.RequestedEnd, spec.Purpose,
	)
	if err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(pgerrors.Translate(err))
	}
	req := reqs[0]
	if err := pgi.RecordAppointmentEvent(ctx, tx, req.Id, domain.EventRequested, spec.RequestedBy); err != nil {
		return domain.AppointmentRequest{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(err)
	}
	return req, nil
}

func getRequests(ctx context.Context, q kpool.Queryer, ids []string) (map[string]domain.AppointmentRequest, error) {
	reqs, err := scanner.New[domain.AppointmentRequest]().QueryAll(
		ctx, q,
		`select `+pgi.RequestColumns+` from "appointment_requests" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(reqs, func(r domain.AppointmentRequest) string { return r.Id }), nil
}

func (m *pgRequest) Get(ctx context.Context, ids []string) (map[string]domain.AppointmentRequest, error) {
	return getRequests(ctx, m.pool, ids)
}

func (m *pgRequest) Find(ctx context.Context, query domain.AppointmentRequestQuery) ([]domain.AppointmentRequest, error) {
	w := pgi.Where{}
	pgi.Any(&w, `"status"`, query.Status)
	if len(query.RequestedBy) != 0 {
		w.Add(`"requested_by" = any(%s::uuid[])`, query.RequestedBy)
	}
	if len(query.ClientId) != 0 {
		w.Add(`"client_id" = any(%s::uuid[])`, query.ClientId)
	}

	reqs, err := scanner.New[domain.AppointmentRequest]().QueryAll(
		ctx, m.pool,
		`select `+pgi.RequestColumns+` from "appointment_requests" `+w.String()+
			` order by "requested_start", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return reqs, nil
}

func getClientAppointment(ctx context.Context, q kpool.Queryer, requestId string) (*domain.ClientAppointment, error) {
	cas, err := scanner.New[domain.ClientAppointment]().QueryAll(
		ctx, q,
		`select `+pgi.ClientAppointmentColumns+` from "client_appointments" where "request_id" = $1`,
		requestId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	if len(cas) == 0 {
		return nil, nil
	}
	return &cas[0], nil
}

func (m *pgRequest) Approve(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, domain.ClientAppointment, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var created string
	if err := tx.QueryRow(
		ctx,
		`select "approve_appointment_request"($1, $2, $3)::text`,
		decision.RequestId, decision.By, decision.Note,
	).Scan(&created); err != nil {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, xe.Wrap(pgerrors.Translate(err))
	}

	reqs, err := getRequests(ctx, tx, []string{decision.RequestId})
	if err != nil {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, err
	}
	ca, err := getClientAppointment(ctx, tx, decision.RequestId)
	if err != nil {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, err
	}
	if ca == nil || ca.Id != created {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, xe.Wrap(pgerrors.Missing{
			Table: "client_appointments", Identity: created,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AppointmentRequest{}, domain.ClientAppointment{}, xe.Wrap(err)
	}
	return reqs[decision.RequestId], *ca, nil
}

// close moves the pending request into the closing status and records the event.
func (m *pgRequest) close(
	ctx context.Context,
	decision domain.Decision,
	status domain.AppointmentRequestStatus,
	event domain.AppointmentEventType,
) (domain.AppointmentRequest, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	reqs, err := scanner.New[domain.AppointmentRequest]().QueryAll(
		ctx, tx,
		`select `+pgi.RequestColumns+` from "appointment_requests" where "id" = $1 for update`,
		decision.RequestId,
	)
	if err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(err)
	}
	if len(reqs) == 0 {
		return domain.AppointmentRequest{}, xe.Wrap(pgerrors.Missing{
			Table: "appointment_requests", Identity: decision.RequestId,
		})
	}
	if current := reqs[0].Status; !current.CanChangeTo(status) {
		return domain.AppointmentRequest{}, xe.Wrap(pgerrors.StateChanging{
			Table: "appointment_requests", Identity: decision.RequestId,
			From: string(current), To: string(status),
		})
	}

	reqs, err = scanner.New[domain.AppointmentRequest]().QueryAll(
		ctx, tx,
		`
		update "appointment_requests" set
			"status" = $2, "decided_by" = $3, "decided_at" = now(),
			"decision_note" = $4, "updated_at" = now()
		where "id" = $1
		returning `+pgi.RequestColumns,
		decision.RequestId, status, decision.By, decision.Note,
	)
	if err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(pgerrors.Translate(err))
	}
	if err := pgi.RecordAppointmentEvent(ctx, tx, decision.RequestId, event, decision.By); err != nil {
		return domain.AppointmentRequest{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.AppointmentRequest{}, xe.Wrap(err)
	}
	return reqs[0], nil
}

func (m *pgRequest) Reject(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error) {
	return m.close(ctx, decision, domain.RequestRejected, domain.EventRejected)
}

func (m *pgRequest) Cancel(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error) {
	return m.close(ctx, decision, domain.RequestCancelled, domain.EventCancelled)
}

func (m *pgRequest) Expire(ctx context.Context, now time.Time) ([]string, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	ids, err := scanner.New[string]().QueryAll(
		ctx, tx,
		`
		with "expired" as (
			select "id" from "appointment_requests"
			where "status" = 'pending' and "requested_start" <= $1
			for update skip locked
		)
		update "appointment_requests" as "r" set
			"status" = 'cancelled', "decided_at" = now(),
			"decision_note" = $2, "updated_at" = now()
		from "expired"
		where "r"."id" = "expired"."id"
		returning "r"."id"::text
		`,
		now, domain.DecisionNoteExpired,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	for _, id := range ids {
		if err := pgi.RecordAppointmentEvent(ctx, tx, id, domain.EventCancelled, ""); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	return ids, nil
}

func (m *pgRequest) ClientAppointments(ctx context.Context, query domain.ClientAppointmentQuery) ([]domain.ClientAppointment, error) {
	w := pgi.Where{}
	if len(query.ClientId) != 0 {
		w.Add(`"client_id" = any(%s::uuid[])`, query.ClientId)
	}
	if len(query.Host) != 0 {
		w.Add(`"host" = any(%s::uuid[])`, query.Host)
	}
	if query.From != nil {
		w.Add(`%s < "ends_at"`, *query.From)
	}
	if query.To != nil {
		w.Add(`"starts_at" < %s`, *query.To)
	}

	cas, err := scanner.New[domain.ClientAppointment]().QueryAll(
		ctx, m.pool,
		`select `+pgi.ClientAppointmentColumns+` from "client_appointments" `+w.String()+
			` order by "starts_at", "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return cas, nil
}

type eventRow struct {
	Id        int64
	Event     domain.AppointmentEventType
	Actor     *string
	RequestId string
	CreatedAt time.Time
}

func (m *pgRequest) PopEvent(ctx context.Context, handler func(domain.AppointmentEvent) error) (bool, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return false, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := scanner.New[eventRow]().QueryAll(
		ctx, tx,
		`
		select "id", "event", "actor", "request_id", "created_at"
		from "appointment_event"
		where "delivered_at" is null
		order by "id"
		limit 1
		for update skip locked
		`,
	)
	if err != nil {
		return false, xe.Wrap(err)
	}
	if len(rows) == 0 {
		return false, nil
	}
	row := rows[0]

	reqs, err := getRequests(ctx, tx, []string{row.RequestId})
	if err != nil {
		return false, err
	}
	req, ok := reqs[row.RequestId]
	if !ok {
		return false, xe.Wrap(pgerrors.Missing{Table: "appointment_requests", Identity: row.RequestId})
	}

	ev := domain.AppointmentEvent{
		Id:        row.Id,
		Type:      row.Event,
		Request:   req,
		CreatedAt: row.CreatedAt,
	}
	if row.Actor != nil {
		ev.Actor = *row.Actor
	}
	if row.Event == domain.EventApproved {
		ca, err := getClientAppointment(ctx, tx, row.RequestId)
		if err != nil {
			return false, err
		}
		ev.ClientAppointment = ca
	}

	if err := handler(ev); err != nil {
		return true, err
	}

	if _, err := tx.Exec(
		ctx,
		`update "appointment_event" set "delivered_at" = now() where "id" = $1`,
		row.Id,
	); err != nil {
		return true, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return true, xe.Wrap(err)
	}
	return true, nil
}
