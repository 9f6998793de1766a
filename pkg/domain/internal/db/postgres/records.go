package postgres

import (
	"context"
	"encoding/json"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	xe "github.com/opst/leadline/pkg/errors"
)

// column lists in the order of the fields of the domain types, to be scanned by scanner.

const LeadColumns = `
	"id", "name", "email", "phone", "company", "source", "status", "notes",
	"assigned_to", "created_by", "review_status", "created_at", "updated_at"`

const ClientColumns = `
	"id", "lead_id", "name", "email", "phone", "company", "owner",
	"review_status", "created_at", "updated_at"`

const RequestColumns = `
	"id", "client_id", "requested_by", "requested_start", "requested_end", "purpose",
	"status", "decided_by", "decided_at", "decision_note", "created_at", "updated_at"`

const ClientAppointmentColumns = `
	"id", "request_id", "client_id", "host", "starts_at", "ends_at", "purpose", "created_at"`

const ReviewColumns = `
	"id", "entity_type", "entity_id", "submitted_by", "status",
	"reviewed_by", "reviewed_at", "note", "created_at"`

const RawDataColumns = `
	"id", "source", "payload", "submitted_by", "review_status", "lead_id", "created_at"`

// InsertLead creates a lead. When the lead needs review, a review is queued, too.
func InsertLead(ctx context.Context, conn kpool.Queryer, spec domain.LeadSpec) (domain.Lead, error) {
	if spec.ReviewStatus == "" {
		spec.ReviewStatus = domain.ReviewPending
	}
	leads, err := scanner.New[domain.Lead]().QueryAll(
		ctx, conn,
		`
		insert into "leads"
			("name", "email", "phone", "company", "source", "notes",
			 "assigned_to", "created_by", "review_status")
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		returning `+LeadColumns,
		spec.Name, spec.Email, spec.Phone, spec.Company, spec.Source, spec.Notes,
		spec.AssignedTo, spec.CreatedBy, spec.ReviewStatus,
	)
	if err != nil {
		return domain.Lead{}, xe.Wrap(pgerrors.Translate(err))
	}
	lead := leads[0]
	if lead.ReviewStatus == domain.ReviewPending {
		if _, err := InsertReview(ctx, conn, domain.ReviewSpec{
			EntityType: domain.EntityLead, EntityId: lead.Id, SubmittedBy: spec.CreatedBy,
		}); err != nil {
			return domain.Lead{}, err
		}
	}
	return lead, nil
}

// InsertClient creates a client. When the client needs review, a review is queued, too.
func InsertClient(ctx context.Context, conn kpool.Queryer, spec domain.ClientSpec) (domain.Client, error) {
	if spec.ReviewStatus == "" {
		spec.ReviewStatus = domain.ReviewPending
	}
	clients, err := scanner.New[domain.Client]().QueryAll(
		ctx, conn,
		`
		insert into "clients"
			("lead_id", "name", "email", "phone", "company", "owner", "review_status")
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+ClientColumns,
		spec.LeadId, spec.Name, spec.Email, spec.Phone, spec.Company, spec.Owner, spec.ReviewStatus,
	)
	if err != nil {
		return domain.Client{}, xe.Wrap(pgerrors.Translate(err))
	}
	client := clients[0]
	if client.ReviewStatus == domain.ReviewPending {
		if _, err := InsertReview(ctx, conn, domain.ReviewSpec{
			EntityType: domain.EntityClient, EntityId: client.Id, SubmittedBy: spec.Owner,
		}); err != nil {
			return domain.Client{}, err
		}
	}
	return client, nil
}

// InsertReview queues a pending review.
//
// If the entity already has a pending review, it returns ErrConflict.
func InsertReview(ctx context.Context, conn kpool.Queryer, spec domain.ReviewSpec) (domain.Review, error) {
	reviews, err := scanner.New[domain.Review]().QueryAll(
		ctx, conn,
		`
		insert into "reviews" ("entity_type", "entity_id", "submitted_by")
		values ($1, $2, $3)
		returning `+ReviewColumns,
		spec.EntityType, spec.EntityId, spec.SubmittedBy,
	)
	if err != nil {
		return domain.Review{}, xe.Wrap(pgerrors.Translate(err))
	}
	return reviews[0], nil
}

// SetReviewStatus updates "review_status" of the entity.
//
// If the entity is missing, it returns Missing.
func SetReviewStatus(
	ctx context.Context, conn kpool.Queryer,
	entity domain.EntityType, entityId string, status domain.ReviewStatus,
) error {
	table := entity.Table()
	if table == "" {
		return xe.Wrap(domain.ErrUnknownEntityType)
	}
	// table names come from the closed set above.
	ctag, err := conn.Exec(
		ctx,
		`update "`+table+`" set "review_status" = $1 where "id" = $2`,
		status, entityId,
	)
	if err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	if ctag.RowsAffected() == 0 {
		return xe.Wrap(pgerrors.Missing{Table: table, Identity: entityId})
	}
	return nil
}

// RecordAppointmentEvent adds an event in the outbox.
func RecordAppointmentEvent(
	ctx context.Context, conn kpool.Queryer,
	requestId string, event domain.AppointmentEventType, actor string,
) error {
	var a *string
	if actor != "" {
		a = &actor
	}
	if _, err := conn.Exec(
		ctx,
		`insert into "appointment_event" ("request_id", "event", "actor") values ($1, $2, $3)`,
		requestId, event, a,
	); err != nil {
		return xe.Wrap(pgerrors.Translate(err))
	}
	return nil
}

// Payload converts raw data payload into a parameter for jsonb.
func Payload(p map[string]string) ([]byte, error) {
	if p == nil {
		p = map[string]string{}
	}
	return json.Marshal(p)
}
