package db

import (
	"context"
	"time"

	"github.com/opst/leadline/pkg/domain"
)

// Interface of appointment requests.
//
// Each change of requests records an AppointmentEvent in the same transaction.
type Interface interface {
	// Request creates a pending request.
	Request(ctx context.Context, spec domain.AppointmentRequestSpec) (domain.AppointmentRequest, error)

	// Get returns requests by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.AppointmentRequest, error)

	// Find returns requests matching the query, the earliest requested start first.
	Find(ctx context.Context, query domain.AppointmentRequestQuery) ([]domain.AppointmentRequest, error)

	// Approve approves the pending request and creates a client appointment for it.
	//
	// It returns ErrInvalidStateChanging when the request is not pending,
	// or ErrMissing when the request is not found.
	Approve(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, domain.ClientAppointment, error)

	// Reject rejects the pending request.
	//
	// It returns ErrInvalidStateChanging when the request is not pending.
	Reject(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error)

	// Cancel cancels the pending request.
	//
	// It returns ErrInvalidStateChanging when the request is not pending.
	Cancel(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error)

	// Expire cancels pending requests whose start is not after now,
	// and returns ids of them.
	Expire(ctx context.Context, now time.Time) ([]string, error)

	ClientAppointments(ctx context.Context, query domain.ClientAppointmentQuery) ([]domain.ClientAppointment, error)

	// PopEvent takes the oldest undelivered event and passes it to the handler.
	//
	// When the handler returns nil, the event is marked delivered.
	// Otherwise, the event is kept undelivered and the error is returned.
	//
	// Events locked by other transactions are skipped.
	//
	// It returns true when an event has been passed to the handler.
	PopEvent(ctx context.Context, handler func(domain.AppointmentEvent) error) (bool, error)
}
