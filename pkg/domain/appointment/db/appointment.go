package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	Create(ctx context.Context, spec domain.AppointmentSpec) (domain.Appointment, error)

	// Get returns appointments by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Appointment, error)

	// Find returns appointments matching the query, in order of start.
	Find(ctx context.Context, query domain.AppointmentQuery) ([]domain.Appointment, error)

	Update(ctx context.Context, id string, change domain.AppointmentChange) (domain.Appointment, error)

	// SetStatus moves the appointment to the status.
	//
	// It returns ErrInvalidStateChanging when the appointment is not scheduled.
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error)

	Delete(ctx context.Context, id string) error
}
