package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Create creates a lead.
	//
	// When spec.ReviewStatus is pending, a review of the lead is queued in the same transaction.
	Create(ctx context.Context, spec domain.LeadSpec) (domain.Lead, error)

	// Get returns leads by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Lead, error)

	// Find returns leads matching the query, the most recently updated first.
	Find(ctx context.Context, query domain.LeadQuery) ([]domain.Lead, error)

	// Update changes contact fields of the lead.
	//
	// It returns ErrMissing when the lead is not found.
	Update(ctx context.Context, id string, change domain.LeadChange) (domain.Lead, error)

	// SetStatus moves the lead to the status.
	//
	// It returns ErrInvalidStateChanging when the lead in current status cannot be moved there.
	// Use Convert to make the lead converted.
	SetStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error)

	// Assign sets (or, for nil, clears) the assignee of the lead.
	Assign(ctx context.Context, id string, profileId *string) (domain.Lead, error)

	// Delete removes the lead.
	//
	// It returns ErrConflict when the lead has been converted into a client.
	Delete(ctx context.Context, id string) error

	// Convert makes the lead converted and creates a client owned by `by`, atomically.
	//
	// The lead should be qualified and approved in review.
	// Otherwise, it returns ErrInvalidStateChanging.
	Convert(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error)
}
