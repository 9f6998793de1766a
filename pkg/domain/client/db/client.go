package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Create creates a client.
	//
	// When spec.ReviewStatus is pending, a review of the client is queued in the same transaction.
	Create(ctx context.Context, spec domain.ClientSpec) (domain.Client, error)

	// Get returns clients by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Client, error)

	Find(ctx context.Context, query domain.ClientQuery) ([]domain.Client, error)

	Update(ctx context.Context, id string, change domain.ClientChange) (domain.Client, error)

	// Delete removes the client.
	//
	// It returns ErrConflict when the client has projects or appointment requests.
	Delete(ctx context.Context, id string) error
}
