package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Submit stores raw data, atomically.
	//
	// Every raw data starts pending, and is queued in the review queue.
	Submit(ctx context.Context, specs []domain.RawDataSpec) ([]domain.RawData, error)

	// Get returns raw data by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.RawData, error)

	Find(ctx context.Context, query domain.RawDataQuery) ([]domain.RawData, error)

	// Delete removes the raw data and its review.
	//
	// Only raw data pending in review can be deleted.
	// Otherwise, it returns ErrInvalidStateChanging.
	Delete(ctx context.Context, id string) error
}
