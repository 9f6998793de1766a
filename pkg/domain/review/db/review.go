package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Submit queues a review of the entity and makes the entity pending in review.
	//
	// It returns ErrMissing when the entity is not found,
	// and ErrConflict when the entity already has a pending review.
	Submit(ctx context.Context, spec domain.ReviewSpec) (domain.Review, error)

	// Get returns reviews by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Review, error)

	// Find returns reviews matching the query, the oldest first.
	Find(ctx context.Context, query domain.ReviewQuery) ([]domain.Review, error)

	// Decide approves or rejects all reviews in the decision, atomically.
	//
	// The review status of each entity is updated with the verdict.
	// Approving a raw data creates a lead from it.
	//
	// When any of reviews is missing, it returns ErrMissing.
	// When any of reviews is not pending, it returns ErrInvalidStateChanging.
	// In both cases, nothing is changed.
	Decide(ctx context.Context, decision domain.ReviewDecision) ([]domain.ReviewOutcome, error)
}
