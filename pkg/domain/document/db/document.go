package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Register records a document whose content is stored already.
	//
	// Documents pending in review are queued in the review queue.
	Register(ctx context.Context, spec domain.DocumentSpec, content domain.StoredContent) (domain.Document, error)

	// Get returns documents by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Document, error)

	Find(ctx context.Context, query domain.DocumentQuery) ([]domain.Document, error)

	// Delete removes the document record and its review, and returns the removed one.
	//
	// The content in the store should be removed by the caller.
	Delete(ctx context.Context, id string) (domain.Document, error)
}
