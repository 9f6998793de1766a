package store

import (
	"context"
	"errors"
	"io"

	"github.com/opst/leadline/pkg/domain"
)

// ErrMissingContent is returned when the content for the key is not in the store.
var ErrMissingContent = errors.New("document content is not found")

// Store keeps contents of documents. Records of documents are in the database.
type Store interface {
	// Put writes the content and returns where it is.
	//
	// When ctx is cancelled before the content is written up, nothing is stored.
	Put(ctx context.Context, content io.Reader) (domain.StoredContent, error)

	// Open reads the content for the key.
	//
	// It returns ErrMissingContent when the key is not in the store.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes the content for the key. Removing missing keys is not an error.
	Remove(ctx context.Context, key string) error
}
