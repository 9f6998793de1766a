package db

import "context"

// SchemaInterface is the version of the database schema.
type SchemaInterface interface {
	// Upgrade applies versions in the schema repository newer than the database.
	Upgrade(ctx context.Context) error

	// Version returns the version of the schema in the database.
	//
	// 0 means that no versions have been applied.
	Version(ctx context.Context) (int, error)

	// Context returns a context which is cancelled when the schema in the
	// database becomes older than the schema repository.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
