package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	Create(ctx context.Context, spec domain.ProjectSpec) (domain.Project, error)

	// Get returns projects by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Project, error)

	Find(ctx context.Context, query domain.ProjectQuery) ([]domain.Project, error)

	Update(ctx context.Context, id string, change domain.ProjectChange) (domain.Project, error)

	// SetStatus moves the project to the status.
	//
	// It returns ErrInvalidStateChanging when the project cannot be moved there.
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error)

	Delete(ctx context.Context, id string) error
}
