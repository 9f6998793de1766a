package db

import (
	"context"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	Create(ctx context.Context, spec domain.IncentiveSpec) (domain.Incentive, error)

	// Get returns incentives by ids. Missing ids are not in the result.
	Get(ctx context.Context, ids []string) (map[string]domain.Incentive, error)

	Find(ctx context.Context, query domain.IncentiveQuery) ([]domain.Incentive, error)

	// SetStatus moves the incentive to the status.
	//
	// It returns ErrInvalidStateChanging when the incentive cannot be moved there.
	SetStatus(ctx context.Context, id string, status domain.IncentiveStatus) (domain.Incentive, error)

	// Summary totals incentives of the profile per status.
	Summary(ctx context.Context, profileId string) (domain.IncentiveSummary, error)
}
