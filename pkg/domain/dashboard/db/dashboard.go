package db

import (
	"context"
	"time"

	"github.com/opst/leadline/pkg/domain"
)

type Interface interface {
	// Summarize builds the dashboard for the principal at the time.
	Summarize(ctx context.Context, principal domain.Principal, now time.Time) (domain.Dashboard, error)
}
