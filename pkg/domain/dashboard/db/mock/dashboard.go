package mock

import (
	"context"
	"errors"
	"time"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/dashboard/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type DashboardInterface struct {
	Impl struct {
		Summarize func(ctx context.Context, principal domain.Principal, now time.Time) (domain.Dashboard, error)
	}
	Calls struct {
		Summarize dbmock.CallLog[struct {
			Principal domain.Principal
			Now       time.Time
		}]
	}
}

var _ kdb.Interface = &DashboardInterface{}

func NewDashboardInterface() *DashboardInterface {
	return &DashboardInterface{}
}

func (m *DashboardInterface) Summarize(ctx context.Context, principal domain.Principal, now time.Time) (domain.Dashboard, error) {
	m.Calls.Summarize = append(m.Calls.Summarize, struct {
		Principal domain.Principal
		Now       time.Time
	}{Principal: principal, Now: now})
	if m.Impl.Summarize != nil {
		return m.Impl.Summarize(ctx, principal, now)
	}
	panic(errors.New("it should not be called"))
}
