package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/incentive/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type IncentiveInterface struct {
	Impl struct {
		Create    func(ctx context.Context, spec domain.IncentiveSpec) (domain.Incentive, error)
		Get       func(ctx context.Context, ids []string) (map[string]domain.Incentive, error)
		Find      func(ctx context.Context, query domain.IncentiveQuery) ([]domain.Incentive, error)
		SetStatus func(ctx context.Context, id string, status domain.IncentiveStatus) (domain.Incentive, error)
		Summary   func(ctx context.Context, profileId string) (domain.IncentiveSummary, error)
	}
	Calls struct {
		Create    dbmock.CallLog[domain.IncentiveSpec]
		Get       dbmock.CallLog[[]string]
		Find      dbmock.CallLog[domain.IncentiveQuery]
		SetStatus dbmock.CallLog[struct {
			Id     string
			Status domain.IncentiveStatus
		}]
		Summary dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &IncentiveInterface{}

func NewIncentiveInterface() *IncentiveInterface {
	return &IncentiveInterface{}
}

func (m *IncentiveInterface) Create(ctx context.Context, spec domain.IncentiveSpec) (domain.Incentive, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *IncentiveInterface) Get(ctx context.Context, ids []string) (map[string]domain.Incentive, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *IncentiveInterface) Find(ctx context.Context, query domain.IncentiveQuery) ([]domain.Incentive, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *IncentiveInterface) SetStatus(ctx context.Context, id string, status domain.IncentiveStatus) (domain.Incentive, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		Id     string
		Status domain.IncentiveStatus
	}{Id: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("it should not be called"))
}

func (m *IncentiveInterface) Summary(ctx context.Context, profileId string) (domain.IncentiveSummary, error) {
	m.Calls.Summary = append(m.Calls.Summary, profileId)
	if m.Impl.Summary != nil {
		return m.Impl.Summary(ctx, profileId)
	}
	panic(errors.New("it should not be called"))
}
