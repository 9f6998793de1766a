package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/rawdata/db"
)

type RawDataInterface struct {
	Impl struct {
		Submit func(ctx context.Context, specs []domain.RawDataSpec) ([]domain.RawData, error)
		Get    func(ctx context.Context, ids []string) (map[string]domain.RawData, error)
		Find   func(ctx context.Context, query domain.RawDataQuery) ([]domain.RawData, error)
		Delete func(ctx context.Context, id string) error
	}
	Calls struct {
		Submit dbmock.CallLog[[]domain.RawDataSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.RawDataQuery]
		Delete dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &RawDataInterface{}

func NewRawDataInterface() *RawDataInterface {
	return &RawDataInterface{}
}

func (m *RawDataInterface) Submit(ctx context.Context, specs []domain.RawDataSpec) ([]domain.RawData, error) {
	m.Calls.Submit = append(m.Calls.Submit, specs)
	if m.Impl.Submit != nil {
		return m.Impl.Submit(ctx, specs)
	}
	panic(errors.New("it should not be called"))
}

func (m *RawDataInterface) Get(ctx context.Context, ids []string) (map[string]domain.RawData, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *RawDataInterface) Find(ctx context.Context, query domain.RawDataQuery) ([]domain.RawData, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *RawDataInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
