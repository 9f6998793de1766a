package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/client/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type ClientInterface struct {
	Impl struct {
		Create func(ctx context.Context, spec domain.ClientSpec) (domain.Client, error)
		Get    func(ctx context.Context, ids []string) (map[string]domain.Client, error)
		Find   func(ctx context.Context, query domain.ClientQuery) ([]domain.Client, error)
		Update func(ctx context.Context, id string, change domain.ClientChange) (domain.Client, error)
		Delete func(ctx context.Context, id string) error
	}
	Calls struct {
		Create dbmock.CallLog[domain.ClientSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.ClientQuery]
		Update dbmock.CallLog[struct {
			Id     string
			Change domain.ClientChange
		}]
		Delete dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &ClientInterface{}

func NewClientInterface() *ClientInterface {
	return &ClientInterface{}
}

func (m *ClientInterface) Create(ctx context.Context, spec domain.ClientSpec) (domain.Client, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ClientInterface) Get(ctx context.Context, ids []string) (map[string]domain.Client, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *ClientInterface) Find(ctx context.Context, query domain.ClientQuery) ([]domain.Client, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ClientInterface) Update(ctx context.Context, id string, change domain.ClientChange) (domain.Client, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id     string
		Change domain.ClientChange
	}{Id: id, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, change)
	}
	panic(errors.New("it should not be called"))
}

func (m *ClientInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
