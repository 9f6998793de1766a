package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/document/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type DocumentInterface struct {
	Impl struct {
		Register func(ctx context.Context, spec domain.DocumentSpec, content domain.StoredContent) (domain.Document, error)
		Get      func(ctx context.Context, ids []string) (map[string]domain.Document, error)
		Find     func(ctx context.Context, query domain.DocumentQuery) ([]domain.Document, error)
		Delete   func(ctx context.Context, id string) (domain.Document, error)
	}
	Calls struct {
		Register dbmock.CallLog[struct {
			Spec    domain.DocumentSpec
			Content domain.StoredContent
		}]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.DocumentQuery]
		Delete dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &DocumentInterface{}

func NewDocumentInterface() *DocumentInterface {
	return &DocumentInterface{}
}

func (m *DocumentInterface) Register(ctx context.Context, spec domain.DocumentSpec, content domain.StoredContent) (domain.Document, error) {
	m.Calls.Register = append(m.Calls.Register, struct {
		Spec    domain.DocumentSpec
		Content domain.StoredContent
	}{Spec: spec, Content: content})
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, spec, content)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Get(ctx context.Context, ids []string) (map[string]domain.Document, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Find(ctx context.Context, query domain.DocumentQuery) ([]domain.Document, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *DocumentInterface) Delete(ctx context.Context, id string) (domain.Document, error) {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
