package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/review/db"
)

type ReviewInterface struct {
	Impl struct {
		Submit func(ctx context.Context, spec domain.ReviewSpec) (domain.Review, error)
		Get    func(ctx context.Context, ids []string) (map[string]domain.Review, error)
		Find   func(ctx context.Context, query domain.ReviewQuery) ([]domain.Review, error)
		Decide func(ctx context.Context, decision domain.ReviewDecision) ([]domain.ReviewOutcome, error)
	}
	Calls struct {
		Submit dbmock.CallLog[domain.ReviewSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.ReviewQuery]
		Decide dbmock.CallLog[domain.ReviewDecision]
	}
}

var _ kdb.Interface = &ReviewInterface{}

func NewReviewInterface() *ReviewInterface {
	return &ReviewInterface{}
}

func (m *ReviewInterface) Submit(ctx context.Context, spec domain.ReviewSpec) (domain.Review, error) {
	m.Calls.Submit = append(m.Calls.Submit, spec)
	if m.Impl.Submit != nil {
		return m.Impl.Submit(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ReviewInterface) Get(ctx context.Context, ids []string) (map[string]domain.Review, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *ReviewInterface) Find(ctx context.Context, query domain.ReviewQuery) ([]domain.Review, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ReviewInterface) Decide(ctx context.Context, decision domain.ReviewDecision) ([]domain.ReviewOutcome, error) {
	m.Calls.Decide = append(m.Calls.Decide, decision)
	if m.Impl.Decide != nil {
		return m.Impl.Decide(ctx, decision)
	}
	panic(errors.New("it should not be called"))
}
