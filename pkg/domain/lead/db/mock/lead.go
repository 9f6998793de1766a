package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/lead/db"
)

type LeadInterface struct {
	Impl struct {
		Create    func(ctx context.Context, spec domain.LeadSpec) (domain.Lead, error)
		Get       func(ctx context.Context, ids []string) (map[string]domain.Lead, error)
		Find      func(ctx context.Context, query domain.LeadQuery) ([]domain.Lead, error)
		Update    func(ctx context.Context, id string, change domain.LeadChange) (domain.Lead, error)
		SetStatus func(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error)
		Assign    func(ctx context.Context, id string, profileId *string) (domain.Lead, error)
		Delete    func(ctx context.Context, id string) error
		Convert   func(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error)
	}
	Calls struct {
		Create dbmock.CallLog[domain.LeadSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.LeadQuery]
		Update dbmock.CallLog[struct {
			Id     string
			Change domain.LeadChange
		}]
		SetStatus dbmock.CallLog[struct {
			Id     string
			Status domain.LeadStatus
		}]
		Assign dbmock.CallLog[struct {
			Id        string
			ProfileId *string
		}]
		Delete  dbmock.CallLog[string]
		Convert dbmock.CallLog[struct {
			Id string
			By string
		}]
	}
}

var _ kdb.Interface = &LeadInterface{}

func NewLeadInterface() *LeadInterface {
	return &LeadInterface{}
}

func (m *LeadInterface) Create(ctx context.Context, spec domain.LeadSpec) (domain.Lead, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Get(ctx context.Context, ids []string) (map[string]domain.Lead, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Find(ctx context.Context, query domain.LeadQuery) ([]domain.Lead, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Update(ctx context.Context, id string, change domain.LeadChange) (domain.Lead, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id     string
		Change domain.LeadChange
	}{Id: id, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, change)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) SetStatus(ctx context.Context, id string, status domain.LeadStatus) (domain.Lead, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		Id     string
		Status domain.LeadStatus
	}{Id: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Assign(ctx context.Context, id string, profileId *string) (domain.Lead, error) {
	m.Calls.Assign = append(m.Calls.Assign, struct {
		Id        string
		ProfileId *string
	}{Id: id, ProfileId: profileId})
	if m.Impl.Assign != nil {
		return m.Impl.Assign(ctx, id, profileId)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *LeadInterface) Convert(ctx context.Context, id string, by string) (domain.Lead, domain.Client, error) {
	m.Calls.Convert = append(m.Calls.Convert, struct {
		Id string
		By string
	}{Id: id, By: by})
	if m.Impl.Convert != nil {
		return m.Impl.Convert(ctx, id, by)
	}
	panic(errors.New("it should not be called"))
}
