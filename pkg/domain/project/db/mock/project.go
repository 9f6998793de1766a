package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/project/db"
)

type ProjectInterface struct {
	Impl struct {
		Create    func(ctx context.Context, spec domain.ProjectSpec) (domain.Project, error)
		Get       func(ctx context.Context, ids []string) (map[string]domain.Project, error)
		Find      func(ctx context.Context, query domain.ProjectQuery) ([]domain.Project, error)
		Update    func(ctx context.Context, id string, change domain.ProjectChange) (domain.Project, error)
		SetStatus func(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error)
		Delete    func(ctx context.Context, id string) error
	}
	Calls struct {
		Create dbmock.CallLog[domain.ProjectSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.ProjectQuery]
		Update dbmock.CallLog[struct {
			Id     string
			Change domain.ProjectChange
		}]
		SetStatus dbmock.CallLog[struct {
			Id     string
			Status domain.ProjectStatus
		}]
		Delete dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &ProjectInterface{}

func NewProjectInterface() *ProjectInterface {
	return &ProjectInterface{}
}

func (m *ProjectInterface) Create(ctx context.Context, spec domain.ProjectSpec) (domain.Project, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Get(ctx context.Context, ids []string) (map[string]domain.Project, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Find(ctx context.Context, query domain.ProjectQuery) ([]domain.Project, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Update(ctx context.Context, id string, change domain.ProjectChange) (domain.Project, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id     string
		Change domain.ProjectChange
	}{Id: id, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, change)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (domain.Project, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		Id     string
		Status domain.ProjectStatus
	}{Id: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
