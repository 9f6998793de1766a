package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/appointment/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type AppointmentInterface struct {
	Impl struct {
		Create    func(ctx context.Context, spec domain.AppointmentSpec) (domain.Appointment, error)
		Get       func(ctx context.Context, ids []string) (map[string]domain.Appointment, error)
		Find      func(ctx context.Context, query domain.AppointmentQuery) ([]domain.Appointment, error)
		Update    func(ctx context.Context, id string, change domain.AppointmentChange) (domain.Appointment, error)
		SetStatus func(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error)
		Delete    func(ctx context.Context, id string) error
	}
	Calls struct {
		Create dbmock.CallLog[domain.AppointmentSpec]
		Get    dbmock.CallLog[[]string]
		Find   dbmock.CallLog[domain.AppointmentQuery]
		Update dbmock.CallLog[struct {
			Id     string
			Change domain.AppointmentChange
		}]
		SetStatus dbmock.CallLog[struct {
			Id     string
			Status domain.AppointmentStatus
		}]
		Delete dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &AppointmentInterface{}

func NewAppointmentInterface() *AppointmentInterface {
	return &AppointmentInterface{}
}

func (m *AppointmentInterface) Create(ctx context.Context, spec domain.AppointmentSpec) (domain.Appointment, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AppointmentInterface) Get(ctx context.Context, ids []string) (map[string]domain.Appointment, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *AppointmentInterface) Find(ctx context.Context, query domain.AppointmentQuery) ([]domain.Appointment, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *AppointmentInterface) Update(ctx context.Context, id string, change domain.AppointmentChange) (domain.Appointment, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id     string
		Change domain.AppointmentChange
	}{Id: id, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, change)
	}
	panic(errors.New("it should not be called"))
}

func (m *AppointmentInterface) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	m.Calls.SetStatus = append(m.Calls.SetStatus, struct {
		Id     string
		Status domain.AppointmentStatus
	}{Id: id, Status: status})
	if m.Impl.SetStatus != nil {
		return m.Impl.SetStatus(ctx, id, status)
	}
	panic(errors.New("it should not be called"))
}

func (m *AppointmentInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}
