package mock

import (
	"context"
	"errors"
	"time"

	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
)

type RequestInterface struct {
	Impl struct {
		Request            func(ctx context.Context, spec domain.AppointmentRequestSpec) (domain.AppointmentRequest, error)
		Get                func(ctx context.Context, ids []string) (map[string]domain.AppointmentRequest, error)
		Find               func(ctx context.Context, query domain.AppointmentRequestQuery) ([]domain.AppointmentRequest, error)
		Approve            func(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, domain.ClientAppointment, error)
		Reject             func(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error)
		Cancel             func(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error)
		Expire             func(ctx context.Context, now time.Time) ([]string, error)
		ClientAppointments func(ctx context.Context, query domain.ClientAppointmentQuery) ([]domain.ClientAppointment, error)
		PopEvent           func(ctx context.Context, handler func(domain.AppointmentEvent) error) (bool, error)
	}
	Calls struct {
		Request            dbmock.CallLog[domain.AppointmentRequestSpec]
		Get                dbmock.CallLog[[]string]
		Find               dbmock.CallLog[domain.AppointmentRequestQuery]
		Approve            dbmock.CallLog[domain.Decision]
		Reject             dbmock.CallLog[domain.Decision]
		Cancel             dbmock.CallLog[domain.Decision]
		Expire             dbmock.CallLog[time.Time]
		ClientAppointments dbmock.CallLog[domain.ClientAppointmentQuery]
		PopEvent           dbmock.CallLog[struct{}]
	}
}

var _ kdb.Interface = &RequestInterface{}

func NewRequestInterface() *RequestInterface {
	return &RequestInterface{}
}

func (m *RequestInterface) Request(ctx context.Context, spec domain.AppointmentRequestSpec) (domain.AppointmentRequest, error) {
	m.Calls.Request = append(m.Calls.Request, spec)
	if m.Impl.Request != nil {
		return m.Impl.Request(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Get(ctx context.Context, ids []string) (map[string]domain.AppointmentRequest, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Find(ctx context.Context, query domain.AppointmentRequestQuery) ([]domain.AppointmentRequest, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Approve(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, domain.ClientAppointment, error) {
	m.Calls.Approve = append(m.Calls.Approve, decision)
	if m.Impl.Approve != nil {
		return m.Impl.Approve(ctx, decision)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Reject(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error) {
	m.Calls.Reject = append(m.Calls.Reject, decision)
	if m.Impl.Reject != nil {
		return m.Impl.Reject(ctx, decision)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Cancel(ctx context.Context, decision domain.Decision) (domain.AppointmentRequest, error) {
	m.Calls.Cancel = append(m.Calls.Cancel, decision)
	if m.Impl.Cancel != nil {
		return m.Impl.Cancel(ctx, decision)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) Expire(ctx context.Context, now time.Time) ([]string, error) {
	m.Calls.Expire = append(m.Calls.Expire, now)
	if m.Impl.Expire != nil {
		return m.Impl.Expire(ctx, now)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) ClientAppointments(ctx context.Context, query domain.ClientAppointmentQuery) ([]domain.ClientAppointment, error) {
	m.Calls.ClientAppointments = append(m.Calls.ClientAppointments, query)
	if m.Impl.ClientAppointments != nil {
		return m.Impl.ClientAppointments(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *RequestInterface) PopEvent(ctx context.Context, handler func(domain.AppointmentEvent) error) (bool, error) {
	m.Calls.PopEvent = append(m.Calls.PopEvent, struct{}{})
	if m.Impl.PopEvent != nil {
		return m.Impl.PopEvent(ctx, handler)
	}
	panic(errors.New("it should not be called"))
}
