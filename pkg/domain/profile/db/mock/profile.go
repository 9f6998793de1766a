package mock

import (
	"context"
	"errors"

	"github.com/opst/leadline/pkg/domain"
	dbmock "github.com/opst/leadline/pkg/domain/internal/db/mock"
	kdb "github.com/opst/leadline/pkg/domain/profile/db"
)

type ProfileInterface struct {
	Impl struct {
		Register    func(ctx context.Context, spec domain.ProfileSpec) (domain.Profile, error)
		Get         func(ctx context.Context, ids []string) (map[string]domain.Profile, error)
		Find        func(ctx context.Context, query domain.ProfileQuery) ([]domain.Profile, error)
		Update      func(ctx context.Context, id string, change domain.ProfileChange) (domain.Profile, error)
		SetPassword func(ctx context.Context, id string, hash []byte) error
		Credential  func(ctx context.Context, email string) (domain.Credential, error)
	}
	Calls struct {
		Register dbmock.CallLog[domain.ProfileSpec]
		Get      dbmock.CallLog[[]string]
		Find     dbmock.CallLog[domain.ProfileQuery]
		Update   dbmock.CallLog[struct {
			Id     string
			Change domain.ProfileChange
		}]
		SetPassword dbmock.CallLog[struct {
			Id   string
			Hash []byte
		}]
		Credential dbmock.CallLog[string]
	}
}

var _ kdb.Interface = &ProfileInterface{}

func NewProfileInterface() *ProfileInterface {
	return &ProfileInterface{}
}

func (m *ProfileInterface) Register(ctx context.Context, spec domain.ProfileSpec) (domain.Profile, error) {
	m.Calls.Register = append(m.Calls.Register, spec)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProfileInterface) Get(ctx context.Context, ids []string) (map[string]domain.Profile, error) {
	m.Calls.Get = append(m.Calls.Get, ids)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, ids)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProfileInterface) Find(ctx context.Context, query domain.ProfileQuery) ([]domain.Profile, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProfileInterface) Update(ctx context.Context, id string, change domain.ProfileChange) (domain.Profile, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id     string
		Change domain.ProfileChange
	}{Id: id, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, change)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProfileInterface) SetPassword(ctx context.Context, id string, hash []byte) error {
	m.Calls.SetPassword = append(m.Calls.SetPassword, struct {
		Id   string
		Hash []byte
	}{Id: id, Hash: hash})
	if m.Impl.SetPassword != nil {
		return m.Impl.SetPassword(ctx, id, hash)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProfileInterface) Credential(ctx context.Context, email string) (domain.Credential, error) {
	m.Calls.Credential = append(m.Calls.Credential, email)
	if m.Impl.Credential != nil {
		return m.Impl.Credential(ctx, email)
	}
	panic(errors.New("it should not be called"))
}
