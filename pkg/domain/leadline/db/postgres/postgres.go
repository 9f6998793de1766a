package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	kappointment "github.com/opst/leadline/pkg/domain/appointment/db"
	kpgappointment "github.com/opst/leadline/pkg/domain/appointment/db/postgres"
	krequest "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
	kpgrequest "github.com/opst/leadline/pkg/domain/appointmentrequest/db/postgres"
	kclient "github.com/opst/leadline/pkg/domain/client/db"
	kpgclient "github.com/opst/leadline/pkg/domain/client/db/postgres"
	kdashboard "github.com/opst/leadline/pkg/domain/dashboard/db"
	kpgdashboard "github.com/opst/leadline/pkg/domain/dashboard/db/postgres"
	kdocument "github.com/opst/leadline/pkg/domain/document/db"
	kpgdocument "github.com/opst/leadline/pkg/domain/document/db/postgres"
	kincentive "github.com/opst/leadline/pkg/domain/incentive/db"
	kpgincentive "github.com/opst/leadline/pkg/domain/incentive/db/postgres"
	klead "github.com/opst/leadline/pkg/domain/lead/db"
	kpglead "github.com/opst/leadline/pkg/domain/lead/db/postgres"
	dbInterface "github.com/opst/leadline/pkg/domain/leadline/db"
	kprofile "github.com/opst/leadline/pkg/domain/profile/db"
	kpgprofile "github.com/opst/leadline/pkg/domain/profile/db/postgres"
	kproject "github.com/opst/leadline/pkg/domain/project/db"
	kpgproject "github.com/opst/leadline/pkg/domain/project/db/postgres"
	krawdata "github.com/opst/leadline/pkg/domain/rawdata/db"
	kpgrawdata "github.com/opst/leadline/pkg/domain/rawdata/db/postgres"
	kreview "github.com/opst/leadline/pkg/domain/review/db"
	kpgreview "github.com/opst/leadline/pkg/domain/review/db/postgres"
	kschema "github.com/opst/leadline/pkg/domain/schema/db"
	kpgschema "github.com/opst/leadline/pkg/domain/schema/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
)

type leadlineDBPostgres struct {
	pool kpool.Pool

	profile     kprofile.Interface
	lead        klead.Interface
	client      kclient.Interface
	project     kproject.Interface
	appointment kappointment.Interface
	request     krequest.Interface
	review      kreview.Interface
	rawData     krawdata.Interface
	document    kdocument.Interface
	incentive   kincentive.Interface
	dashboard   kdashboard.Interface
	schema      kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

// New connects to the database at url.
func New(ctx context.Context, url string, options ...Option) (dbInterface.Database, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return Attach(kpool.Wrap(pool), options...), nil
}

// Attach builds the database over the pool.
func Attach(p kpool.Pool, options ...Option) dbInterface.Database {
	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &leadlineDBPostgres{
		pool:        p,
		profile:     kpgprofile.New(p),
		lead:        kpglead.New(p),
		client:      kpgclient.New(p),
		project:     kpgproject.New(p),
		appointment: kpgappointment.New(p),
		request:     kpgrequest.New(p),
		review:      kpgreview.New(p),
		rawData:     kpgrawdata.New(p),
		document:    kpgdocument.New(p),
		incentive:   kpgincentive.New(p),
		dashboard:   kpgdashboard.New(p),
		schema:      schema,
	}
}

func (l *leadlineDBPostgres) Profile() kprofile.Interface         { return l.profile }
func (l *leadlineDBPostgres) Lead() klead.Interface               { return l.lead }
func (l *leadlineDBPostgres) Client() kclient.Interface           { return l.client }
func (l *leadlineDBPostgres) Project() kproject.Interface         { return l.project }
func (l *leadlineDBPostgres) Appointment() kappointment.Interface { return l.appointment }
func (l *leadlineDBPostgres) Request() krequest.Interface         { return l.request }
func (l *leadlineDBPostgres) Review() kreview.Interface           { return l.review }
func (l *leadlineDBPostgres) RawData() krawdata.Interface         { return l.rawData }
func (l *leadlineDBPostgres) Document() kdocument.Interface       { return l.document }
func (l *leadlineDBPostgres) Incentive() kincentive.Interface     { return l.incentive }
func (l *leadlineDBPostgres) Dashboard() kdashboard.Interface     { return l.dashboard }
func (l *leadlineDBPostgres) Schema() kschema.SchemaInterface     { return l.schema }

func (l *leadlineDBPostgres) Ping(ctx context.Context) error {
	return l.pool.Ping(ctx)
}

func (l *leadlineDBPostgres) Close() error {
	l.pool.Close()
	return nil
}
