package leadline

import (
	"context"

	sconf "github.com/opst/leadline/pkg/configs/server"
	"github.com/opst/leadline/pkg/domain/document/fs"
	"github.com/opst/leadline/pkg/domain/document/store"
	"github.com/opst/leadline/pkg/domain/leadline/db"
	"github.com/opst/leadline/pkg/domain/leadline/db/postgres"
)

// Leadline is everything the server works with.
type Leadline interface {
	Config() *sconf.Config
	Database() db.Database
	Documents() store.Store
	Close() error
}

type leadline struct {
	config    *sconf.Config
	database  db.Database
	documents store.Store
}

func New(ctx context.Context, config *sconf.Config, options ...Option) (Leadline, error) {
	opt := &_options{}
	for _, o := range options {
		o(opt)
	}

	documents, err := fs.New(config.DocumentRoot())
	if err != nil {
		return nil, err
	}

	pg, err := postgres.New(ctx, config.DBURI(), opt.pg...)
	if err != nil {
		return nil, err
	}

	return &leadline{config: config, database: pg, documents: documents}, nil
}

type Option func(*_options)

type _options struct {
	pg []postgres.Option
}

func WithSchemaRepository(repository string) Option {
	return func(o *_options) {
		o.pg = append(o.pg, postgres.WithSchemaRepository(repository))
	}
}

func (l *leadline) Config() *sconf.Config {
	return l.config
}

func (l *leadline) Database() db.Database {
	return l.database
}

func (l *leadline) Documents() store.Store {
	return l.documents
}

func (l *leadline) Close() error {
	return l.database.Close()
}
