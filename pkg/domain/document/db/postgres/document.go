package postgres

import (
	"context"

	kpool "github.com/opst/leadline/pkg/conn/db/postgres/pool"
	"github.com/opst/leadline/pkg/conn/db/postgres/scanner"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/document/db"
	pgerrors "github.com/opst/leadline/pkg/domain/errors/dberrors/postgres"
	pgi "github.com/opst/leadline/pkg/domain/internal/db/postgres"
	xe "github.com/opst/leadline/pkg/errors"
	"github.com/opst/leadline/pkg/utils"
)

const documentColumns = `
	"id", "owner", "client_id", "project_id", "title", "file_name", "content_type",
	"size", "checksum", "review_status", "created_at", "storage_key"`

type pgDocument struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.Interface {
	return &pgDocument{pool: pool}
}

func (m *pgDocument) Register(ctx context.Context, spec domain.DocumentSpec, content domain.StoredContent) (domain.Document, error) {
	spec = spec.Normalize()
	if spec.ReviewStatus == "" {
		spec.ReviewStatus = domain.ReviewPending
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Document{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	docs, err := scanner.New[domain.Document]().QueryAll(
		ctx, tx,
		`
		insert into "documents"
			("owner", "client_id", "project_id", "title", "file_name", "content_type",
			 "size", "checksum", "storage_key", "review_status")
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		returning `+documentColumns,
		spec.Owner, spec.ClientId, spec.ProjectId, spec.Title, spec.FileName, spec.ContentType,
		content.Size, content.Checksum, content.Key, spec.ReviewStatus,
	)
	if err != nil {
		return domain.Document{}, xe.Wrap(pgerrors.Translate(err))
	}
	doc := docs[0]
	if doc.ReviewStatus == domain.ReviewPending {
		if _, err := pgi.InsertReview(ctx, tx, domain.ReviewSpec{
			EntityType: domain.EntityDocument, EntityId: doc.Id, SubmittedBy: doc.Owner,
		}); err != nil {
			return domain.Document{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Document{}, xe.Wrap(err)
	}
	return doc, nil
}

func (m *pgDocument) Get(ctx context.Context, ids []string) (map[string]domain.Document, error) {
	docs, err := scanner.New[domain.Document]().QueryAll(
		ctx, m.pool,
		`select `+documentColumns+` from "documents" where "id" = any($1)`,
		ids,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return utils.ToMap(docs, func(d domain.Document) string { return d.Id }), nil
}

func (m *pgDocument) Find(ctx context.Context, query domain.DocumentQuery) ([]domain.Document, error) {
	w := pgi.Where{}
	if len(query.Owner) != 0 {
		w.Add(`"owner" = any(%s::uuid[])`, query.Owner)
	}
	if len(query.ClientId) != 0 {
		w.Add(`"client_id" = any(%s::uuid[])`, query.ClientId)
	}
	if len(query.ProjectId) != 0 {
		w.Add(`"project_id" = any(%s::uuid[])`, query.ProjectId)
	}
	pgi.Any(&w, `"review_status"`, query.ReviewStatus)

	docs, err := scanner.New[domain.Document]().QueryAll(
		ctx, m.pool,
		`select `+documentColumns+` from "documents" `+w.String()+` order by "created_at" desc, "id"`,
		w.Args()...,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return docs, nil
}

func (m *pgDocument) Delete(ctx context.Context, id string) (domain.Document, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return domain.Document{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		`delete from "reviews" where "entity_type" = $1 and "entity_id" = $2`,
		domain.EntityDocument, id,
	); err != nil {
		return domain.Document{}, xe.Wrap(err)
	}
	docs, err := scanner.New[domain.Document]().QueryAll(
		ctx, tx,
		`delete from "documents" where "id" = $1 returning `+documentColumns,
		id,
	)
	if err != nil {
		return domain.Document{}, xe.Wrap(pgerrors.Translate(err))
	}
	if len(docs) == 0 {
		return domain.Document{}, xe.Wrap(pgerrors.Missing{Table: "documents", Identity: id})
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Document{}, xe.Wrap(err)
	}
	return docs[0], nil
}
