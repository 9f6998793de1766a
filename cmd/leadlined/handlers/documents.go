package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	binddocuments "github.com/opst/leadline/pkg/api-types-binding/documents"
	binderr "github.com/opst/leadline/pkg/api-types-binding/errors"
	apidocuments "github.com/opst/leadline/pkg/api/types/documents"
	"github.com/opst/leadline/pkg/domain"
	kdocument "github.com/opst/leadline/pkg/domain/document/db"
	"github.com/opst/leadline/pkg/domain/document/store"
	"github.com/opst/leadline/pkg/utils"
)

func FindDocumentsHandler(dbdocument kdocument.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		owner, err := idParam(c, "owner")
		if err != nil {
			return err
		}
		client, err := idParam(c, "client")
		if err != nil {
			return err
		}
		project, err := idParam(c, "project")
		if err != nil {
			return err
		}
		query := domain.DocumentQuery{
			Owner:     self(p, owner),
			ClientId:  client,
			ProjectId: project,
		}
		if query.ReviewStatus, err = listParam(c, "review", domain.AsReviewStatus, adviceReviewStatus); err != nil {
			return err
		}

		found, err := dbdocument.Find(c.Request().Context(), query)
		if err != nil {
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, binddocuments.Compose))
	}
}

const maxFormValue = 4096

func formValue(r io.Reader) (string, error) {
	buf, err := io.ReadAll(io.LimitReader(r, maxFormValue+1))
	if err != nil {
		return "", err
	}
	if maxFormValue < len(buf) {
		return "", errors.New("form value is too long")
	}
	return strings.TrimSpace(string(buf)), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UploadDocumentHandler stores a document sent as multipart/form-data.
//
// The content in the "file" part is streamed into the store.
// Other parts ("title", "clientId" and "projectId") can come in any order.
func UploadDocumentHandler(dbdocument kdocument.Interface, documents store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()

		mr, err := c.Request().MultipartReader()
		if err != nil {
			return binderr.BadRequest("it should be multipart/form-data", err)
		}

		spec := domain.DocumentSpec{
			Owner:        p.ProfileId,
			ReviewStatus: domain.InitialReviewStatus(p.Role),
		}
		var stored *domain.StoredContent
		cleanup := func() {
			if stored == nil {
				return
			}
			if err := documents.Remove(ctx, stored.Key); err != nil {
				c.Logger().Warnf("content %s is left in the store: %s", stored.Key, err)
			}
		}

		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				cleanup()
				return binderr.BadRequest("broken multipart body", err)
			}

			switch part.FormName() {
			case apidocuments.FormFile:
				if stored != nil {
					part.Close()
					cleanup()
					return binderr.BadRequest(`only one "file" can be uploaded at once`, nil)
				}
				spec.FileName = part.FileName()
				spec.ContentType = part.Header.Get(echo.HeaderContentType)
				content, err := documents.Put(ctx, part)
				part.Close()
				if err != nil {
					return binderr.InternalServerError(err)
				}
				stored = &content
			case apidocuments.FormTitle, apidocuments.FormClientId, apidocuments.FormProjectId:
				v, err := formValue(part)
				part.Close()
				if err != nil {
					cleanup()
					return binderr.BadRequest("can not read form value "+part.FormName(), err)
				}
				switch part.FormName() {
				case apidocuments.FormTitle:
					spec.Title = v
				case apidocuments.FormClientId:
					spec.ClientId = optional(v)
				case apidocuments.FormProjectId:
					spec.ProjectId = optional(v)
				}
			default:
				part.Close()
			}
		}

		if stored == nil {
			return binderr.BadRequest(`"file" is required`, nil)
		}
		for field, id := range map[string]*string{"clientId": spec.ClientId, "projectId": spec.ProjectId} {
			if err := bodyId(field, id); err != nil {
				cleanup()
				return err
			}
		}
		if err := spec.Validate(); err != nil {
			cleanup()
			return binderr.FromDomain(err)
		}
		doc, err := dbdocument.Register(ctx, spec, *stored)
		if err != nil {
			cleanup()
			return binderr.FromDomain(err)
		}
		return c.JSON(http.StatusCreated, binddocuments.Compose(doc))
	}
}

func visibleDocument(c echo.Context, dbdocument kdocument.Interface, p domain.Principal, id string) (domain.Document, error) {
	d, err := getById(c.Request().Context(), dbdocument.Get, id)
	if err != nil {
		return d, err
	}
	if !visibleByOwner(p, d.Owner) {
		return d, binderr.NotFound()
	}
	return d, nil
}

func GetDocumentHandler(dbdocument kdocument.Interface, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		d, err := visibleDocument(c, dbdocument, p, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, binddocuments.Compose(d))
	}
}

// DownloadDocumentHandler streams the content of the document.
func DownloadDocumentHandler(dbdocument kdocument.Interface, documents store.Store, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		d, err := visibleDocument(c, dbdocument, p, id)
		if err != nil {
			return err
		}

		content, err := documents.Open(c.Request().Context(), d.StorageKey)
		if errors.Is(err, store.ErrMissingContent) {
			return binderr.NewErrorMessage(
				http.StatusGone, "the content of the document is lost",
				binderr.WithAdvice("upload it again."), binderr.WithError(err),
			)
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		defer content.Close()

		h := c.Response().Header()
		h.Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": d.FileName}))
		h.Set(echo.HeaderContentLength, strconv.FormatInt(d.Size, 10))
		h.Set(apidocuments.HeaderChecksum, d.Checksum)
		return c.Stream(http.StatusOK, d.ContentType, content)
	}
}

// DeleteDocumentHandler deletes the document and its content. Only the owner or admins can do it.
func DeleteDocumentHandler(dbdocument kdocument.Interface, documents store.Store, param string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()
		id, err := pathId(c, param)
		if err != nil {
			return err
		}
		if _, err := visibleDocument(c, dbdocument, p, id); err != nil {
			return err
		}

		d, err := dbdocument.Delete(ctx, id)
		if err != nil {
			return binderr.FromDomain(err)
		}
		if err := documents.Remove(ctx, d.StorageKey); err != nil {
			c.Logger().Warnf("content of document %s (%s) is left in the store: %s", d.Id, d.StorageKey, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
