package domain

import (
	"fmt"
	"path"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type Document struct {
	Id           string
	Owner        string
	ClientId     *string
	ProjectId    *string
	Title        string
	FileName     string
	ContentType  string
	Size         int64
	Checksum     string
	ReviewStatus ReviewStatus
	CreatedAt    time.Time

	// where the content is in the document store.
	StorageKey string
}

type DocumentSpec struct {
	Owner        string
	ClientId     *string
	ProjectId    *string
	Title        string
	FileName     string
	ContentType  string
	ReviewStatus ReviewStatus
}

func (s DocumentSpec) Validate() error {
	if s.Owner == "" {
		return fmt.Errorf("%w: document owner is unknown", domerr.ErrInvalidArgument)
	}
	name := path.Base(strings.ReplaceAll(s.FileName, `\`, "/"))
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("%w: file name is empty", domerr.ErrInvalidArgument)
	}
	return nil
}

// Normalize fills defaults: the title is the file name, and the content type is octet-stream.
func (s DocumentSpec) Normalize() DocumentSpec {
	s.FileName = path.Base(strings.ReplaceAll(s.FileName, `\`, "/"))
	if strings.TrimSpace(s.Title) == "" {
		s.Title = s.FileName
	}
	if s.ContentType == "" {
		s.ContentType = "application/octet-stream"
	}
	return s
}

// StoredContent describes the content written in a document store.
type StoredContent struct {
	Key      string
	Size     int64
	Checksum string
}

type DocumentQuery struct {
	Owner        []string
	ClientId     []string
	ProjectId    []string
	ReviewStatus []ReviewStatus
}
