// Package fs stores document contents as files in a directory.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/domain/document/store"
	xe "github.com/opst/leadline/pkg/errors"
	kio "github.com/opst/leadline/pkg/utils/io"
)

type fsStore struct {
	root string
}

// New returns a store writing files under root.
//
// root is created when missing.
func New(root string) (store.Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, xe.Wrap(err)
	}
	return &fsStore{root: root}, nil
}

var keyPattern = regexp.MustCompile(`^[0-9a-f]{2}/[0-9a-f-]{36}$`)

// path maps a key to the file. Keys are "<first 2 chars of uuid>/<uuid>".
func (s *fsStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", xe.Wrap(store.ErrMissingContent)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func (s *fsStore) Put(ctx context.Context, content io.Reader) (domain.StoredContent, error) {
	id := uuid.NewString()
	key := id[:2] + "/" + id
	dest, err := s.path(key)
	if err != nil {
		return domain.StoredContent{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	sum := kio.NewMD5Reader(ctxReader{ctx: ctx, r: content})
	if _, err := io.Copy(tmp, sum); err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}
	if err := tmp.Sync(); err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return domain.StoredContent{}, xe.Wrap(err)
	}

	return domain.StoredContent{Key: key, Size: sum.Size(), Checksum: "md5:" + sum.Hex()}, nil
}

func (s *fsStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, xe.Wrap(store.ErrMissingContent)
	} else if err != nil {
		return nil, xe.Wrap(err)
	}
	return f, nil
}

func (s *fsStore) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return xe.Wrap(err)
	}
	return nil
}
