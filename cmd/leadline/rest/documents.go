package rest

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	apidocuments "github.com/opst/leadline/pkg/api/types/documents"
)

// DocumentUpload is metadata of a document to be uploaded.
type DocumentUpload struct {
	Title    string
	FileName string

	// optional
	ClientId  string
	ProjectId string
}

// Download is a document content being downloaded.
type Download struct {
	FileName    string
	ContentType string

	// -1 if unknown
	Size int64

	Body io.Reader
}

func (c *client) UploadDocument(ctx context.Context, meta DocumentUpload, body io.Reader) (apidocuments.Document, error) {
	r, w := io.Pipe()
	mw := multipart.NewWriter(w)

	go func() {
		w.CloseWithError(func() error {
			for _, f := range []struct{ name, value string }{
				{name: apidocuments.FormTitle, value: meta.Title},
				{name: apidocuments.FormClientId, value: meta.ClientId},
				{name: apidocuments.FormProjectId, value: meta.ProjectId},
			} {
				if f.value == "" {
					continue
				}
				if err := mw.WriteField(f.name, f.value); err != nil {
					return err
				}
			}
			part, err := mw.CreateFormFile(apidocuments.FormFile, meta.FileName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, body); err != nil {
				return err
			}
			return mw.Close()
		}())
	}()
	defer r.Close()

	req, err := c.newRequest(ctx, http.MethodPost, c.apipath("documents"), r)
	if err != nil {
		return apidocuments.Document{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return apidocuments.Document{}, err
	}
	defer resp.Body.Close()

	doc := new(apidocuments.Document)
	if err := unmarshalJsonResponse(
		resp, doc,
		MessageFor{
			Status4xx: fmt.Sprintf("uploading %s is rejected", meta.FileName),
			Status5xx: "server error",
		},
	); err != nil {
		return apidocuments.Document{}, err
	}
	return *doc, nil
}

func (c *client) DownloadDocument(ctx context.Context, documentId string, handler func(Download) error) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.apipath("documents", documentId, "content"), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := unmarshalStreamResponse(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("document %s can not be downloaded", documentId),
			Status5xx: "server error",
		},
	)
	if err != nil {
		return err
	}

	d := Download{
		FileName:    documentId,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if fn := params["filename"]; fn != "" {
			d.FileName = fn
		}
	}

	hash := md5.New()
	d.Body = io.TeeReader(body, hash)
	if err := handler(d); err != nil {
		return err
	}
	if _, err := io.Copy(hash, body); err != nil {
		return err
	}

	expected := resp.Header.Get(apidocuments.HeaderChecksum)
	algo, sum, ok := strings.Cut(expected, ":")
	if !ok || algo != "md5" {
		// no way to verify
		return nil
	}
	if actual := hex.EncodeToString(hash.Sum(nil)); actual != sum {
		return fmt.Errorf("%w: %s (expected: %s)", ErrChecksumUnmatch, actual, sum)
	}
	return nil
}
