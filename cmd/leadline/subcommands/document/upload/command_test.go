package upload_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/rest/mock"
	document_upload "github.com/opst/leadline/cmd/leadline/subcommands/document/upload"
	"github.com/opst/leadline/cmd/leadline/subcommands/internal/commandline"
	"github.com/opst/leadline/cmd/leadline/subcommands/logger"
	apidocuments "github.com/opst/leadline/pkg/api/types/documents"
	"github.com/youta-t/flarc"
)

func TestUpload(t *testing.T) {
	type When struct {
		flags document_upload.Flag
	}
	type Then struct {
		meta krst.DocumentUpload
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "contract.pdf")
			if err := os.WriteFile(path, []byte("%PDF-1.4 signed"), 0600); err != nil {
				t.Fatal(err)
			}

			client := mock.New(t)
			received := ""
			client.Impl.UploadDocument = func(ctx context.Context, meta krst.DocumentUpload, body io.Reader) (apidocuments.Document, error) {
				b, err := io.ReadAll(body)
				if err != nil {
					return apidocuments.Document{}, err
				}
				received = string(b)
				return apidocuments.Document{Id: "doc-1", Title: meta.Title, FileName: meta.FileName, ReviewStatus: "pending"}, nil
			}

			stdout := new(strings.Builder)
			err := document_upload.Task(io.Discard)(
				context.Background(), logger.Null(), client,
				commandline.MockCommandline[document_upload.Flag]{
					Fullname_: "leadline document upload",
					Stdout_:   stdout,
					Stderr_:   io.Discard,
					Flags_:    when.flags,
					Args_:     map[string][]string{document_upload.ARG_FILE: {path}},
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			if len(client.Calls.UploadDocument) != 1 {
				t.Fatalf("calls = %d", len(client.Calls.UploadDocument))
			}
			if got := client.Calls.UploadDocument[0]; got != then.meta {
				t.Errorf("meta:\n===actual===\n%+v\n===expected===\n%+v", got, then.meta)
			}
			if received != "%PDF-1.4 signed" {
				t.Errorf("content = %q", received)
			}

			printed := apidocuments.Document{}
			if err := json.Unmarshal([]byte(stdout.String()), &printed); err != nil {
				t.Fatal(err)
			}
			if printed.Id != "doc-1" {
				t.Errorf("printed: %s", stdout)
			}
		}
	}

	t.Run("title defaults to the file name", theory(
		When{flags: document_upload.Flag{Client: "client-1"}},
		Then{meta: krst.DocumentUpload{Title: "contract.pdf", FileName: "contract.pdf", ClientId: "client-1"}},
	))

	t.Run("title and project are passed", theory(
		When{flags: document_upload.Flag{Title: "signed contract", Project: "project-1"}},
		Then{meta: krst.DocumentUpload{Title: "signed contract", FileName: "contract.pdf", ProjectId: "project-1"}},
	))

	t.Run("directory is not uploadable", func(t *testing.T) {
		client := mock.New(t)
		err := document_upload.Task(io.Discard)(
			context.Background(), logger.Null(), client,
			commandline.MockCommandline[document_upload.Flag]{
				Stdout_: io.Discard,
				Stderr_: io.Discard,
				Args_:   map[string][]string{document_upload.ARG_FILE: {t.TempDir()}},
			},
			[]any{},
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("missing file causes error", func(t *testing.T) {
		client := mock.New(t)
		err := document_upload.Task(io.Discard)(
			context.Background(), logger.Null(), client,
			commandline.MockCommandline[document_upload.Flag]{
				Stdout_: io.Discard,
				Stderr_: io.Discard,
				Args_:   map[string][]string{document_upload.ARG_FILE: {filepath.Join(t.TempDir(), "missing")}},
			},
			[]any{},
		)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v", err)
		}
	})
}
