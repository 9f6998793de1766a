package find_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/rest/mock"
	"github.com/opst/leadline/cmd/leadline/subcommands/internal/commandline"
	lead_find "github.com/opst/leadline/cmd/leadline/subcommands/lead/find"
	"github.com/opst/leadline/cmd/leadline/subcommands/logger"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
)

func TestFind(t *testing.T) {
	t.Run("flags are passed as query", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.FindLeads = func(ctx context.Context, query krst.LeadQuery) ([]apileads.Lead, error) {
			return []apileads.Lead{}, nil
		}

		stdout := new(strings.Builder)
		err := lead_find.Task()(
			context.Background(), logger.Null(), client,
			commandline.MockCommandline[lead_find.Flag]{
				Fullname_: "leadline lead find",
				Stdout_:   stdout,
				Stderr_:   io.Discard,
				Flags_: lead_find.Flag{
					Status:   []string{"new", "contacted"},
					Assignee: []string{"sales-1"},
					Review:   []string{"approved"},
				},
			},
			[]any{},
		)
		if err != nil {
			t.Fatal(err)
		}

		want := krst.LeadQuery{
			Status:   []string{"new", "contacted"},
			Assignee: []string{"sales-1"},
			Review:   []string{"approved"},
		}
		if len(client.Calls.FindLeads) != 1 {
			t.Fatalf("calls = %+v", client.Calls.FindLeads)
		}
		if diff := cmp.Diff(want, client.Calls.FindLeads[0]); diff != "" {
			t.Errorf("query (-want +got):\n%s", diff)
		}
		if strings.TrimSpace(stdout.String()) != "[]" {
			t.Errorf("printed: %s", stdout)
		}
	})

	t.Run("error from server is returned", func(t *testing.T) {
		expected := errors.New("forbidden")
		client := mock.New(t)
		client.Impl.FindLeads = func(ctx context.Context, query krst.LeadQuery) ([]apileads.Lead, error) {
			return nil, expected
		}

		err := lead_find.Task()(
			context.Background(), logger.Null(), client,
			commandline.MockCommandline[lead_find.Flag]{
				Stdout_: io.Discard,
				Stderr_: io.Discard,
			},
			[]any{},
		)
		if !errors.Is(err, expected) {
			t.Errorf("error = %v", err)
		}
	})
}
