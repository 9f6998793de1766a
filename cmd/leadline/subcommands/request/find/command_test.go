package find_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/rest/mock"
	"github.com/opst/leadline/cmd/leadline/subcommands/internal/commandline"
	"github.com/opst/leadline/cmd/leadline/subcommands/logger"
	request_find "github.com/opst/leadline/cmd/leadline/subcommands/request/find"
	apirequests "github.com/opst/leadline/pkg/api/types/requests"
)

func TestFind(t *testing.T) {
	for name, testcase := range map[string]struct {
		when request_find.Flag
		then krst.RequestQuery
	}{
		"no flags find everything visible": {
			when: request_find.Flag{},
			then: krst.RequestQuery{},
		},
		"flags are passed as query": {
			when: request_find.Flag{
				Status:    []string{"pending"},
				Client:    []string{"client-1"},
				Requester: []string{"intern-1", "sales-1"},
			},
			then: krst.RequestQuery{
				Status:    []string{"pending"},
				Client:    []string{"client-1"},
				Requester: []string{"intern-1", "sales-1"},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			client := mock.New(t)
			client.Impl.FindRequests = func(ctx context.Context, query krst.RequestQuery) ([]apirequests.Request, error) {
				return []apirequests.Request{{Id: "request-1", ClientId: "client-1", Status: "pending"}}, nil
			}

			stdout := new(strings.Builder)
			err := request_find.Task()(
				context.Background(), logger.Null(), client,
				commandline.MockCommandline[request_find.Flag]{
					Fullname_: "leadline request find",
					Stdout_:   stdout,
					Stderr_:   io.Discard,
					Flags_:    testcase.when,
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			if len(client.Calls.FindRequests) != 1 {
				t.Fatalf("calls = %+v", client.Calls.FindRequests)
			}
			if diff := cmp.Diff(testcase.then, client.Calls.FindRequests[0]); diff != "" {
				t.Errorf("query (-want +got):\n%s", diff)
			}

			printed := []map[string]any{}
			if err := json.Unmarshal([]byte(stdout.String()), &printed); err != nil {
				t.Fatal(err)
			}
			if len(printed) != 1 || printed[0]["id"] != "request-1" {
				t.Errorf("printed: %s", stdout)
			}
		})
	}
}
