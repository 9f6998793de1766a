package common_test

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/opst/leadline/cmd/leadline/config/profiles"
	krest "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/opst/leadline/cmd/leadline/subcommands/internal/commandline"
	"github.com/youta-t/flarc"
)

func TestClient(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	store := filepath.Join(t.TempDir(), "profile")
	if err := (profiles.ProfileStore{
		"default": {ApiRoot: "https://leadline.example.com/api", Token: "tok", ExpiresAt: now.Add(time.Hour)},
		"expired": {ApiRoot: "https://leadline.example.com/api", Token: "tok", ExpiresAt: now.Add(-time.Hour)},
		"anon":    {ApiRoot: "https://leadline.example.com/api"},
		"broken":  {ApiRoot: "not a url", Token: "tok"},
	}).Save(store); err != nil {
		t.Fatal(err)
	}

	for name, testcase := range map[string]struct {
		when common.CommonFlags
		then string // substring of the error. empty for success.
	}{
		"logged in": {
			when: common.CommonFlags{Profile: "default", ProfileStore: store},
		},
		"expired": {
			when: common.CommonFlags{Profile: "expired", ProfileStore: store},
			then: "expired",
		},
		"never logged in": {
			when: common.CommonFlags{Profile: "anon", ProfileStore: store},
			then: "expired",
		},
		"broken profile": {
			when: common.CommonFlags{Profile: "broken", ProfileStore: store},
			then: "can be broken",
		},
		"unknown profile": {
			when: common.CommonFlags{Profile: "unknown", ProfileStore: store},
			then: "not found",
		},
		"missing store": {
			when: common.CommonFlags{Profile: "default", ProfileStore: filepath.Join(t.TempDir(), "profile")},
			then: "leadline login",
		},
	} {
		t.Run(name, func(t *testing.T) {
			client, err := common.Client(testcase.when, now)
			if testcase.then == "" {
				if err != nil || client == nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), testcase.then) {
				t.Errorf("error = %v, want containing %q", err, testcase.then)
			}
		})
	}
}

func TestNewTaskWithCommonFlag(t *testing.T) {
	cf := common.CommonFlags{Profile: "default", ProfileStore: "/path/to/store"}

	t.Run("common flags are taken from positional parameters", func(t *testing.T) {
		called := false
		testee := common.NewTaskWithCommonFlag(func(
			ctx context.Context, logger *log.Logger, got common.CommonFlags,
			cl flarc.Commandline[struct{}], params []any,
		) error {
			called = true
			if got != cf {
				t.Errorf("common flags = %+v", got)
			}
			if len(params) != 1 || params[0] != "other" {
				t.Errorf("params = %+v", params)
			}
			if p := logger.Prefix(); p != "[leadline review list] " {
				t.Errorf("logger prefix = %q", p)
			}
			return nil
		})

		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "leadline review list", Stderr_: io.Discard},
			[]any{cf, "other"},
		)
		if err != nil || !called {
			t.Errorf("err = %v, called = %v", err, called)
		}
	})

	t.Run("without common flags, it fails", func(t *testing.T) {
		testee := common.NewTask(func(
			context.Context, *log.Logger, krest.Client, flarc.Commandline[struct{}], []any,
		) error {
			t.Error("task should not be called")
			return nil
		})
		err := testee(
			context.Background(),
			commandline.MockCommandline[struct{}]{Fullname_: "leadline dashboard", Stderr_: io.Discard},
			[]any{},
		)
		if err == nil {
			t.Error("expected error")
		}
		if errors.Is(err, flarc.ErrUsage) {
			t.Error("it is not usage error")
		}
	})
}
