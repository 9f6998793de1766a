package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/opst/leadline/pkg/utils/try"
)

func TestFlags(t *testing.T) {
	t.Run("without profile file, default profile is used", func(t *testing.T) {
		root := t.TempDir()
		home := t.TempDir()

		got := try.To(common.Flags(root, common.WithHome(home))).OrFatal(t)
		want := common.CommonFlags{
			Profile:      common.DefaultProfile,
			ProfileStore: filepath.Join(home, ".leadline", "profile"),
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("the nearest profile file wins", func(t *testing.T) {
		root := t.TempDir()
		home := t.TempDir()
		deep := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(deep, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, common.ProfileFile), []byte("production\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "a", common.ProfileFile), []byte("  staging  \nignored\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got := try.To(common.Flags(deep, common.WithHome(home))).OrFatal(t)
		if got.Profile != "staging" {
			t.Errorf("profile = %s", got.Profile)
		}

		got = try.To(common.Flags(root, common.WithHome(home))).OrFatal(t)
		if got.Profile != "production" {
			t.Errorf("profile = %s", got.Profile)
		}
	})

	t.Run("empty profile file falls back to default", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, common.ProfileFile), []byte("\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got := try.To(common.Flags(root, common.WithHome(t.TempDir()))).OrFatal(t)
		if got.Profile != common.DefaultProfile {
			t.Errorf("profile = %s", got.Profile)
		}
	})
}
