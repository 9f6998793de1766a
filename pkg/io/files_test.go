package io_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	kio "github.com/opst/leadline/pkg/io"
)

func TestCreateAll(t *testing.T) {
	t.Run("it makes parent directories with the mode", func(t *testing.T) {
		defaultUmask := syscall.Umask(0)
		defer syscall.Umask(defaultUmask)

		root := t.TempDir()
		f, err := kio.CreateAll(filepath.Join(root, "profile", "nested", "profile.yaml"), 0o600, 0o700)
		if err != nil {
			t.Fatal(err)
		}
		f.Close()

		for _, d := range []string{"profile", filepath.Join("profile", "nested")} {
			st, err := os.Stat(filepath.Join(root, d))
			if err != nil || !st.IsDir() {
				t.Fatalf("%s is not a directory: %v", d, err)
			}
			if st.Mode().Perm() != 0o700 {
				t.Errorf("%s: mode = %v", d, st.Mode().Perm())
			}
		}
		st, err := os.Stat(filepath.Join(root, "profile", "nested", "profile.yaml"))
		if err != nil || !st.Mode().IsRegular() {
			t.Fatalf("file is not created: %v", err)
		}
		if st.Mode().Perm() != fs.FileMode(0o600) {
			t.Errorf("file mode = %v", st.Mode().Perm())
		}
	})

	t.Run("it truncates existing files", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(name, []byte("old content"), 0o644); err != nil {
			t.Fatal(err)
		}
		f, err := kio.CreateAll(name, 0o644, 0o755)
		if err != nil {
			t.Fatal(err)
		}
		f.WriteString("new")
		f.Close()

		got, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("content: %q", got)
		}
	})
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		filepath.Join("1", "001_tables.sql"):   "create table a();",
		filepath.Join("1", "002_function.sql"): "create function f();",
		filepath.Join("2", "001_alter.sql"):    "alter table a;",
	}
	for name, content := range files {
		p := filepath.Join(src, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dest := filepath.Join(t.TempDir(), "schema")
	if err := kio.CopyDir(src, dest); err != nil {
		t.Fatal(err)
	}

	got := map[string]string{}
	err := filepath.WalkDir(dest, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dest, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[rel] = string(content)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(files, got); diff != "" {
		t.Errorf("(-want, +got):\n%s", diff)
	}
}
