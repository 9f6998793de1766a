package postgres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opst/leadline/pkg/utils/try"
)

func TestVersions(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"10", "2", "1", "draft"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "3"), []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	testee := &pgSchema{repository: root}
	vs := try.To(testee.versions()).OrFatal(t)

	got := []int{}
	for _, v := range vs {
		got = append(got, v.number)
	}
	want := []int{1, 2, 10}
	if len(got) != len(want) {
		t.Fatalf("versions: (actual, expected) = (%v, %v)", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("versions: (actual, expected) = (%v, %v)", got, want)
		}
	}
}
