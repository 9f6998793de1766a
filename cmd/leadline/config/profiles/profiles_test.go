package profiles_test

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/opst/leadline/cmd/leadline/config/profiles"
	"github.com/opst/leadline/pkg/utils/try"
)

const caPEM = `-----BEGIN CERTIFICATE-----
MIIBhTCCASugAwIBAgIQIRi6zePL6mKjOipn+dNuaTAKBggqhkjOPQQDAjASMRAw
DgYDVQQKEwdBY21lIENvMB4XDTE3MTAyMDE5NDMwNloXDTE4MTAyMDE5NDMwNlow
EjEQMA4GA1UEChMHQWNtZSBDbzBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IABD0d
7VNhbWvZLWPuj/RtHFjvtJBEwOkhbN/BnnE8rnZR8+sbwnc/KhCk3FhnpHZnQz7B
5aETbbIgmuvewdjvSBSjYzBhMA4GA1UdDwEB/wQEAwICpDATBgNVHSUEDDAKBggr
BgEFBQcDATAPBgNVHRMBAf8EBTADAQH/MCkGA1UdEQQiMCCCDmxvY2FsaG9zdDo1
NDUzgg4xMjcuMC4wLjE6NTQ1MzAKBggqhkjOPQQDAgNIADBFAiEA2zpJEPQyz6/l
Wf86aX6PepsntZv2GYlA5UpabfT2EZICICpJ5h/iI+i341gBmLiAFQOyTDT+/wQc
6MF9+Yw1Yy0t
-----END CERTIFICATE-----
`

func TestProfile_Verify(t *testing.T) {
	for name, testcase := range map[string]struct {
		when profiles.Profile
		then error
	}{
		"absolute URL is valid": {
			when: profiles.Profile{ApiRoot: "https://leadline.example.com/api"},
		},
		"with PEM CA is valid": {
			when: profiles.Profile{
				ApiRoot: "https://leadline.example.com/api",
				Cert:    profiles.Cert{CA: base64.StdEncoding.EncodeToString([]byte(caPEM))},
			},
		},
		"relative URL is invalid": {
			when: profiles.Profile{ApiRoot: "/api"},
			then: profiles.ErrProfileInvalid,
		},
		"CA not in base64 is invalid": {
			when: profiles.Profile{ApiRoot: "https://leadline.example.com/api", Cert: profiles.Cert{CA: "!!"}},
			then: profiles.ErrProfileInvalid,
		},
		"CA not in PEM is invalid": {
			when: profiles.Profile{
				ApiRoot: "https://leadline.example.com/api",
				Cert:    profiles.Cert{CA: base64.StdEncoding.EncodeToString([]byte("not a cert"))},
			},
			then: profiles.ErrProfileInvalid,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if err := testcase.when.Verify(); !errors.Is(err, testcase.then) {
				t.Errorf("Verify() = %v, want %v", err, testcase.then)
			}
		})
	}
}

func TestProfile_LoggedIn(t *testing.T) {
	now := try.To(time.Parse(time.RFC3339, "2024-05-01T10:00:00+09:00")).OrFatal(t)

	for name, testcase := range map[string]struct {
		when profiles.Profile
		then bool
	}{
		"no token":             {when: profiles.Profile{}, then: false},
		"token without expiry": {when: profiles.Profile{Token: "t"}, then: true},
		"token alive":          {when: profiles.Profile{Token: "t", ExpiresAt: now.Add(time.Minute)}, then: true},
		"token expired":        {when: profiles.Profile{Token: "t", ExpiresAt: now}, then: false},
	} {
		t.Run(name, func(t *testing.T) {
			if got := testcase.when.LoggedIn(now); got != testcase.then {
				t.Errorf("LoggedIn() = %v, want %v", got, testcase.then)
			}
		})
	}
}

func TestProfileStore(t *testing.T) {
	t.Run("missing store is reported", func(t *testing.T) {
		_, err := profiles.LoadProfileStore(filepath.Join(t.TempDir(), "profile"))
		if !errors.Is(err, profiles.ErrProfileStoreNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("os.ErrNotExist is not wrapped: %v", err)
		}
	})

	t.Run("saved store can be loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".leadline", "profile")
		expiresAt := try.To(time.Parse(time.RFC3339, "2024-05-01T22:00:00Z")).OrFatal(t)

		store := profiles.ProfileStore{
			"default": {ApiRoot: "https://leadline.example.com/api", Token: "tok", ExpiresAt: expiresAt},
			"staging": {ApiRoot: "http://localhost:8080/api"},
		}
		if err := store.Save(path); err != nil {
			t.Fatal(err)
		}

		if runtime.GOOS != "windows" {
			stat := try.To(os.Stat(path)).OrFatal(t)
			if perm := stat.Mode().Perm(); perm != 0600 {
				t.Errorf("permission = %o", perm)
			}
		}
		if _, err := os.Stat(path + ".new"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("temporary file is left: %v", err)
		}

		loaded := try.To(profiles.LoadProfileStore(path)).OrFatal(t)
		if diff := cmp.Diff(store, loaded); diff != "" {
			t.Errorf("loaded store (-saved +loaded):\n%s", diff)
		}
	})

	t.Run("loose permission of existing store is tightened", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		path := filepath.Join(t.TempDir(), "profile")
		if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
			t.Fatal(err)
		}
		store := profiles.ProfileStore{"default": {ApiRoot: "https://leadline.example.com/api"}}
		if err := store.Save(path); err != nil {
			t.Fatal(err)
		}
		stat := try.To(os.Stat(path)).OrFatal(t)
		if perm := stat.Mode().Perm(); perm != 0600 {
			t.Errorf("permission = %o", perm)
		}
	})
}
