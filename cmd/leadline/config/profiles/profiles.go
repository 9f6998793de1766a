package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hectane/go-acl"
	kio "github.com/opst/leadline/pkg/io"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrProfileInvalid = errors.New("leadline profile is invalid")

// ProfileStore maps profile names to profiles.
type ProfileStore map[string]*Profile

type Cert struct {
	// base64 encoded CA certificate in PEM
	CA string `yaml:"ca,omitempty"`
}

// Profile is where and as whom the command talks to the API.
type Profile struct {
	ApiRoot string `yaml:"apiRoot"`

	// bearer token given by login
	Token     string    `yaml:"token,omitempty"`
	ExpiresAt time.Time `yaml:"expiresAt,omitempty"`

	Cert Cert `yaml:"cert"`
}

func (p *Profile) Verify() error {
	if u, err := url.Parse(p.ApiRoot); err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: apiRoot is not URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" {
		bin, err := base64.StdEncoding.DecodeString(p.Cert.CA)
		if err != nil {
			return fmt.Errorf("%w: cert.ca is not base64", ErrProfileInvalid)
		}
		if blk, _ := pem.Decode(bin); blk == nil {
			return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
		}
	}
	return nil
}

// LoggedIn tells the profile has a token alive at now.
func (p *Profile) LoggedIn(now time.Time) bool {
	if p.Token == "" {
		return false
	}
	return p.ExpiresAt.IsZero() || now.Before(p.ExpiresAt)
}

func LoadProfileStore(path string) (ProfileStore, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: %w", ErrProfileStoreNotFound, path, err)
		}
		return nil, err
	}
	return Unmarshal(buf)
}

func Unmarshal(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Save writes the store to path. The file is readable only by the current user.
//
// The store is written next to path at first, then renamed.
func (ps ProfileStore) Save(path string) error {
	buf, err := yaml.Marshal(ps)
	if err != nil {
		return err
	}

	tmp := path + ".new"
	f, err := kio.CreateAll(tmp, os.FileMode(0600), os.FileMode(0700))
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	// on windows, the mode given at creation is not applied.
	if err := acl.Chmod(tmp, os.FileMode(0600)); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
