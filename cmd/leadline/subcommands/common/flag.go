package common

import (
	"os"
	"path/filepath"
	"strings"
)

// CommonFlags are flags of all subcommands.
type CommonFlags struct {
	Profile      string `flag:"profile" help:"name of the profile to be used"`
	ProfileStore string `flag:"profile-store" help:"path to the profile store file"`
}

// ProfileFile is the name of the file selecting a profile for the directory and its descendants.
const ProfileFile = ".leadlineprofile"

const DefaultProfile = "default"

type detection struct {
	home string
}

type DetectionOption func(*detection) *detection

func WithHome(home string) DetectionOption {
	return func(d *detection) *detection {
		d.home = home
		return d
	}
}

// Flags detects default values of CommonFlags.
//
// The profile name is the first line of the nearest ProfileFile from the directory "from" up to the root,
// or DefaultProfile if there are none.
// The profile store is at ~/.leadline/profile.
func Flags(from string, opts ...DetectionOption) (CommonFlags, error) {
	d := &detection{}
	for _, o := range opts {
		d = o(d)
	}

	home := d.home
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	if abs, err := filepath.Abs(from); err == nil {
		from = abs
	}

	profile := DefaultProfile
	for dir := from; ; {
		candidate := filepath.Join(dir, ProfileFile)
		if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
			buf, err := os.ReadFile(candidate)
			if err != nil {
				return CommonFlags{}, err
			}
			first, _, _ := strings.Cut(string(buf), "\n")
			if p := strings.TrimSpace(first); p != "" {
				profile = p
			}
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: filepath.Join(home, ".leadline", "profile"),
	}, nil
}
