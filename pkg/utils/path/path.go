package path

import (
	"os"
	"path/filepath"
	"strings"
)

const tilde = "~" + string(filepath.Separator)

// Resolve makes pathstring absolute. A leading "~/" is expanded to the user's home directory.
func Resolve(pathstring string) (string, error) {
	if pathstring == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(pathstring, tilde) {
		homedir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		pathstring = filepath.Join(homedir, pathstring[len(tilde):])
	}
	return filepath.Abs(pathstring)
}
