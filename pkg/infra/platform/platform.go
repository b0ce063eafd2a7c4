// Package platform resolves OS specific font locations.
package platform

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mitchellh/go-homedir"
)

// FontDir returns the font directory to install into. user selects the
// per-user directory instead of the system wide one.
func FontDir(user bool) (string, error) {
	if user {
		return userFontDir()
	}
	return systemFontDir()
}

func homeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve home directory")
	}
	return home, nil
}

func joinHome(elem ...string) (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}
