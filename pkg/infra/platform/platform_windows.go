//go:build windows

package platform

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sys/windows"
)

func systemFontDir() (string, error) {
	winDir, err := windows.GetWindowsDirectory()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve Windows directory")
	}
	return filepath.Join(winDir, "Fonts"), nil
}

func userFontDir() (string, error) {
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		return filepath.Join(local, "Microsoft", "Windows", "Fonts"), nil
	}
	return joinHome("AppData", "Local", "Microsoft", "Windows", "Fonts")
}
