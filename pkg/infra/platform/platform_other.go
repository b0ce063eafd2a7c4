//go:build !windows && !darwin

package platform

func systemFontDir() (string, error) {
	return "/usr/local/share/fonts", nil
}

func userFontDir() (string, error) {
	return joinHome(".local", "share", "fonts")
}
