//go:build darwin

package platform

func systemFontDir() (string, error) {
	return "/Library/Fonts", nil
}

func userFontDir() (string, error) {
	return joinHome("Library", "Fonts")
}
