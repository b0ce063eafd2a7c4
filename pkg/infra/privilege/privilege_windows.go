//go:build windows

package privilege

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token is elevated (run as Administrator)
func (c *checker) IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
