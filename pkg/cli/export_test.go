package cli

import (
	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
	"github.com/m-mizutani/fontinst/pkg/infra/privilege"
)

// Test hooks for package-internal helpers
var (
	ResolveDir  = resolveDir
	WriteReport = writeReport
)

// SetPrompt swaps the interactive prompt and terminal detection, returning
// a restore function
func SetPrompt(interactive bool, fn func(title, placeholder string, value *string) error) func() {
	origPrompt, origInteractive := promptFunc, isInteractive
	promptFunc = fn
	isInteractive = func() bool { return interactive }
	return func() {
		promptFunc, isInteractive = origPrompt, origInteractive
	}
}

// SetElevated fixes the privilege check result, returning a restore function
func SetElevated(elevated bool) func() {
	orig := newPrivilegeChecker
	newPrivilegeChecker = func(bool) interfaces.PrivilegeChecker {
		return privilege.Static(elevated)
	}
	return func() { newPrivilegeChecker = orig }
}
