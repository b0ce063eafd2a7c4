package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/term"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// promptFunc asks for a folder. Replaced in tests.
var promptFunc = func(title, placeholder string, value *string) error {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Run()
}

// isInteractive reports whether stdin and stdout are both terminals
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveDir picks the target folder: explicit value, else an interactive
// prompt, else the current working directory. The result is absolute.
func resolveDir(explicit string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get current directory")
	}

	dir := strings.TrimSpace(explicit)
	if dir == "" && isInteractive() {
		var input string
		err := promptFunc("Enter the folder path (press Enter for current directory)", cwd, &input)
		if errors.Is(err, huh.ErrUserAborted) {
			return "", goerr.New("folder selection cancelled")
		}
		if err != nil {
			return "", goerr.Wrap(err, "failed to read folder path")
		}
		dir = strings.TrimSpace(input)
	}
	if dir == "" {
		dir = cwd
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to expand folder path",
			goerr.V("dir", dir),
			goerr.T(model.ErrTagInvalidDir))
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve folder path",
			goerr.V("dir", dir),
			goerr.T(model.ErrTagInvalidDir))
	}
	return abs, nil
}
