package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/m-mizutani/gt"
	"github.com/mitchellh/go-homedir"

	"github.com/m-mizutani/fontinst/pkg/cli"
)

func TestResolveDir(t *testing.T) {
	cwd, err := os.Getwd()
	gt.NoError(t, err)

	t.Run("explicit path is used without prompting", func(t *testing.T) {
		prompted := false
		defer cli.SetPrompt(true, func(_, _ string, _ *string) error {
			prompted = true
			return nil
		})()

		dir := t.TempDir()
		got, err := cli.ResolveDir(dir)
		gt.NoError(t, err)
		gt.Value(t, got).Equal(dir)
		gt.False(t, prompted)
	})

	t.Run("non interactive falls back to cwd", func(t *testing.T) {
		defer cli.SetPrompt(false, nil)()

		got, err := cli.ResolveDir("")
		gt.NoError(t, err)
		gt.Value(t, got).Equal(cwd)
	})

	t.Run("prompt answer is used", func(t *testing.T) {
		dir := t.TempDir()
		defer cli.SetPrompt(true, func(_, placeholder string, value *string) error {
			gt.Value(t, placeholder).Equal(cwd)
			*value = "  " + dir + "  "
			return nil
		})()

		got, err := cli.ResolveDir("")
		gt.NoError(t, err)
		gt.Value(t, got).Equal(dir)
	})

	t.Run("empty prompt answer means cwd", func(t *testing.T) {
		defer cli.SetPrompt(true, func(_, _ string, _ *string) error { return nil })()

		got, err := cli.ResolveDir("")
		gt.NoError(t, err)
		gt.Value(t, got).Equal(cwd)
	})

	t.Run("aborted prompt", func(t *testing.T) {
		defer cli.SetPrompt(true, func(_, _ string, _ *string) error { return huh.ErrUserAborted })()

		_, err := cli.ResolveDir("")
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("cancelled")
	})

	t.Run("home directory is expanded", func(t *testing.T) {
		home, err := homedir.Dir()
		gt.NoError(t, err)

		got, err := cli.ResolveDir("~/Downloads")
		gt.NoError(t, err)
		gt.Value(t, got).Equal(filepath.Join(home, "Downloads"))
	})
}
