package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger
	var configPath string

	flags := append(loggerCfg.Flags(), &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to a TOML configuration file",
		Destination: &configPath,
		Sources:     cli.EnvVars("FONTINST_CONFIG"),
	})

	app := &cli.Command{
		Name:           types.AppName,
		Usage:          "Extract font archives and install the fonts into the OS",
		Version:        types.Version,
		Flags:          flags,
		DefaultCommand: "install",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdInstall(&configPath),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		printFatal(os.Stderr, err)
		logger.Debug("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

// printFatal renders precondition failures as a plain message
func printFatal(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)

	switch {
	case goerr.HasTag(err, model.ErrTagPrivilege):
		red.Fprintln(w, "This tool requires administrative privileges to install fonts.")
		fmt.Fprintln(w, "Please run it as Administrator, or pass --user to install for the current user only.")
	case goerr.HasTag(err, model.ErrTagInvalidDir):
		red.Fprintln(w, "Invalid folder path!")
		fmt.Fprintln(w, err.Error())
	case goerr.HasTag(err, model.ErrTagConfig):
		red.Fprintln(w, "Invalid configuration:")
		fmt.Fprintln(w, err.Error())
	default:
		red.Fprintln(w, "Error:", err.Error())
	}
}
