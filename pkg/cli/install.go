package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
	"github.com/m-mizutani/fontinst/pkg/infra/fontcache"
	"github.com/m-mizutani/fontinst/pkg/infra/fontreg"
	"github.com/m-mizutani/fontinst/pkg/infra/platform"
	"github.com/m-mizutani/fontinst/pkg/infra/privilege"
	"github.com/m-mizutani/fontinst/pkg/usecase"
)

func cmdInstall(configPath *string) *cli.Command {
	var installCfg config.Install

	return &cli.Command{
		Name:      "install",
		Aliases:   []string{"i"},
		Usage:     "Extract archives in a folder and install the fonts they contain",
		ArgsUsage: "[DIR]",
		Flags:     installCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			runID := uuid.NewString()
			logger := ctxlog.From(ctx).With("run_id", runID)
			ctx = ctxlog.With(ctx, logger)

			if *configPath != "" {
				file, err := config.LoadFile(*configPath)
				if err != nil {
					return err
				}
				if err := installCfg.Apply(file, c.IsSet); err != nil {
					return err
				}
			}
			if err := installCfg.Validate(); err != nil {
				return err
			}

			checker := newPrivilegeChecker(installCfg.User)
			if err := usecase.RequirePrivilege(checker); err != nil {
				return err
			}

			explicit := c.Args().First()
			if explicit == "" {
				explicit = installCfg.Dir
			}
			dir, err := resolveDir(explicit)
			if err != nil {
				return err
			}

			uc, err := buildInstall(&installCfg, checker, runID)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			report, err := uc.Run(ctx, dir)
			if err != nil {
				return err
			}

			writeReport(c.Root().Writer, report)
			return nil
		},
	}
}

// newPrivilegeChecker returns the checker for a system or per-user install
var newPrivilegeChecker = func(user bool) interfaces.PrivilegeChecker {
	if user {
		return privilege.Static(true)
	}
	return privilege.New()
}

// buildInstall wires infra backends into the install use case
func buildInstall(cfg *config.Install, checker interfaces.PrivilegeChecker, runID string) (interfaces.InstallUseCase, error) {
	fontDir := cfg.FontDir
	if fontDir == "" {
		d, err := platform.FontDir(cfg.User)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve font directory")
		}
		fontDir = d
	}

	registrar, err := fontreg.New(cfg.Registrar, cfg.User)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to set up font registrar", goerr.T(model.ErrTagConfig))
	}

	cache, err := fontcache.New(fontcache.Config{
		Kind:         cfg.Cache,
		ServiceName:  cfg.CacheService,
		StopCommand:  cfg.StopCommand(),
		StartCommand: cfg.StartCommand(),
		SettleDelay:  cfg.CacheSettleDelay,
		FontDir:      fontDir,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to set up font cache service", goerr.T(model.ErrTagConfig))
	}

	return usecase.NewInstall(
		fontDir,
		checker,
		archive.New(),
		registrar,
		cache,
		usecase.WithArchiveExtensions(cfg.NormalizedExtensions()),
		usecase.WithReplacePolicy(model.ReplacePolicy(cfg.Replace)),
		usecase.WithKeepArchives(cfg.KeepArchives),
		usecase.WithCacheRefresh(!cfg.NoCacheRefresh),
		usecase.WithStopTimeout(cfg.CacheStopTimeout),
		usecase.WithRunID(runID),
	), nil
}
