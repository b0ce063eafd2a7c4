package config

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
)

// Install holds configuration of the install command
type Install struct {
	Dir               string
	FontDir           string
	User              bool
	Replace           string
	ArchiveExtensions []string
	Registrar         string
	KeepArchives      bool

	Cache            string
	CacheService     string
	CacheStopCmd     string
	CacheStartCmd    string
	CacheSettleDelay time.Duration
	CacheStopTimeout time.Duration
	NoCacheRefresh   bool

	// argv lists from the config file, which can express quoting
	cacheStopArgs  []string
	cacheStartArgs []string
}

// Flags returns CLI flags for install configuration
func (c *Install) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Folder containing font archives (prompted when omitted)",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("FONTINST_DIR"),
		},
		&cli.StringFlag{
			Name:        "font-dir",
			Usage:       "Destination font directory (default: the OS font directory)",
			Destination: &c.FontDir,
			Sources:     cli.EnvVars("FONTINST_FONT_DIR"),
		},
		&cli.BoolFlag{
			Name:        "user",
			Usage:       "Install into the per-user font directory; no elevation required",
			Destination: &c.User,
			Sources:     cli.EnvVars("FONTINST_USER"),
		},
		&cli.StringFlag{
			Name:        "replace",
			Usage:       "Policy for fonts that already exist (skip, changed)",
			Value:       string(model.ReplaceSkip),
			Destination: &c.Replace,
			Sources:     cli.EnvVars("FONTINST_REPLACE"),
		},
		&cli.StringSliceFlag{
			Name:        "archive-ext",
			Usage:       "Archive extension to scan for (.zip, .tar.gz, .tgz, .tar.zst); repeatable",
			Value:       []string{archive.ExtZip},
			Destination: &c.ArchiveExtensions,
			Sources:     cli.EnvVars("FONTINST_ARCHIVE_EXT"),
		},
		&cli.StringFlag{
			Name:        "registrar",
			Usage:       "Font registration backend (auto, native, shell, none)",
			Value:       "auto",
			Destination: &c.Registrar,
			Sources:     cli.EnvVars("FONTINST_REGISTRAR"),
		},
		&cli.BoolFlag{
			Name:        "keep-archives",
			Usage:       "Do not delete archives after processing",
			Destination: &c.KeepArchives,
			Sources:     cli.EnvVars("FONTINST_KEEP_ARCHIVES"),
		},
		&cli.StringFlag{
			Name:        "cache",
			Usage:       "Font cache backend (auto, scm, command, fc-cache, none)",
			Value:       "auto",
			Destination: &c.Cache,
			Sources:     cli.EnvVars("FONTINST_CACHE"),
		},
		&cli.StringFlag{
			Name:        "cache-service",
			Usage:       "Font cache service name",
			Value:       "FontCache",
			Destination: &c.CacheService,
			Sources:     cli.EnvVars("FONTINST_CACHE_SERVICE"),
		},
		&cli.StringFlag{
			Name:        "cache-stop-cmd",
			Usage:       "Stop command for the command cache backend",
			Destination: &c.CacheStopCmd,
			Sources:     cli.EnvVars("FONTINST_CACHE_STOP_CMD"),
		},
		&cli.StringFlag{
			Name:        "cache-start-cmd",
			Usage:       "Start command for the command cache backend",
			Destination: &c.CacheStartCmd,
			Sources:     cli.EnvVars("FONTINST_CACHE_START_CMD"),
		},
		&cli.DurationFlag{
			Name:        "cache-settle-delay",
			Usage:       "Delay after the stop command before starting (command backend)",
			Value:       time.Second,
			Destination: &c.CacheSettleDelay,
			Sources:     cli.EnvVars("FONTINST_CACHE_SETTLE_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "cache-stop-timeout",
			Usage:       "Maximum time to wait for the cache service to stop",
			Value:       10 * time.Second,
			Destination: &c.CacheStopTimeout,
			Sources:     cli.EnvVars("FONTINST_CACHE_STOP_TIMEOUT"),
		},
		&cli.BoolFlag{
			Name:        "no-cache-refresh",
			Usage:       "Skip restarting the font cache service",
			Destination: &c.NoCacheRefresh,
			Sources:     cli.EnvVars("FONTINST_NO_CACHE_REFRESH"),
		},
	}
}

// Validate checks values that flags cannot constrain themselves
func (c *Install) Validate() error {
	if !model.ReplacePolicy(c.Replace).Valid() {
		return goerr.New("invalid replace policy",
			goerr.V("replace", c.Replace),
			goerr.T(model.ErrTagConfig))
	}

	for _, ext := range c.ArchiveExtensions {
		if !isSupportedExtension(ext) {
			return goerr.New("unsupported archive extension",
				goerr.V("extension", ext),
				goerr.V("supported", archive.SupportedExtensions),
				goerr.T(model.ErrTagConfig))
		}
	}

	if c.CacheStopTimeout < 0 || c.CacheSettleDelay < 0 {
		return goerr.New("durations must not be negative", goerr.T(model.ErrTagConfig))
	}
	return nil
}

// NormalizedExtensions returns archive extensions lower-cased with a leading dot
func (c *Install) NormalizedExtensions() []string {
	exts := make([]string, 0, len(c.ArchiveExtensions))
	for _, ext := range c.ArchiveExtensions {
		exts = append(exts, normalizeExtension(ext))
	}
	return exts
}

// StopCommand returns the stop command argv for the command cache backend.
// Flag values are split on whitespace.
func (c *Install) StopCommand() []string {
	if c.CacheStopCmd != "" {
		return strings.Fields(c.CacheStopCmd)
	}
	return c.cacheStopArgs
}

// StartCommand returns the start command argv for the command cache backend
func (c *Install) StartCommand() []string {
	if c.CacheStartCmd != "" {
		return strings.Fields(c.CacheStartCmd)
	}
	return c.cacheStartArgs
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func isSupportedExtension(ext string) bool {
	n := normalizeExtension(ext)
	for _, s := range archive.SupportedExtensions {
		if n == s {
			return true
		}
	}
	return false
}
