package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// File is the optional TOML configuration file. Every value is a pointer
// so that an absent key can be told apart from a zero value.
type File struct {
	Install FileInstall `toml:"install"`
}

// FileInstall mirrors the install flags
type FileInstall struct {
	Dir               *string   `toml:"dir"`
	FontDir           *string   `toml:"font_dir"`
	User              *bool     `toml:"user"`
	Replace           *string   `toml:"replace"`
	ArchiveExtensions []string  `toml:"archive_extensions"`
	Registrar         *string   `toml:"registrar"`
	KeepArchives      *bool     `toml:"keep_archives"`
	Cache             FileCache `toml:"cache"`
}

// FileCache mirrors the cache flags
type FileCache struct {
	Kind         *string  `toml:"kind"`
	Service      *string  `toml:"service"`
	StopCommand  []string `toml:"stop_command"`
	StartCommand []string `toml:"start_command"`
	SettleDelay  *string  `toml:"settle_delay"`
	StopTimeout  *string  `toml:"stop_timeout"`
	Refresh      *bool    `toml:"refresh"`
}

// LoadFile reads and strictly decodes a TOML configuration file
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfig))
	}
	defer f.Close()

	var cfg File
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfig))
	}
	return &cfg, nil
}

// Apply copies file values into c for every flag that isSet reports as not
// given on the command line or environment
func (c *Install) Apply(f *File, isSet func(name string) bool) error {
	in := f.Install

	setString(&c.Dir, in.Dir, "dir", isSet)
	setString(&c.FontDir, in.FontDir, "font-dir", isSet)
	setBool(&c.User, in.User, "user", isSet)
	setString(&c.Replace, in.Replace, "replace", isSet)
	setString(&c.Registrar, in.Registrar, "registrar", isSet)
	setBool(&c.KeepArchives, in.KeepArchives, "keep-archives", isSet)
	if len(in.ArchiveExtensions) > 0 && !isSet("archive-ext") {
		c.ArchiveExtensions = in.ArchiveExtensions
	}

	setString(&c.Cache, in.Cache.Kind, "cache", isSet)
	setString(&c.CacheService, in.Cache.Service, "cache-service", isSet)
	if len(in.Cache.StopCommand) > 0 && !isSet("cache-stop-cmd") {
		c.cacheStopArgs = in.Cache.StopCommand
	}
	if len(in.Cache.StartCommand) > 0 && !isSet("cache-start-cmd") {
		c.cacheStartArgs = in.Cache.StartCommand
	}
	if in.Cache.Refresh != nil && !isSet("no-cache-refresh") {
		c.NoCacheRefresh = !*in.Cache.Refresh
	}

	if err := setDuration(&c.CacheSettleDelay, in.Cache.SettleDelay, "cache-settle-delay", isSet); err != nil {
		return err
	}
	if err := setDuration(&c.CacheStopTimeout, in.Cache.StopTimeout, "cache-stop-timeout", isSet); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, v *string, flag string, isSet func(string) bool) {
	if v != nil && !isSet(flag) {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool, flag string, isSet func(string) bool) {
	if v != nil && !isSet(flag) {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, flag string, isSet func(string) bool) error {
	if v == nil || isSet(flag) {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return goerr.Wrap(err, "invalid duration in config file",
			goerr.V("key", flag),
			goerr.V("value", *v),
			goerr.T(model.ErrTagConfig))
	}
	*dst = d
	return nil
}
