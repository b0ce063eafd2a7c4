package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "INFO"},
		{level: "Warn"},
		{level: "error"},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := &config.Logger{Level: tt.level, Output: &bytes.Buffer{}}
			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
				return
			}
			gt.NoError(t, err)
			gt.Value(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_Handler(t *testing.T) {
	t.Run("json writes one object per record", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", JSON: true, Output: &buf}
		result, err := logger.Configure()
		gt.NoError(t, err)

		result.Info("Installed and registered font", "font", "Inter-Regular.ttf")

		var record map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		gt.Value(t, record["msg"]).Equal("Installed and registered font")
		gt.Value(t, record["font"]).Equal("Inter-Regular.ttf")
	})

	t.Run("console is not json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", Output: &buf}
		result, err := logger.Configure()
		gt.NoError(t, err)

		result.Info("Processing archive", "archive", "inter.zip")

		gt.String(t, buf.String()).Contains("Processing archive")
		gt.String(t, buf.String()).Contains("inter.zip")
		var record map[string]any
		gt.Error(t, json.Unmarshal(buf.Bytes(), &record))
	})

	t.Run("records below level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "warn", JSON: true, Output: &buf}
		result, err := logger.Configure()
		gt.NoError(t, err)

		result.Info("Font already exists")
		gt.Value(t, buf.Len()).Equal(0)

		result.Warn("Permission denied")
		gt.String(t, buf.String()).Contains("Permission denied")
	})
}

func TestLogger_Configure_DefaultsToStderr(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	gt.NoError(t, err)
	defer f.Close()

	orig := os.Stderr
	os.Stderr = f
	defer func() { os.Stderr = orig }()

	logger := &config.Logger{Level: "info", JSON: true}
	result, err := logger.Configure()
	gt.NoError(t, err)
	result.Info("Deleted processed archive")

	data, err := os.ReadFile(f.Name())
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("Deleted processed archive")
}

func TestLogger_Flags(t *testing.T) {
	run := func(t *testing.T, args ...string) config.Logger {
		t.Helper()
		var logger config.Logger
		cmd := &cli.Command{
			Name:   "fontinst",
			Flags:  logger.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error { return nil },
		}
		gt.NoError(t, cmd.Run(context.Background(), append([]string{"fontinst"}, args...)))
		return logger
	}

	t.Run("defaults", func(t *testing.T) {
		logger := run(t)
		gt.Value(t, logger.Level).Equal("info")
		gt.False(t, logger.JSON)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("FONTINST_LOG_LEVEL", "debug")
		t.Setenv("FONTINST_LOG_JSON", "true")
		logger := run(t)
		gt.Value(t, logger.Level).Equal("debug")
		gt.True(t, logger.JSON)
	})

	t.Run("flags", func(t *testing.T) {
		logger := run(t, "--log-level", "error", "--log-json")
		gt.Value(t, logger.Level).Equal("error")
		gt.True(t, logger.JSON)
	})
}
