package fontcache_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/infra/fontcache"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell commands")
	}
}

func TestNew(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		svc, err := fontcache.New(fontcache.Config{Kind: fontcache.KindNone})
		gt.NoError(t, err)
		ctx := context.Background()
		gt.NoError(t, svc.Stop(ctx))
		stopped, err := svc.Stopped(ctx)
		gt.NoError(t, err)
		gt.True(t, stopped)
		gt.NoError(t, svc.Start(ctx))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := fontcache.New(fontcache.Config{Kind: "systemd"})
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("unknown font cache service")
	})

	t.Run("scm outside windows", func(t *testing.T) {
		skipOnWindows(t)
		_, err := fontcache.New(fontcache.Config{Kind: fontcache.KindSCM})
		gt.Error(t, err)
	})
}

func TestCommand(t *testing.T) {
	skipOnWindows(t)
	ctx := context.Background()

	t.Run("reports stopped after settle delay", func(t *testing.T) {
		svc, err := fontcache.New(fontcache.Config{
			Kind:         fontcache.KindCommand,
			StopCommand:  []string{"sh", "-c", "exit 0"},
			StartCommand: []string{"sh", "-c", "exit 0"},
			SettleDelay:  10 * time.Millisecond,
		})
		gt.NoError(t, err)

		stopped, err := svc.Stopped(ctx)
		gt.NoError(t, err)
		gt.False(t, stopped)

		gt.NoError(t, svc.Stop(ctx))
		time.Sleep(20 * time.Millisecond)

		stopped, err = svc.Stopped(ctx)
		gt.NoError(t, err)
		gt.True(t, stopped)

		gt.NoError(t, svc.Start(ctx))
	})

	t.Run("failing command carries output", func(t *testing.T) {
		svc, err := fontcache.New(fontcache.Config{
			Kind:         fontcache.KindCommand,
			StopCommand:  []string{"sh", "-c", "echo access denied; exit 2"},
			StartCommand: []string{"sh", "-c", "exit 0"},
		})
		gt.NoError(t, err)

		err = svc.Stop(ctx)
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("command failed")
	})
}

func TestDefaultKind(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		gt.Value(t, fontcache.DefaultKind).Equal(fontcache.KindSCM)
	case "darwin":
		gt.Value(t, fontcache.DefaultKind).Equal(fontcache.KindNone)
	default:
		gt.Value(t, fontcache.DefaultKind).Equal(fontcache.KindFcCache)
	}
}
