package fontcache

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

// Service kinds
const (
	KindAuto    = "auto"
	KindSCM     = "scm"
	KindCommand = "command"
	KindFcCache = "fc-cache"
	KindNone    = "none"
)

// DefaultServiceName is the Windows font cache service
const DefaultServiceName = "FontCache"

// Config selects and parameterizes a FontCacheService backend
type Config struct {
	Kind         string
	ServiceName  string        // Windows service name for scm and the default command pair
	StopCommand  []string      // command backend; defaults to net stop <service>
	StartCommand []string      // command backend; defaults to net start <service>
	SettleDelay  time.Duration // command backend; wait after the stop command before reporting stopped
	FontDir      string        // fc-cache backend; directory to rescan
}

// New returns the FontCacheService backend described by cfg
func New(cfg Config) (interfaces.FontCacheService, error) {
	kind := cfg.Kind
	if kind == "" || kind == KindAuto {
		kind = defaultKind
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	switch kind {
	case KindNone:
		return &noop{}, nil
	case KindCommand:
		return newCommand(cfg), nil
	case KindFcCache:
		return &fcCache{fontDir: cfg.FontDir}, nil
	case KindSCM:
		return newSCM(cfg.ServiceName)
	default:
		return nil, goerr.New("unknown font cache service", goerr.V("kind", kind))
	}
}

type noop struct{}

func (s *noop) Stop(ctx context.Context) error            { return nil }
func (s *noop) Stopped(ctx context.Context) (bool, error) { return true, nil }
func (s *noop) Start(ctx context.Context) error           { return nil }

// command drives the service with an external stop/start command pair
type command struct {
	stop    []string
	start   []string
	settle  time.Duration
	stopped time.Time
}

func newCommand(cfg Config) *command {
	svc := strings.ToLower(cfg.ServiceName)
	c := &command{
		stop:   cfg.StopCommand,
		start:  cfg.StartCommand,
		settle: cfg.SettleDelay,
	}
	if len(c.stop) == 0 {
		c.stop = []string{"net", "stop", svc}
	}
	if len(c.start) == 0 {
		c.start = []string{"net", "start", svc}
	}
	return c
}

func (s *command) Stop(ctx context.Context) error {
	if err := runCommand(ctx, s.stop); err != nil {
		return err
	}
	s.stopped = time.Now()
	return nil
}

// Stopped has no way to query the service, so it trusts the stop command
// and only waits out the settle delay
func (s *command) Stopped(ctx context.Context) (bool, error) {
	if s.stopped.IsZero() {
		return false, nil
	}
	return time.Since(s.stopped) >= s.settle, nil
}

func (s *command) Start(ctx context.Context) error {
	return runCommand(ctx, s.start)
}

// fcCache rebuilds the fontconfig cache. There is no service to stop.
type fcCache struct {
	fontDir string
}

func (s *fcCache) Stop(ctx context.Context) error            { return nil }
func (s *fcCache) Stopped(ctx context.Context) (bool, error) { return true, nil }

func (s *fcCache) Start(ctx context.Context) error {
	args := []string{"fc-cache", "-f"}
	if s.fontDir != "" {
		args = append(args, s.fontDir)
	}
	return runCommand(ctx, args)
}

func runCommand(ctx context.Context, args []string) error {
	logger := ctxlog.From(ctx)
	logger.Debug("Running command", "args", args)

	out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return goerr.Wrap(err, "command failed",
			goerr.V("args", args),
			goerr.V("output", strings.TrimSpace(string(out))))
	}
	return nil
}
