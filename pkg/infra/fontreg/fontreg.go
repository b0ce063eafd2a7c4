package fontreg

import (
	"context"
	"runtime"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

// Registrar kinds
const (
	KindAuto   = "auto"
	KindNative = "native"
	KindShell  = "shell"
	KindNone   = "none"
)

// New returns the FontRegistrar backend named by kind. user selects per-user
// registration where the backend distinguishes it.
func New(kind string, user bool) (interfaces.FontRegistrar, error) {
	if kind == "" || kind == KindAuto {
		kind = defaultKind
	}

	switch kind {
	case KindNone:
		return &noop{}, nil
	case KindNative, KindShell:
		return newPlatform(kind, user)
	default:
		return nil, goerr.New("unknown registrar", goerr.V("kind", kind))
	}
}

// noop relies on the font directory write alone. fontconfig and macOS
// pick new files up from the font directory without an explicit call.
type noop struct{}

func (r *noop) Register(ctx context.Context, src, dest string) error {
	return nil
}

func (r *noop) CopiesFile() bool { return false }

func unsupported(kind string) error {
	return goerr.New("registrar not supported on this platform",
		goerr.V("kind", kind),
		goerr.V("os", runtime.GOOS))
}
