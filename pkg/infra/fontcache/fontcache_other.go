//go:build !windows

package fontcache

import (
	"runtime"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

func newSCM(name string) (interfaces.FontCacheService, error) {
	return nil, goerr.New("service control manager is only available on Windows",
		goerr.V("service", name),
		goerr.V("os", runtime.GOOS))
}
