//go:build !windows

package fontreg

import "github.com/m-mizutani/fontinst/pkg/domain/interfaces"

const defaultKind = KindNone

func newPlatform(kind string, user bool) (interfaces.FontRegistrar, error) {
	return nil, unsupported(kind)
}
