//go:build windows

package fontreg

import (
	"context"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

const defaultKind = KindNative

const fontsKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

const (
	wmFontChange    = 0x001D
	hwndBroadcast   = 0xFFFF
	smtoAbortIfHung = 0x0002
)

var (
	gdi32                   = windows.NewLazySystemDLL("gdi32.dll")
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procAddFontResourceW    = gdi32.NewProc("AddFontResourceW")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

func newPlatform(kind string, user bool) (interfaces.FontRegistrar, error) {
	switch kind {
	case KindNative:
		return &native{user: user}, nil
	case KindShell:
		return &shell{}, nil
	}
	return nil, unsupported(kind)
}

// native registers a font through GDI and the Fonts registry key, which is
// what the Fonts control panel does after copying the file
type native struct {
	user bool
}

func (r *native) Register(ctx context.Context, src, fontPath string) error {
	logger := ctxlog.From(ctx)

	p, err := windows.UTF16PtrFromString(fontPath)
	if err != nil {
		return goerr.Wrap(err, "invalid font path", goerr.V("path", fontPath))
	}
	if n, _, callErr := procAddFontResourceW.Call(uintptr(unsafe.Pointer(p))); n == 0 {
		return goerr.Wrap(callErr, "AddFontResourceW failed", goerr.V("path", fontPath))
	}

	root := registry.LOCAL_MACHINE
	data := filepath.Base(fontPath)
	if r.user {
		// per-user entries must carry the full path
		root = registry.CURRENT_USER
		data = fontPath
	}

	k, _, err := registry.CreateKey(root, fontsKey, registry.SET_VALUE)
	if err != nil {
		return goerr.Wrap(err, "failed to open fonts registry key")
	}
	defer k.Close()

	name := registryName(fontPath)
	if err := k.SetStringValue(name, data); err != nil {
		return goerr.Wrap(err, "failed to write fonts registry value", goerr.V("name", name))
	}

	var result uintptr
	_, _, _ = procSendMessageTimeoutW.Call(
		hwndBroadcast, wmFontChange, 0, 0,
		smtoAbortIfHung, 1000, uintptr(unsafe.Pointer(&result)),
	)

	logger.Debug("Registered font", "path", fontPath, "registry_name", name)
	return nil
}

func (r *native) CopiesFile() bool { return false }

// registryName derives the value name shown in the Fonts key
func registryName(fontPath string) string {
	base := filepath.Base(fontPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.EqualFold(ext, ".otf") {
		return stem + " (OpenType)"
	}
	return stem + " (TrueType)"
}
