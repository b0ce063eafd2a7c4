//go:build windows

package fontreg

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/m-mizutani/goerr/v2"
)

// copyHereNoUI suppresses progress UI and answers "Yes to All"
const copyHereNoUI = 16

const sFalse = 1

// shell hands the extracted font to the Fonts shell folder via
// Shell.Application. The folder's install handler copies and registers it.
type shell struct{}

func (r *shell) CopiesFile() bool { return true }

func (r *shell) Register(ctx context.Context, src, dest string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		oleErr, ok := err.(*ole.OleError)
		if !ok || oleErr.Code() != sFalse {
			return goerr.Wrap(err, "failed to initialize COM")
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return goerr.Wrap(err, "failed to create Shell.Application")
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return goerr.Wrap(err, "failed to query Shell.Application dispatch")
	}
	defer app.Release()

	fontDir := filepath.Dir(dest)
	ns, err := oleutil.CallMethod(app, "NameSpace", fontDir)
	if err != nil {
		return goerr.Wrap(err, "failed to open font folder namespace", goerr.V("dir", fontDir))
	}
	folder := ns.ToIDispatch()
	if folder == nil {
		return goerr.New("font folder namespace is not available", goerr.V("dir", fontDir))
	}
	defer folder.Release()

	if _, err := oleutil.CallMethod(folder, "CopyHere", src, copyHereNoUI); err != nil {
		return goerr.Wrap(err, "CopyHere failed", goerr.V("src", src), goerr.V("dir", fontDir))
	}
	return nil
}
