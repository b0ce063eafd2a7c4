package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/zeebo/blake3"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/utils/safe"
)

// installFont copies one font into the font directory and registers it.
// It never returns an error: every failure is recorded in the result so
// the batch can go on.
func (uc *installUseCase) installFont(ctx context.Context, font model.FontFile) model.FontResult {
	logger := ctxlog.From(ctx)

	result := model.FontResult{
		Font: font,
		Dest: filepath.Join(uc.fontDir, font.Name),
	}

	err := safe.Run(ctx, "install font", func(ctx context.Context) error {
		status, err := uc.placeFont(ctx, font.Path, result.Dest)
		result.Status = status
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, fs.ErrPermission):
		result.Status = model.FontPermissionDenied
		result.Err = err
		logger.Warn("Permission denied: run as Administrator to install font",
			"font", font.Name,
			"error", err,
		)
		return result
	default:
		result.Status = model.FontFailed
		result.Err = err
		logger.Error("Failed to install font",
			"font", font.Name,
			"path", font.Path,
			"error", err,
		)
		return result
	}

	switch result.Status {
	case model.FontInstalled:
		logger.Info("Installed and registered font", "font", font.Name)
	case model.FontReplaced:
		logger.Info("Replaced and registered font with changed content", "font", font.Name)
	case model.FontAlreadyInstalled:
		logger.Info("Font already exists", "font", font.Name)
	}
	return result
}

func (uc *installUseCase) placeFont(ctx context.Context, src, dest string) (model.FontStatus, error) {
	_, err := os.Lstat(dest)
	switch {
	case err == nil:
		if uc.replace != model.ReplaceChanged {
			return model.FontAlreadyInstalled, nil
		}
		same, err := sameContent(src, dest)
		if err != nil {
			return model.FontFailed, err
		}
		if same {
			return model.FontAlreadyInstalled, nil
		}
		if err := uc.copyAndRegister(ctx, src, dest); err != nil {
			return model.FontFailed, err
		}
		return model.FontReplaced, nil

	case errors.Is(err, fs.ErrNotExist):
		if err := uc.copyAndRegister(ctx, src, dest); err != nil {
			return model.FontFailed, err
		}
		return model.FontInstalled, nil

	default:
		return model.FontFailed, goerr.Wrap(err, "failed to stat destination", goerr.V("dest", dest))
	}
}

func (uc *installUseCase) copyAndRegister(ctx context.Context, src, dest string) error {
	if !uc.registrar.CopiesFile() {
		if err := copyFile(src, dest); err != nil {
			return err
		}
		if err := uc.registrar.Register(ctx, src, dest); err != nil {
			return goerr.Wrap(err, "failed to register font", goerr.V("dest", dest))
		}
		return nil
	}

	// the registrar writes dest itself and does not overwrite an existing file
	if err := os.Remove(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove previous font", goerr.V("dest", dest))
	}
	if err := uc.registrar.Register(ctx, src, dest); err != nil {
		return goerr.Wrap(err, "failed to register font", goerr.V("src", src), goerr.V("dest", dest))
	}
	if _, err := os.Stat(dest); err != nil {
		return goerr.Wrap(err, "font was not placed by registrar", goerr.V("dest", dest))
	}
	return nil
}

// copyFile writes src to a temporary file next to dest and renames it into
// place, so dest is never observed half written
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open font", goerr.V("src", src))
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".fontinst-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create file in font directory", goerr.V("dir", filepath.Dir(dest)))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to copy font", goerr.V("src", src), goerr.V("dest", dest))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close font file", goerr.V("dest", dest))
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return goerr.Wrap(err, "failed to set font permissions", goerr.V("dest", dest))
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return goerr.Wrap(err, "failed to move font into place", goerr.V("dest", dest))
	}
	return nil
}

func sameContent(a, b string) (bool, error) {
	da, err := fileDigest(a)
	if err != nil {
		return false, err
	}
	db, err := fileDigest(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(da, db), nil
}

func fileDigest(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file for hashing", goerr.V("path", path))
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, goerr.Wrap(err, "failed to hash file", goerr.V("path", path))
	}
	return h.Sum(nil), nil
}
