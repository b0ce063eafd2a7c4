package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

func extractZip(ctx context.Context, archivePath, destDir string) error {
	logger := ctxlog.From(ctx)

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return goerr.Wrap(err, "failed to open zip", goerr.V("path", archivePath))
	}
	defer zr.Close()

	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	var totalSize uint64
	for _, file := range zr.File {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "extraction interrupted", goerr.V("path", archivePath))
		}
		if err := extractZipFile(file, destDir); err != nil {
			return goerr.Wrap(err, "failed to extract file", goerr.V("file", file.Name))
		}
		totalSize += file.UncompressedSize64
	}

	logger.Debug("Extracted zip",
		"path", archivePath,
		"dest", destDir,
		"file_count", len(zr.File),
		"total_size_bytes", totalSize,
	)
	return nil
}

// extractZipFile extracts a single entry to the destination directory
func extractZipFile(file *zip.File, destDir string) error {
	destPath, err := safeJoin(destDir, file.Name)
	if err != nil {
		return err
	}

	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("dir", destPath))
		}
		return nil
	}

	if !file.Mode().IsRegular() {
		// symlinks and other special entries are never fonts
		return nil
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in zip", goerr.V("file", file.Name))
	}
	defer rc.Close()

	return writeFile(destPath, rc, file.Mode().Perm())
}

// writeFile creates parent directories and copies r into path
func writeFile(path string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(path)))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm|0600)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", path))
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("path", path))
	}
	return nil
}
