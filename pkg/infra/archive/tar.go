package archive

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type decompressor func(r io.Reader) (io.ReadCloser, error)

func gzipReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func zstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func extractTar(ctx context.Context, archivePath, destDir string, decompress decompressor) error {
	logger := ctxlog.From(ctx)

	f, err := os.Open(archivePath)
	if err != nil {
		return goerr.Wrap(err, "failed to open archive", goerr.V("path", archivePath))
	}
	defer f.Close()

	dr, err := decompress(f)
	if err != nil {
		return goerr.Wrap(err, "failed to create decompressor", goerr.V("path", archivePath))
	}
	defer dr.Close()

	tr := tar.NewReader(dr)
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "extraction interrupted", goerr.V("path", archivePath))
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read tar entry", goerr.V("path", archivePath))
		}

		destPath, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return goerr.Wrap(err, "failed to create directory", goerr.V("dir", destPath))
			}
		case tar.TypeReg:
			if err := writeFile(destPath, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return goerr.Wrap(err, "failed to extract file", goerr.V("file", hdr.Name))
			}
			count++
		default:
			logger.Debug("Skipping special tar entry", "name", hdr.Name, "type", hdr.Typeflag)
		}
	}

	logger.Debug("Extracted tar", "path", archivePath, "dest", destDir, "file_count", count)
	return nil
}
