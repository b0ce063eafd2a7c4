package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

// Supported archive extensions
const (
	ExtZip    = ".zip"
	ExtTarGz  = ".tar.gz"
	ExtTgz    = ".tgz"
	ExtTarZst = ".tar.zst"
)

// DefaultExtensions are the archive extensions scanned when nothing else is configured
var DefaultExtensions = []string{ExtZip}

// SupportedExtensions lists every extension Extract can handle
var SupportedExtensions = []string{ExtZip, ExtTarGz, ExtTgz, ExtTarZst}

// MatchExtension returns the supported extension that name ends with,
// compared case-insensitively. Longer extensions win (".tar.gz" over ".gz").
func MatchExtension(name string, exts []string) (string, bool) {
	lower := strings.ToLower(name)
	best := ""
	for _, ext := range exts {
		e := strings.ToLower(ext)
		if strings.HasSuffix(lower, e) && len(lower) > len(e) && len(e) > len(best) {
			best = e
		}
	}
	return best, best != ""
}

type extractor struct{}

// New creates an Extractor that picks the format from the file extension
func New() interfaces.Extractor {
	return &extractor{}
}

// Extract unpacks archivePath into destDir
func (x *extractor) Extract(ctx context.Context, archivePath, destDir string) error {
	ext, ok := MatchExtension(filepath.Base(archivePath), SupportedExtensions)
	if !ok {
		return goerr.New("unsupported archive format", goerr.V("path", archivePath))
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create extraction directory", goerr.V("dir", destDir))
	}

	switch ext {
	case ExtZip:
		return extractZip(ctx, archivePath, destDir)
	case ExtTarGz, ExtTgz:
		return extractTar(ctx, archivePath, destDir, gzipReader)
	case ExtTarZst:
		return extractTar(ctx, archivePath, destDir, zstdReader)
	}
	return goerr.New("unsupported archive format", goerr.V("path", archivePath))
}

// safeJoin resolves an entry name under destDir and rejects anything that
// would land outside of it
func safeJoin(destDir, name string) (string, error) {
	clean := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if clean == "" || !filepath.IsLocal(clean) {
		return "", goerr.New("invalid file path detected", goerr.V("file", name), goerr.V("dest", destDir))
	}

	destPath := filepath.Join(destDir, clean)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", goerr.New("invalid file path detected", goerr.V("file", name), goerr.V("dest", destPath))
	}
	return destPath, nil
}
