package usecase

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
)

// ScanArchives lists archives in the top level of dir whose name ends with
// one of exts (case-insensitive). Subdirectories are not searched. The
// result is ordered by file name.
func ScanArchives(dir string, exts []string) ([]model.Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read directory", goerr.V("dir", dir))
	}

	var archives []model.Archive
	for _, entry := range entries {
		ext, ok := archive.MatchExtension(entry.Name(), exts)
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(entry, path) {
			continue
		}
		archives = append(archives, model.NewArchive(path, ext))
	}

	return archives, nil
}

func isRegularFile(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FindFonts walks root recursively and returns every file with a
// recognised font extension, in lexical order
func FindFonts(root string) ([]model.FontFile, error) {
	var fonts []model.FontFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && model.IsFontFile(d.Name()) {
			fonts = append(fonts, model.NewFontFile(path))
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk extracted files", goerr.V("dir", root))
	}
	return fonts, nil
}
