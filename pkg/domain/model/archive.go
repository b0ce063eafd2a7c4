package model

import (
	"path/filepath"
	"strings"
)

// ArchiveState represents the lifecycle position of an archive within a run
type ArchiveState string

const (
	ArchiveFound            ArchiveState = "found"
	ArchiveExtracted        ArchiveState = "extracted"
	ArchiveFontsInstalled   ArchiveState = "fonts-installed"
	ArchiveDeleted          ArchiveState = "deleted"
	ArchiveExtractionFailed ArchiveState = "extraction-failed"
)

// Archive is a container file found in the target directory
type Archive struct {
	Path string // Absolute path to the archive
	Name string // Base name including extension
	Stem string // Base name without archive extension, used for the extraction directory
}

// NewArchive builds an Archive from its path. ext is the matched archive
// extension (e.g. ".zip", ".tar.gz") and is stripped case-insensitively.
func NewArchive(path, ext string) Archive {
	name := filepath.Base(path)
	stem := name
	if len(ext) > 0 && len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		stem = name[:len(name)-len(ext)]
	}
	return Archive{
		Path: path,
		Name: name,
		Stem: stem,
	}
}

// ArchiveResult is the outcome of processing one archive
type ArchiveResult struct {
	Archive Archive
	State   ArchiveState
	Fonts   []FontResult
	Err     error // Extraction or deletion error, nil on full success
}
