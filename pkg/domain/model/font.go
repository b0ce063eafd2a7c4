package model

import (
	"path/filepath"
	"strings"
)

// FontExtensions lists recognised font file extensions (lower case)
var FontExtensions = []string{".ttf", ".otf"}

// IsFontFile reports whether name has a recognised font extension, ignoring case
func IsFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range FontExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FontFile is a font found inside an extracted archive
type FontFile struct {
	Path string // Path inside the extraction directory
	Name string // Base name, also the name used in the font directory
}

// NewFontFile builds a FontFile from its path
func NewFontFile(path string) FontFile {
	return FontFile{
		Path: path,
		Name: filepath.Base(path),
	}
}

// FontStatus is the per-file outcome of an install attempt
type FontStatus string

const (
	FontInstalled        FontStatus = "installed"
	FontAlreadyInstalled FontStatus = "already-installed"
	FontReplaced         FontStatus = "replaced"
	FontPermissionDenied FontStatus = "permission-denied"
	FontFailed           FontStatus = "failed"
)

// FontResult records what happened to one font file
type FontResult struct {
	Font   FontFile
	Dest   string // Destination path in the font directory
	Status FontStatus
	Err    error
}

// ReplacePolicy decides what happens when a font of the same name already exists
type ReplacePolicy string

const (
	// ReplaceSkip never touches an existing font, regardless of content
	ReplaceSkip ReplacePolicy = "skip"
	// ReplaceChanged overwrites an existing font only if its content differs
	ReplaceChanged ReplacePolicy = "changed"
)

// Valid reports whether p is a known policy
func (p ReplacePolicy) Valid() bool {
	switch p {
	case ReplaceSkip, ReplaceChanged:
		return true
	default:
		return false
	}
}
