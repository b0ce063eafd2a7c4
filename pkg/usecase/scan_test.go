package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/infra/archive"
	"github.com/m-mizutani/fontinst/pkg/usecase"
)

func TestScanArchives(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.zip", "A.ZIP", "fonts.tar.gz", "notes.txt"} {
		gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.zip"), []byte("x"), 0644))
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "folder.zip"), 0755))

	t.Run("default extensions, top level only", func(t *testing.T) {
		archives, err := usecase.ScanArchives(dir, archive.DefaultExtensions)
		gt.NoError(t, err)
		gt.A(t, archives).Length(2)
		gt.Value(t, archives[0].Name).Equal("A.ZIP")
		gt.Value(t, archives[0].Stem).Equal("A")
		gt.Value(t, archives[1].Name).Equal("b.zip")
		gt.Value(t, archives[1].Path).Equal(filepath.Join(dir, "b.zip"))
	})

	t.Run("tar extensions enabled", func(t *testing.T) {
		archives, err := usecase.ScanArchives(dir, archive.SupportedExtensions)
		gt.NoError(t, err)
		gt.A(t, archives).Length(3)
		gt.Value(t, archives[2].Name).Equal("fonts.tar.gz")
		gt.Value(t, archives[2].Stem).Equal("fonts")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := usecase.ScanArchives(filepath.Join(dir, "missing"), archive.DefaultExtensions)
		gt.Error(t, err)
	})
}

func TestFindFonts(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"Family/Regular.ttf",
		"Family/Bold.OTF",
		"Family/static/Thin.TtF",
		"LICENSE.txt",
		"preview.png",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		gt.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	fonts, err := usecase.FindFonts(root)
	gt.NoError(t, err)

	var names []string
	for _, f := range fonts {
		names = append(names, f.Name)
	}
	gt.Value(t, names).Equal([]string{"Bold.OTF", "Regular.ttf", "Thin.TtF"})
}
