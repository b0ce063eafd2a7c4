package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

var (
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

// writeReport prints a human readable summary of the run
func writeReport(w io.Writer, r *model.Report) {
	if len(r.Archives) == 0 {
		skipColor.Fprintf(w, "No archives found in %s\n", r.Dir)
	}

	for _, a := range r.Archives {
		fmt.Fprintf(w, "%s ", a.Archive.Name)
		switch a.State {
		case model.ArchiveDeleted:
			okColor.Fprintln(w, "[processed, deleted]")
		case model.ArchiveFontsInstalled:
			okColor.Fprintln(w, "[processed]")
		case model.ArchiveExtractionFailed:
			errColor.Fprintln(w, "[extraction failed]")
		default:
			errColor.Fprintf(w, "[%s]\n", a.State)
		}
		if a.Err != nil && a.State != model.ArchiveExtractionFailed {
			errColor.Fprintf(w, "  error: %v\n", a.Err)
		}

		for _, f := range a.Fonts {
			fmt.Fprintf(w, "  %-40s ", f.Font.Name)
			switch f.Status {
			case model.FontInstalled, model.FontReplaced:
				okColor.Fprintln(w, f.Status)
			case model.FontAlreadyInstalled:
				skipColor.Fprintln(w, f.Status)
			default:
				errColor.Fprintln(w, f.Status)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Fonts: %d installed, %d replaced, %d already present, %d permission denied, %d failed\n",
		r.FontCount(model.FontInstalled),
		r.FontCount(model.FontReplaced),
		r.FontCount(model.FontAlreadyInstalled),
		r.FontCount(model.FontPermissionDenied),
		r.FontCount(model.FontFailed),
	)
	dimColor.Fprintf(w, "Font directory: %s\n", r.FontDir)

	if r.CacheErr != nil {
		errColor.Fprintf(w, "Font cache refresh failed: %v\n", r.CacheErr)
	}

	okColor.Fprintln(w, "Processing complete!")
	fmt.Fprintln(w, "If needed, please restart your applications to see the new fonts.")
}
