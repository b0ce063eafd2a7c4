package model

// Report summarizes a whole run
type Report struct {
	RunID    string
	Dir      string // Directory that was scanned
	FontDir  string // Destination font directory
	Archives []ArchiveResult

	CacheRefreshed bool
	CacheErr       error
}

// FontCount returns the number of font results having the given status
func (r *Report) FontCount(status FontStatus) int {
	n := 0
	for _, a := range r.Archives {
		for _, f := range a.Fonts {
			if f.Status == status {
				n++
			}
		}
	}
	return n
}

// ArchiveCount returns the number of archives that ended in the given state
func (r *Report) ArchiveCount(state ArchiveState) int {
	n := 0
	for _, a := range r.Archives {
		if a.State == state {
			n++
		}
	}
	return n
}

// Changed reports whether at least one font was written to the font directory
func (r *Report) Changed() bool {
	return r.FontCount(FontInstalled)+r.FontCount(FontReplaced) > 0
}
