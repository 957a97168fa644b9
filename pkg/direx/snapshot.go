package direx

import (
	"os"
	"sort"
	"strings"
)

// Snapshot is the sorted listing of one directory. It keeps every entry,
// hidden ones included; the visible subsequence is derived from the
// show-hidden flag and recomputed without touching the filesystem.
type Snapshot struct {
	dir     string
	all     []File
	visible []File
}

func newSnapshot(dir string, children []os.DirEntry, showHidden bool) *Snapshot {
	all := make([]File, 0, len(children))
	for _, child := range children {
		all = append(all, newFile(child, dir))
	}
	sortFiles(all)
	s := &Snapshot{dir: dir, all: all}
	s.filter(showHidden)
	return s
}

// sortFiles orders directories before files, then by case-folded name.
// The fold is the byte-wise Unicode case fold of x/text, deterministic and
// locale independent; equal folds fall back to the raw name.
func sortFiles(all []File) {
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		if a.sortKey != b.sortKey {
			return a.sortKey < b.sortKey
		}
		return strings.Compare(a.name, b.name) < 0
	})
}

func (s *Snapshot) filter(showHidden bool) {
	if showHidden {
		s.visible = s.all
		return
	}
	visible := make([]File, 0, len(s.all))
	for _, f := range s.all {
		if !f.hidden {
			visible = append(visible, f)
		}
	}
	s.visible = visible
}

// Dir returns the directory this snapshot was read from.
func (s *Snapshot) Dir() string { return s.dir }

// Entries returns every entry, hidden ones included.
func (s *Snapshot) Entries() []File { return s.all }

// Visible returns the entries that pass the current hidden filter.
func (s *Snapshot) Visible() []File { return s.visible }
