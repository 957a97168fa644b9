package direx

import (
	"os"
	"path"
	"strings"

	"golang.org/x/text/cases"
)

// File is one filesystem node of the current listing.
// Immutable: constructed during a directory read and replaced wholesale
// when the directory is re-read.
type File struct {
	name    string
	path    string
	isDir   bool
	hidden  bool
	sortKey string
}

func newFile(entry os.DirEntry, dir string) File {
	name := entry.Name()
	return File{
		name:    name,
		path:    path.Join(dir, name),
		isDir:   entry.IsDir(),
		hidden:  strings.HasPrefix(name, "."),
		sortKey: cases.Fold().String(name),
	}
}

// Name returns the bare entry name without any path.
func (f File) Name() string { return f.name }

// Path returns the full path of the entry within its store.
func (f File) Path() string { return f.path }

func (f File) IsDir() bool { return f.isDir }

func (f File) IsFile() bool { return !f.isDir }

// IsHidden reports the dot-name convention.
func (f File) IsHidden() bool { return f.hidden }

// DisplayName is the name as shown in the widget: directories carry a
// trailing slash.
func (f File) DisplayName() string {
	if f.isDir {
		return f.name + "/"
	}
	return f.name
}
