package files

import (
	"os"
	"strings"
)

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an in-memory os.DirEntry. Stores that list remote
// hierarchies use it to shape listings, and tests use it as a fixture.
type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

// NewDirEntry creates a DirEntry. The name is a bare entry name and
// must not contain a path separator. Info options are optional; without
// them Info() returns nil.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		panic("dir entry name can not have path: " + name)
	}
	entry := DirEntry{name: name, isDir: isDir}
	if len(o) > 0 {
		entry.info = NewFileInfo(entry, o...)
	}
	return entry
}

func (d DirEntry) Name() string { return d.name }

func (d DirEntry) IsDir() bool { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
