package files

import (
	"os"
	"time"
)

var _ os.FileInfo = (*FileInfo)(nil)

// FileInfo is the optional metadata of an in-memory DirEntry. All
// methods are safe on a nil receiver and return zero values, so callers
// can chain through entries that carry no metadata.
type FileInfo struct {
	DirEntry
	size    int64
	modTime time.Time
	sys     any
}

// FileInfoOption populates one metadata field.
type FileInfoOption func(*FileInfo)

func Size(size int64) FileInfoOption {
	return func(info *FileInfo) { info.size = size }
}

func ModTime(modTime time.Time) FileInfoOption {
	return func(info *FileInfo) { info.modTime = modTime }
}

func NewFileInfo(entry DirEntry, o ...FileInfoOption) *FileInfo {
	info := &FileInfo{DirEntry: entry}
	for _, opt := range o {
		opt(info)
	}
	return info
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.Type()
}

func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}

func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.isDir
}

func (f *FileInfo) Sys() any {
	if f == nil {
		return nil
	}
	return f.sys
}
