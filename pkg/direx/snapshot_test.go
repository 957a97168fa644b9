package direx

import (
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/datatug/direx/pkg/files"
)

func snapshotNames(files []File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	return names
}

func TestNewSnapshot(t *testing.T) {
	t.Run("dirs_first_then_folded_names", func(t *testing.T) {
		s := newSnapshot("/d", []os.DirEntry{
			files.NewDirEntry("Zebra.txt", false),
			files.NewDirEntry("apple.txt", false),
			files.NewDirEntry("bin", true),
			files.NewDirEntry("Attic", true),
		}, true)
		assert.Equal(t, []string{"Attic", "bin", "apple.txt", "Zebra.txt"}, snapshotNames(s.Visible()))
	})

	t.Run("equal_folds_tie_break_on_raw_name", func(t *testing.T) {
		s := newSnapshot("/d", []os.DirEntry{
			files.NewDirEntry("readme", false),
			files.NewDirEntry("README", false),
			files.NewDirEntry("Readme", false),
		}, true)
		assert.Equal(t, []string{"README", "Readme", "readme"}, snapshotNames(s.Visible()))
	})

	t.Run("hidden_filter", func(t *testing.T) {
		s := newSnapshot("/d", []os.DirEntry{
			files.NewDirEntry(".config", true),
			files.NewDirEntry(".profile", false),
			files.NewDirEntry("readme", false),
		}, false)
		assert.Equal(t, []string{"readme"}, snapshotNames(s.Visible()))
		assert.Equal(t, 3, len(s.Entries()))

		s.filter(true)
		assert.Equal(t, []string{".config", ".profile", "readme"}, snapshotNames(s.Visible()))
		s.filter(false)
		assert.Equal(t, []string{"readme"}, snapshotNames(s.Visible()))
	})

	t.Run("empty", func(t *testing.T) {
		s := newSnapshot("/d", nil, false)
		assert.Equal(t, "/d", s.Dir())
		assert.Equal(t, 0, len(s.Entries()))
		assert.Equal(t, 0, len(s.Visible()))
	})
}

func TestFile(t *testing.T) {
	dir := newFile(files.NewDirEntry("docs", true), "/home")
	assert.Equal(t, "docs", dir.Name())
	assert.Equal(t, "/home/docs", dir.Path())
	assert.True(t, dir.IsDir())
	assert.False(t, dir.IsFile())
	assert.False(t, dir.IsHidden())
	assert.Equal(t, "docs/", dir.DisplayName())

	hidden := newFile(files.NewDirEntry(".env", false), "/home")
	assert.True(t, hidden.IsHidden())
	assert.True(t, hidden.IsFile())
	assert.Equal(t, ".env", hidden.DisplayName())
}
