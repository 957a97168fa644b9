package preview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTextPreviewerPreview(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("highlighted_source", func(t *testing.T) {
		name := filepath.Join(tmpDir, "main.go")
		assert.NoError(t, os.WriteFile(name, []byte("package main\n"), 0644))

		previewer := NewTextPreviewer()
		previewer.Preview(name)
		assert.Contains(t, previewer.GetText(true), "package main")
	})

	t.Run("plain_text", func(t *testing.T) {
		name := filepath.Join(tmpDir, "notes.direx-unknown")
		assert.NoError(t, os.WriteFile(name, []byte("just notes"), 0644))

		previewer := NewTextPreviewer()
		previewer.Preview(name)
		assert.Contains(t, previewer.GetText(true), "just notes")
	})

	t.Run("binary", func(t *testing.T) {
		name := filepath.Join(tmpDir, "blob.bin")
		assert.NoError(t, os.WriteFile(name, []byte{0xff, 0xfe, 0x00, 0x01}, 0644))

		previewer := NewTextPreviewer()
		previewer.Preview(name)
		assert.Contains(t, previewer.GetText(true), "<binary file>")
	})

	t.Run("read_error", func(t *testing.T) {
		previewer := NewTextPreviewer()
		previewer.Preview(filepath.Join(tmpDir, "does-not-exist"))
		assert.Contains(t, previewer.GetText(true), "Failed to read file")
	})
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("photo.PNG"))
	assert.True(t, IsImage("photo.jpeg"))
	assert.True(t, IsImage("anim.webp"))
	assert.False(t, IsImage("main.go"))
	assert.False(t, IsImage("photo"))
}
