// Package preview provides tview primitives that show the file currently
// selected in an explorer: syntax-highlighted text and image metadata.
package preview

import (
	"errors"
	"io"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/direx/pkg/fsutils"
)

// Previewer is a tview primitive that can render a preview for a file path.
type Previewer interface {
	tview.Primitive

	// Preview replaces the previewer's content with a preview of the file
	// at path. It must be called from the tview event loop.
	Preview(path string)
}

const maxPreviewBytes = 10 * 1024 // first 10KB is enough for a preview pane

// IsImage reports whether the file name has a known image extension.
func IsImage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}

func readHead(path string) ([]byte, error) {
	data, err := fsutils.ReadFileData(path, maxPreviewBytes)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}

func showError(v *tview.TextView, text string) {
	v.SetDynamicColors(false)
	v.SetText(text)
	v.SetTextColor(tcell.ColorRed)
}
