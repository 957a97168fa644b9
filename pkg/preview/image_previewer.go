package preview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var _ Previewer = (*ImagePreviewer)(nil)

// ImagePreviewer shows the format and dimensions of an image file. It does
// not render pixels, only the decoded config, so it stays cheap for large
// files.
type ImagePreviewer struct {
	*tview.TextView
}

func NewImagePreviewer() *ImagePreviewer {
	return &ImagePreviewer{
		TextView: tview.NewTextView().SetWrap(false),
	}
}

func (p *ImagePreviewer) Preview(path string) {
	meta, err := imageMeta(path)
	if err != nil {
		showError(p.TextView, "Failed to read image "+path+": "+err.Error())
		return
	}
	p.SetTextColor(tcell.ColorDefault)
	p.SetText(meta)
}

func imageMeta(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Format: %s\nWidth: %d\nHeight: %d",
		strings.ToUpper(format), cfg.Width, cfg.Height), nil
}
