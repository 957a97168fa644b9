package preview

import (
	"path"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/direx/pkg/chroma2tview"
)

var _ Previewer = (*TextPreviewer)(nil)

// TextPreviewer shows the head of a text file, syntax highlighted when a
// chroma lexer matches the file name.
type TextPreviewer struct {
	*tview.TextView
	styleName string
}

func NewTextPreviewer() *TextPreviewer {
	return &TextPreviewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
		styleName: "dracula",
	}
}

// SetStyleName changes the chroma style used for highlighting.
func (p *TextPreviewer) SetStyleName(name string) *TextPreviewer {
	p.styleName = name
	return p
}

func (p *TextPreviewer) Preview(filePath string) {
	data, err := readHead(filePath)
	if err != nil {
		showError(p.TextView, "Failed to read file "+filePath+": "+err.Error())
		return
	}
	if !utf8.Valid(data) {
		p.SetDynamicColors(false)
		p.SetTextColor(tcell.ColorDefault)
		p.SetText("<binary file>")
		return
	}

	text := string(data)
	colorized, matched, err := chroma2tview.ColorizeFile(path.Base(filePath), text, p.styleName)
	if err != nil {
		showError(p.TextView, "Failed to format file: "+err.Error())
		return
	}
	p.Clear()
	p.SetTextColor(tcell.ColorDefault)
	p.SetDynamicColors(matched)
	p.SetText(colorized)
}
