package direx

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Widget is the tview primitive of an explorer. It is a thin projection:
// all navigation lives in the Explorer, the widget only paints the
// current RenderableView into its rectangle.
type Widget struct {
	*tview.Box
	explorer *Explorer
}

// Widget returns a tview primitive rendering this explorer. The widget
// can be placed in any tview layout; it stays bound to the explorer and
// always paints its latest state.
func (e *Explorer) Widget() *Widget {
	return &Widget{
		Box:      tview.NewBox(),
		explorer: e,
	}
}

// Explorer returns the explorer this widget renders.
func (w *Widget) Explorer() *Explorer { return w.explorer }

func (w *Widget) Draw(screen tcell.Screen) {
	e := w.explorer
	theme := e.theme
	view := BuildView(e.StateView(), theme)

	_, bg, _ := theme.style.Decompose()
	titleFg, _, _ := theme.titleStyle.Decompose()
	w.Box.SetBorder(theme.border)
	w.Box.SetBackgroundColor(bg)
	w.Box.SetTitle(view.TitleTop)
	w.Box.SetTitleColor(titleFg)
	w.Box.SetTitleAlign(tview.AlignLeft)
	w.Box.DrawForSubclass(screen, w)

	x, y, width, height := w.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	// Feed real geometry back so paging and the scroll window track the
	// rectangle the host allocated.
	e.SetViewportHeight(height)
	scroll := e.ScrollOffset()

	symbol := theme.highlightSymbol
	spacer := strings.Repeat(" ", tview.TaggedStringWidth(tview.Escape(symbol)))

	for row := 0; row < height; row++ {
		i := scroll + row
		if i >= len(view.Lines) {
			break
		}
		line := view.Lines[i]
		text := tview.Escape(line.Text)
		if symbol != "" {
			if line.Selected {
				text = tview.Escape(symbol) + text
			} else {
				text = spacer + text
			}
		}
		if line.Selected {
			// Pad so the highlight background covers the whole row.
			if pad := width - tview.TaggedStringWidth(text); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
		}
		tview.PrintStyle(screen, text, x, y+row, width, tview.AlignLeft, line.Style)
	}

	if theme.border && view.TitleBottom != "" {
		bx, by, bw, bh := w.GetRect()
		if bw > 2 && bh > 1 {
			tview.PrintStyle(screen, tview.Escape(view.TitleBottom), bx+1, by+bh-1, bw-2, tview.AlignLeft, theme.titleStyle)
		}
	}
}
