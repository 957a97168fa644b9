package direx

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StateView is the read-only projection of an Explorer handed to title
// generators and the style resolver.
type StateView struct {
	Dir        string
	Files      []File // visible entries, sort order preserved
	Selected   int
	Scroll     int
	TotalCount int // including filtered-out hidden entries
	ShowHidden bool
}

// SelectedFile returns the selected entry, or nil for an empty listing.
func (v StateView) SelectedFile() *File {
	if len(v.Files) == 0 || v.Selected < 0 || v.Selected >= len(v.Files) {
		return nil
	}
	f := v.Files[v.Selected]
	return &f
}

// Line is one renderable row of the widget.
type Line struct {
	Text     string
	Selected bool
	Style    tcell.Style
}

// RenderableView is the ephemeral projection painted by the widget.
// It is rebuilt on every render and never persisted.
type RenderableView struct {
	Lines       []Line
	TitleTop    string
	TitleBottom string
	Selected    int
	Scroll      int
}

// BuildView resolves navigation state through a theme. Pure: no
// filesystem access, no mutation of either argument.
func BuildView(state StateView, theme Theme) RenderableView {
	lines := make([]Line, len(state.Files))
	for i, f := range state.Files {
		selected := i == state.Selected
		var style tcell.Style
		switch {
		case selected && f.IsDir():
			style = theme.highlightDirStyle
		case selected:
			style = theme.highlightItemStyle
		case f.IsDir():
			style = theme.dirStyle
		default:
			style = theme.itemStyle
		}
		lines[i] = Line{Text: f.DisplayName(), Selected: selected, Style: style}
	}
	return RenderableView{
		Lines:       lines,
		TitleTop:    resolveTitles(theme.titleTop, state),
		TitleBottom: resolveTitles(theme.titleBottom, state),
		Selected:    state.Selected,
		Scroll:      state.Scroll,
	}
}

func resolveTitles(funcs []TitleFunc, state StateView) string {
	if len(funcs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(funcs))
	for _, f := range funcs {
		if title := f(state); title != "" {
			parts = append(parts, title)
		}
	}
	return strings.Join(parts, " ")
}
