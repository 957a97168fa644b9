package direx

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TitleFunc produces a title string from a read-only view of the widget
// state; titles are re-resolved on every render.
type TitleFunc func(state StateView) string

// Theme maps the style roles of the explorer to tcell styles. A Theme is a
// value: the With* builders return a modified copy, so themes can be shared
// and derived without aliasing surprises.
type Theme struct {
	style              tcell.Style
	itemStyle          tcell.Style
	dirStyle           tcell.Style
	highlightItemStyle tcell.Style
	highlightDirStyle  tcell.Style
	titleStyle         tcell.Style

	border          bool
	highlightSymbol string

	titleTop    []TitleFunc
	titleBottom []TitleFunc
}

// DefaultTheme mirrors the stock look: white files, blue directories,
// bold highlight, full border, no title.
func DefaultTheme() Theme {
	return Theme{
		style:              tcell.StyleDefault,
		itemStyle:          tcell.StyleDefault.Foreground(tcell.ColorWhite),
		dirStyle:           tcell.StyleDefault.Foreground(tcell.ColorBlue),
		highlightItemStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true).Reverse(true),
		highlightDirStyle:  tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true).Reverse(true),
		titleStyle:         tcell.StyleDefault,
		border:             true,
	}
}

func (t Theme) WithStyle(s tcell.Style) Theme              { t.style = s; return t }
func (t Theme) WithItemStyle(s tcell.Style) Theme          { t.itemStyle = s; return t }
func (t Theme) WithDirStyle(s tcell.Style) Theme           { t.dirStyle = s; return t }
func (t Theme) WithHighlightItemStyle(s tcell.Style) Theme { t.highlightItemStyle = s; return t }
func (t Theme) WithHighlightDirStyle(s tcell.Style) Theme  { t.highlightDirStyle = s; return t }
func (t Theme) WithTitleStyle(s tcell.Style) Theme         { t.titleStyle = s; return t }

// WithBorder toggles the surrounding border (titles are drawn on it).
func (t Theme) WithBorder(border bool) Theme { t.border = border; return t }

// WithHighlightSymbol sets a marker drawn in front of the selected entry.
func (t Theme) WithHighlightSymbol(symbol string) Theme { t.highlightSymbol = symbol; return t }

// WithTitleTopFunc appends a generator for the top border title.
func (t Theme) WithTitleTopFunc(f TitleFunc) Theme {
	t.titleTop = appendTitleFunc(t.titleTop, f)
	return t
}

// WithTitleBottomFunc appends a generator for the bottom border title.
func (t Theme) WithTitleBottomFunc(f TitleFunc) Theme {
	t.titleBottom = appendTitleFunc(t.titleBottom, f)
	return t
}

// AddDefaultTitle adds the stock "Explorer - <cwd>" top title.
func (t Theme) AddDefaultTitle() Theme {
	return t.WithTitleTopFunc(func(state StateView) string {
		return fmt.Sprintf("Explorer - %s", state.Dir)
	})
}

func appendTitleFunc(funcs []TitleFunc, f TitleFunc) []TitleFunc {
	// Copy so derived themes never share backing arrays.
	out := make([]TitleFunc, len(funcs), len(funcs)+1)
	copy(out, funcs)
	return append(out, f)
}

func (t Theme) Style() tcell.Style              { return t.style }
func (t Theme) ItemStyle() tcell.Style          { return t.itemStyle }
func (t Theme) DirStyle() tcell.Style           { return t.dirStyle }
func (t Theme) HighlightItemStyle() tcell.Style { return t.highlightItemStyle }
func (t Theme) HighlightDirStyle() tcell.Style  { return t.highlightDirStyle }
func (t Theme) TitleStyle() tcell.Style         { return t.titleStyle }
func (t Theme) Border() bool                    { return t.border }
func (t Theme) HighlightSymbol() string         { return t.highlightSymbol }
