package direx

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/gdamore/tcell/v2"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	assert.True(t, theme.Border())
	assert.Equal(t, "", theme.HighlightSymbol())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorWhite), theme.ItemStyle())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue), theme.DirStyle())
}

func TestThemeBuilders(t *testing.T) {
	base := DefaultTheme()
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	derived := base.
		WithStyle(red).
		WithItemStyle(red).
		WithDirStyle(red).
		WithHighlightItemStyle(red).
		WithHighlightDirStyle(red).
		WithTitleStyle(red).
		WithBorder(false).
		WithHighlightSymbol("> ")

	assert.Equal(t, red, derived.Style())
	assert.Equal(t, red, derived.ItemStyle())
	assert.Equal(t, red, derived.DirStyle())
	assert.Equal(t, red, derived.HighlightItemStyle())
	assert.Equal(t, red, derived.HighlightDirStyle())
	assert.Equal(t, red, derived.TitleStyle())
	assert.False(t, derived.Border())
	assert.Equal(t, "> ", derived.HighlightSymbol())

	// The base theme is untouched.
	assert.True(t, base.Border())
	assert.Equal(t, "", base.HighlightSymbol())
	assert.NotEqual(t, red, base.ItemStyle())
}

func TestThemeTitles(t *testing.T) {
	state := StateView{Dir: "/home"}

	t.Run("default_title", func(t *testing.T) {
		theme := DefaultTheme().AddDefaultTitle()
		view := BuildView(state, theme)
		assert.Equal(t, "Explorer - /home", view.TitleTop)
		assert.Equal(t, "", view.TitleBottom)
	})

	t.Run("multiple_funcs_joined", func(t *testing.T) {
		theme := DefaultTheme().
			WithTitleBottomFunc(func(StateView) string { return "left" }).
			WithTitleBottomFunc(func(StateView) string { return "" }).
			WithTitleBottomFunc(func(StateView) string { return "right" })
		view := BuildView(state, theme)
		assert.Equal(t, "left right", view.TitleBottom)
	})

	t.Run("derived_themes_do_not_share_title_funcs", func(t *testing.T) {
		base := DefaultTheme().WithTitleTopFunc(func(StateView) string { return "base" })
		a := base.WithTitleTopFunc(func(StateView) string { return "a" })
		b := base.WithTitleTopFunc(func(StateView) string { return "b" })

		assert.Equal(t, "base a", BuildView(state, a).TitleTop)
		assert.Equal(t, "base b", BuildView(state, b).TitleTop)
		assert.Equal(t, "base", BuildView(state, base).TitleTop)
	})
}
