// Package chroma2tview renders chroma token streams as tview color-tagged
// text, so syntax-highlighted file previews can go straight into a
// tview.TextView with dynamic colors enabled.
package chroma2tview

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenizes text with the given lexer and wraps each colored
// token in a [#rrggbb]...[-] tview tag.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(token.Value)
			continue
		}

		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name and highlights text with it.
// The second return value is false when no lexer matched, in which case
// the text is returned untouched.
func ColorizeFile(name, text, styleName string) (string, bool, error) {
	lexer := lexers.Match(name)
	if lexer == nil {
		return text, false, nil
	}
	colorized, err := Colorize(text, styleName, lexer)
	return colorized, true, err
}
