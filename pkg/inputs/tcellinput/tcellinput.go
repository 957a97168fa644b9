// Package tcellinput translates tcell key events into explorer commands.
package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/datatug/direx/pkg/direx"
)

// Key normalizes a tcell key event. Terminals send Ctrl+H and Backspace
// as the same byte (0x08), so that code resolves to Ctrl+h only when the
// Ctrl modifier is reported; the DEL variant (0x7f) is always Backspace.
func Key(event *tcell.EventKey) direx.Key {
	if event == nil {
		return direx.Key{}
	}
	ctrl := event.Modifiers()&tcell.ModCtrl != 0
	switch event.Key() {
	case tcell.KeyUp:
		return direx.Key{Code: direx.KeyUp, Ctrl: ctrl}
	case tcell.KeyDown:
		return direx.Key{Code: direx.KeyDown, Ctrl: ctrl}
	case tcell.KeyLeft:
		return direx.Key{Code: direx.KeyLeft, Ctrl: ctrl}
	case tcell.KeyRight:
		return direx.Key{Code: direx.KeyRight, Ctrl: ctrl}
	case tcell.KeyEnter:
		return direx.Key{Code: direx.KeyEnter, Ctrl: ctrl}
	case tcell.KeyHome:
		return direx.Key{Code: direx.KeyHome, Ctrl: ctrl}
	case tcell.KeyEnd:
		return direx.Key{Code: direx.KeyEnd, Ctrl: ctrl}
	case tcell.KeyPgUp:
		return direx.Key{Code: direx.KeyPageUp, Ctrl: ctrl}
	case tcell.KeyPgDn:
		return direx.Key{Code: direx.KeyPageDown, Ctrl: ctrl}
	case tcell.KeyBackspace: // 0x08, also Ctrl+H
		if ctrl {
			return direx.Key{Code: direx.KeyRune, Rune: 'h', Ctrl: true}
		}
		return direx.Key{Code: direx.KeyBackspace}
	case tcell.KeyBackspace2: // 0x7f
		return direx.Key{Code: direx.KeyBackspace, Ctrl: ctrl}
	case tcell.KeyRune:
		return direx.Key{Code: direx.KeyRune, Rune: event.Rune(), Ctrl: ctrl}
	}
	return direx.Key{}
}

// Translate maps a tcell key event to a command using the given bindings.
func Translate(event *tcell.EventKey, bindings direx.Bindings) direx.Command {
	return bindings.Command(Key(event))
}
