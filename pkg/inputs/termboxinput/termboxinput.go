// Package termboxinput translates termbox events into explorer commands.
package termboxinput

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/datatug/direx/pkg/direx"
)

// Key normalizes a termbox event. Termbox reports Ctrl chords as key
// constants (Ctrl+H arrives as 0x08), while terminal Backspace usually
// sends 0x7f; the two are mapped accordingly.
func Key(event termbox.Event) direx.Key {
	if event.Type != termbox.EventKey {
		return direx.Key{}
	}
	if event.Ch != 0 {
		return direx.Key{Code: direx.KeyRune, Rune: event.Ch}
	}
	switch event.Key {
	case termbox.KeyArrowUp:
		return direx.Key{Code: direx.KeyUp}
	case termbox.KeyArrowDown:
		return direx.Key{Code: direx.KeyDown}
	case termbox.KeyArrowLeft:
		return direx.Key{Code: direx.KeyLeft}
	case termbox.KeyArrowRight:
		return direx.Key{Code: direx.KeyRight}
	case termbox.KeyEnter:
		return direx.Key{Code: direx.KeyEnter}
	case termbox.KeyHome:
		return direx.Key{Code: direx.KeyHome}
	case termbox.KeyEnd:
		return direx.Key{Code: direx.KeyEnd}
	case termbox.KeyPgup:
		return direx.Key{Code: direx.KeyPageUp}
	case termbox.KeyPgdn:
		return direx.Key{Code: direx.KeyPageDown}
	case termbox.KeyBackspace: // 0x08, Ctrl+H
		return direx.Key{Code: direx.KeyRune, Rune: 'h', Ctrl: true}
	case termbox.KeyBackspace2: // 0x7f
		return direx.Key{Code: direx.KeyBackspace}
	case termbox.KeySpace:
		return direx.Key{Code: direx.KeyRune, Rune: ' '}
	}
	return direx.Key{}
}

// Translate maps a termbox event to a command using the given bindings.
func Translate(event termbox.Event, bindings direx.Bindings) direx.Command {
	return bindings.Command(Key(event))
}
