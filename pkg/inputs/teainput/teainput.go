// Package teainput translates bubbletea key messages into explorer
// commands, so an Explorer can be driven from a bubbletea program.
package teainput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/datatug/direx/pkg/direx"
)

// Key normalizes a bubbletea key message.
func Key(msg tea.KeyMsg) direx.Key {
	switch msg.Type {
	case tea.KeyUp:
		return direx.Key{Code: direx.KeyUp}
	case tea.KeyDown:
		return direx.Key{Code: direx.KeyDown}
	case tea.KeyLeft:
		return direx.Key{Code: direx.KeyLeft}
	case tea.KeyRight:
		return direx.Key{Code: direx.KeyRight}
	case tea.KeyEnter:
		return direx.Key{Code: direx.KeyEnter}
	case tea.KeyBackspace:
		return direx.Key{Code: direx.KeyBackspace}
	case tea.KeyHome:
		return direx.Key{Code: direx.KeyHome}
	case tea.KeyEnd:
		return direx.Key{Code: direx.KeyEnd}
	case tea.KeyPgUp:
		return direx.Key{Code: direx.KeyPageUp}
	case tea.KeyPgDown:
		return direx.Key{Code: direx.KeyPageDown}
	case tea.KeyCtrlH:
		return direx.Key{Code: direx.KeyRune, Rune: 'h', Ctrl: true}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return direx.Key{Code: direx.KeyRune, Rune: msg.Runes[0]}
		}
	}
	return direx.Key{}
}

// Translate maps a bubbletea key message to a command using the given
// bindings.
func Translate(msg tea.KeyMsg, bindings direx.Bindings) direx.Command {
	return bindings.Command(Key(msg))
}
