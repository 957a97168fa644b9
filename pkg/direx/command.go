package direx

// Command is an abstract navigation command. Input backend adapters
// translate their raw key events into Commands; the navigation core
// accepts nothing else.
type Command int

const (
	// CommandNone is an unrecognized event; it produces no state change.
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandLeave
	CommandEnter
	CommandSelectFirst
	CommandSelectLast
	CommandPageUp
	CommandPageDown
	CommandToggleHidden
)

var commandNames = map[Command]string{
	CommandNone:         "None",
	CommandMoveUp:       "MoveUp",
	CommandMoveDown:     "MoveDown",
	CommandLeave:        "Leave",
	CommandEnter:        "Enter",
	CommandSelectFirst:  "SelectFirst",
	CommandSelectLast:   "SelectLast",
	CommandPageUp:       "PageUp",
	CommandPageDown:     "PageDown",
	CommandToggleHidden: "ToggleHidden",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "Unknown"
}

// commandOrder fixes binding lookup order so that a key bound to several
// commands resolves deterministically.
var commandOrder = []Command{
	CommandMoveUp,
	CommandMoveDown,
	CommandLeave,
	CommandEnter,
	CommandSelectFirst,
	CommandSelectLast,
	CommandPageUp,
	CommandPageDown,
	CommandToggleHidden,
}

// KeyCode is a backend-neutral key identity.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Key is a normalized key event: a special key or a printable rune,
// optionally with Ctrl held.
type Key struct {
	Code KeyCode
	Rune rune
	Ctrl bool
}

// Bindings maps each command to the keys that trigger it.
type Bindings map[Command][]Key

// DefaultBindings is the documented default table:
// j/Down, k/Up, h/Left/Backspace, l/Right/Enter, Home, End,
// PageUp, PageDown and Ctrl+h for the hidden-files toggle.
func DefaultBindings() Bindings {
	return Bindings{
		CommandMoveDown:     {{Code: KeyRune, Rune: 'j'}, {Code: KeyDown}},
		CommandMoveUp:       {{Code: KeyRune, Rune: 'k'}, {Code: KeyUp}},
		CommandLeave:        {{Code: KeyRune, Rune: 'h'}, {Code: KeyLeft}, {Code: KeyBackspace}},
		CommandEnter:        {{Code: KeyRune, Rune: 'l'}, {Code: KeyRight}, {Code: KeyEnter}},
		CommandSelectFirst:  {{Code: KeyHome}},
		CommandSelectLast:   {{Code: KeyEnd}},
		CommandPageUp:       {{Code: KeyPageUp}},
		CommandPageDown:     {{Code: KeyPageDown}},
		CommandToggleHidden: {{Code: KeyRune, Rune: 'h', Ctrl: true}},
	}
}

// Command resolves a normalized key against the binding table.
func (b Bindings) Command(key Key) Command {
	for _, cmd := range commandOrder {
		for _, k := range b[cmd] {
			if k == key {
				return cmd
			}
		}
	}
	return CommandNone
}

// Bind replaces the key list of one command, returning the bindings for
// chaining.
func (b Bindings) Bind(cmd Command, keys ...Key) Bindings {
	b[cmd] = keys
	return b
}
