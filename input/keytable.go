package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-fighter/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Dir        core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

var (
	moveUp    = KeyEntry{IntentMove, core.DirUp}
	moveDown  = KeyEntry{IntentMove, core.DirDown}
	moveLeft  = KeyEntry{IntentMove, core.DirLeft}
	moveRight = KeyEntry{IntentMove, core.DirRight}
	shoot     = KeyEntry{IntentShoot, core.DirNone}
	quit      = KeyEntry{IntentQuit, core.DirNone}
)

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ: quit,
			tcell.KeyCtrlC: quit,
			tcell.KeyUp:    moveUp,
			tcell.KeyDown:  moveDown,
			tcell.KeyLeft:  moveLeft,
			tcell.KeyRight: moveRight,
			tcell.KeyEnter: shoot,
		},

		Runes: map[rune]KeyEntry{
			// vi
			'h': moveLeft,
			'j': moveDown,
			'k': moveUp,
			'l': moveRight,

			// wasd
			'w': moveUp,
			'a': moveLeft,
			's': moveDown,
			'd': moveRight,

			' ': shoot,
			'p': {IntentToggleRun, core.DirNone},
			'c': {IntentToggleDebug, core.DirNone},
			'q': quit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
	if out.SpecialKeys == nil {
		out.SpecialKeys = make(map[tcell.Key]KeyEntry)
	}
	if out.Runes == nil {
		out.Runes = make(map[rune]KeyEntry)
	}
	return out
}

// Lookup resolves a key event; unbound keys return false
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	var (
		e  KeyEntry
		ok bool
	)
	if ev.Key() == tcell.KeyRune {
		e, ok = kt.Runes[ev.Rune()]
		if !ok {
			// Shifted letters fall back to their lower-case binding
			e, ok = kt.Runes[unicode.ToLower(ev.Rune())]
		}
	} else {
		e, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok || e.IntentType == IntentNone {
		return Intent{}, false
	}
	return Intent{Type: e.IntentType, Dir: e.Dir}, true
}
