package input

import "github.com/lixenwraith/tile-fighter/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+Q, Ctrl+C
	IntentToggleRun   // p: start or stop the loop
	IntentToggleDebug // c: collision outlines

	// Player
	IntentMove  // arrows, wasd, hjkl
	IntentShoot // space, enter
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleRun:
		return "toggle_run"
	case IntentToggleDebug:
		return "toggle_debug"
	case IntentMove:
		return "move"
	case IntentShoot:
		return "shoot"
	}
	return "none"
}

// Intent is a resolved key press
type Intent struct {
	Type IntentType
	Dir  core.Direction // IntentMove only
}
