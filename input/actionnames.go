package input

import "github.com/lixenwraith/tile-fighter/core"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":         {IntentQuit, core.DirNone},
	"toggle_run":   {IntentToggleRun, core.DirNone},
	"toggle_debug": {IntentToggleDebug, core.DirNone},

	"move_left":  {IntentMove, core.DirLeft},
	"move_right": {IntentMove, core.DirRight},
	"move_down":  {IntentMove, core.DirDown},
	"jump":       {IntentMove, core.DirUp},
	"shoot":      {IntentShoot, core.DirNone},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
