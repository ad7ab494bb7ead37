package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot    SoundType = iota // character fired a projectile
	SoundHit                       // damage landed on a character
	SoundDestroy                   // model destroyed with a sound action
	SoundGameOver                  // player destroyed
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundDestroy:
		return "destroy"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// ErrDisabled is returned by Initialize when audio is switched off in config
var ErrDisabled = errors.New("audio disabled")
