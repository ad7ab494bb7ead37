package model

import (
	"github.com/lixenwraith/tile-fighter/core"
)

// CharacterData is the payload of player and enemy models
type CharacterData struct {
	Health        int
	FaceDir       core.Direction
	Airborne      bool
	JumpFrame     int
	ShootCooldown int
	Shooting      bool
}

// NewCharacter creates a model carrying a character payload
// face defaults to RIGHT when not horizontal
func NewCharacter(p Params, health int, face core.Direction) *Model {
	if !face.Horizontal() {
		face = core.DirRight
	}
	m := New(p)
	m.character = &CharacterData{
		Health:  health,
		FaceDir: face,
	}
	return m
}

// MaxJumpFrames returns the forced-ascent length for a shape height at the given speed
func MaxJumpFrames(heightPx, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return heightPx / speed
}

// Move routes a player command: UP jumps, LEFT/RIGHT turn and walk, DOWN walks
func (m *Model) Move(dir core.Direction) {
	c := m.character
	if c == nil {
		return
	}
	switch dir {
	case core.DirUp:
		m.jump()
	case core.DirLeft, core.DirRight:
		c.FaceDir = dir
		m.moveIntent.Add(dir)
	case core.DirDown:
		m.moveIntent.Add(dir)
	}
}

func (m *Model) jump() {
	c := m.character
	if c.Airborne {
		return
	}
	c.Airborne = true
	c.JumpFrame++
	m.moveIntent.Add(core.DirUp)
}

// land is skipped during the ascent so a resting DOWN contact does not cancel a fresh jump
func (m *Model) land() {
	c := m.character
	if c.JumpFrame != 0 {
		return
	}
	c.Airborne = false
}

// Shoot arms the one-shot shooting flag and starts the cooldown
// Returns false with no side effect while the cooldown is running
func (m *Model) Shoot(cooldown int) bool {
	c := m.character
	if c == nil || c.ShootCooldown > 0 {
		return false
	}
	c.ShootCooldown = cooldown
	c.Shooting = true
	return true
}

// ConsumeShot clears the shooting flag and reports whether it was raised
func (m *Model) ConsumeShot() bool {
	c := m.character
	if c == nil || !c.Shooting {
		return false
	}
	c.Shooting = false
	return true
}

// ApplyDamage subtracts amount from the character's health; health may go negative
func (m *Model) ApplyDamage(amount int) {
	if m.character == nil {
		return
	}
	m.character.Health -= amount
}

// UpdateData advances the character state machine by one frame
// Order: cooldown, landing, jump step, death check, sprite frame
// A DOWN contact lands the character only when no jump is in progress (JumpFrame == 0)
func (m *Model) UpdateData(speed float64) {
	c := m.character
	if c == nil {
		return
	}

	if c.ShootCooldown > 0 {
		c.ShootCooldown--
	}

	if m.contacts.Has(core.DirDown) {
		m.land()
	}

	if c.JumpFrame != 0 {
		m.moveIntent.Remove(core.DirDown)
		m.moveIntent.Add(core.DirUp)
		c.JumpFrame++
		if float64(c.JumpFrame) >= MaxJumpFrames(m.Shape.SizePx().Height, speed) {
			c.JumpFrame = 0
		}
	}

	if c.Health < 1 {
		m.ModifyState(StateDestroyed)
	}

	m.updateSprite()
}

func (m *Model) updateSprite() {
	if len(m.Shape.Sprites) == 0 {
		return
	}
	c := m.character
	flip := c.FaceDir == core.DirLeft
	switch {
	case c.Airborne:
		m.Shape.SetSprite(FrameJumping, flip)
	case m.moveIntent.Has(core.DirLeft) || m.moveIntent.Has(core.DirRight):
		m.Shape.SetSprite(FrameRunning, flip)
	default:
		m.Shape.SetSprite(FrameIdle, flip)
	}
}
