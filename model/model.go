package model

import (
	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

// DetectionFieldPx is the total padding of the DETECT rect, half on each side
const DetectionFieldPx = core.BlockSizePx

// RectKind selects which collision rect CollisionRect returns
type RectKind uint8

const (
	RectActual RectKind = iota // true bounding box
	RectDetect                 // padded box for proximity pre-filtering
)

// Params holds the shared construction data of every model
type Params struct {
	Name             string
	Category         Category
	Pos              core.Point
	Shape            Shape
	State            State
	Gravity          core.Direction
	Scope            CollisionScope
	DisplayCollision bool
	OnHit            []Effect
	OnDestroy        DestroyAction
}

// Model is the base simulated entity
// Exactly one of character/projectile is set for those categories, neither for terrain
type Model struct {
	Name             string
	Category         Category
	Pos              core.Point
	Shape            Shape
	State            State
	Gravity          core.Direction
	Scope            CollisionScope
	DisplayCollision bool
	OnHit            []Effect
	OnDestroy        DestroyAction

	// Per-frame accumulators, reset by the layer at the end of every simulated frame
	moveIntent core.DirectionSet
	contacts   core.DirectionSet

	character  *CharacterData
	projectile *ProjectileData
}

// New creates a plain model (terrain or any category without a payload)
func New(p Params) *Model {
	return &Model{
		Name:             p.Name,
		Category:         p.Category,
		Pos:              p.Pos,
		Shape:            p.Shape,
		State:            p.State,
		Gravity:          p.Gravity,
		Scope:            p.Scope,
		DisplayCollision: p.DisplayCollision,
		OnHit:            p.OnHit,
		OnDestroy:        p.OnDestroy,
	}
}

// Character returns the character payload or nil
func (m *Model) Character() *CharacterData {
	return m.character
}

// Projectile returns the projectile payload or nil
func (m *Model) Projectile() *ProjectileData {
	return m.projectile
}

// IsCharacter reports whether the model carries a character payload
func (m *Model) IsCharacter() bool {
	return m.character != nil
}

// CollisionRect returns the ACTUAL or DETECT rect in pixels
func (m *Model) CollisionRect(kind RectKind) core.Rect {
	actual := core.Rect{Pos: m.Pos, Size: m.Shape.SizePx()}
	if kind == RectActual {
		return actual
	}
	return actual.Expand(DetectionFieldPx / 2)
}

// ApplyGravity adds the gravity direction to the move intent
func (m *Model) ApplyGravity() {
	if m.Gravity != core.DirNone {
		m.moveIntent.Add(m.Gravity)
	}
}

// ModifyState moves the lifecycle forward; backward transitions are refused
func (m *Model) ModifyState(s State) bool {
	if s < m.State {
		return false
	}
	m.State = s
	return true
}

// ChangeTexture swaps the shape texture, keeping the sprite frame table
func (m *Model) ChangeTexture(tex asset.LoadedTexture) {
	m.Shape.Texture = tex
}

// AddMoveIntent requests movement in dir this frame
func (m *Model) AddMoveIntent(dir core.Direction) {
	m.moveIntent.Add(dir)
}

// RemoveMoveIntent cancels a requested movement
func (m *Model) RemoveMoveIntent(dir core.Direction) {
	m.moveIntent.Remove(dir)
}

// MoveIntent returns the directions requested this frame
func (m *Model) MoveIntent() core.DirectionSet {
	return m.moveIntent
}

// AddCollision records a blocked direction
func (m *Model) AddCollision(dir core.Direction) {
	m.contacts.Add(dir)
}

// Contacts returns the directions blocked this frame
func (m *Model) Contacts() core.DirectionSet {
	return m.contacts
}

// ResetMoveIntent clears the move intent
func (m *Model) ResetMoveIntent() {
	m.moveIntent.Clear()
}

// ResetCollisionMap clears the collision contacts
func (m *Model) ResetCollisionMap() {
	m.contacts.Clear()
}

// ApplyMoveIntentForce moves force pixels along every requested direction
// Directions integrate independently, so UP+RIGHT moves diagonally
func (m *Model) ApplyMoveIntentForce(force float64) {
	m.moveIntent.Each(func(dir core.Direction) {
		switch dir {
		case core.DirUp:
			m.Pos.Y -= force
		case core.DirDown:
			m.Pos.Y += force
		case core.DirLeft:
			m.Pos.X -= force
		case core.DirRight:
			m.Pos.X += force
		}
	})
}
