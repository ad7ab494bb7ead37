package model

import (
	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

// ProjectileData is the payload of projectile models
type ProjectileData struct {
	Owner  string
	Target Category
}

// ProjectileSpec describes the projectile a character fires
type ProjectileSpec struct {
	SizeBlocks float64
	Texture    asset.LoadedTexture
	Damage     int
	Display    bool
}

// NewProjectile spawns a projectile at the owner's facing edge, vertically centered
// It travels along the owner's facing through its gravity and only hits target
func NewProjectile(owner *Model, target Category, spec ProjectileSpec) *Model {
	dir := core.DirRight
	if c := owner.Character(); c != nil && c.FaceDir.Horizontal() {
		dir = c.FaceDir
	}

	size := core.Size{Width: spec.SizeBlocks, Height: spec.SizeBlocks}
	sizePx := core.BlockSizeToPx(size)
	rect := owner.CollisionRect(RectActual)

	pos := core.Point{
		X: rect.Right(),
		Y: rect.Center().Y - sizePx.Height/2,
	}
	if dir == core.DirLeft {
		pos.X = rect.Left() - sizePx.Width
	}

	m := New(Params{
		Name:             owner.Name + ":projectile",
		Category:         CategoryProjectile,
		Pos:              pos,
		Shape:            Shape{Size: size, Texture: spec.Texture},
		Gravity:          dir,
		Scope:            SingleModelType(target),
		DisplayCollision: spec.Display,
		OnHit:            []Effect{Damage(spec.Damage), DestroySelf()},
		OnDestroy:        DestroyActionNone,
	})
	m.projectile = &ProjectileData{
		Owner:  owner.Name,
		Target: target,
	}
	return m
}

// OwnerExcluded reports whether a and b are a projectile and its owner
func OwnerExcluded(a, b *Model) bool {
	if p := a.projectile; p != nil && p.Owner == b.Name {
		return true
	}
	if p := b.projectile; p != nil && p.Owner == a.Name {
		return true
	}
	return false
}
