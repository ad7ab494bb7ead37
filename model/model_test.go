package model

import (
	"testing"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

func newTestCharacter(health int) *Model {
	return NewCharacter(Params{
		Name:     "player",
		Category: CategoryPlayer,
		Pos:      core.Point{X: 100, Y: 100},
		Shape:    Shape{Size: core.Size{Width: 2, Height: 2}},
		Gravity:  core.DirDown,
	}, health, core.DirRight)
}

func TestModifyStateForwardOnly(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		to    State
		ok    bool
		final State
	}{
		{"normal to killed", StateNormal, StateKilled, true, StateKilled},
		{"normal to destroyed", StateNormal, StateDestroyed, true, StateDestroyed},
		{"killed to destroyed", StateKilled, StateDestroyed, true, StateDestroyed},
		{"destroyed to normal", StateDestroyed, StateNormal, false, StateDestroyed},
		{"killed to normal", StateKilled, StateNormal, false, StateKilled},
		{"destroyed to destroyed", StateDestroyed, StateDestroyed, true, StateDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Params{State: tt.from})
			if got := m.ModifyState(tt.to); got != tt.ok {
				t.Errorf("ModifyState(%v) from %v = %v, want %v", tt.to, tt.from, got, tt.ok)
			}
			if m.State != tt.final {
				t.Errorf("state = %v, want %v", m.State, tt.final)
			}
		})
	}
}

func TestApplyMoveIntentForce(t *testing.T) {
	m := New(Params{Pos: core.Point{X: 10, Y: 10}})
	m.AddMoveIntent(core.DirUp)
	m.AddMoveIntent(core.DirRight)
	m.AddMoveIntent(core.DirRight)
	m.ApplyMoveIntentForce(3)

	if m.Pos.X != 13 || m.Pos.Y != 7 {
		t.Errorf("position = %+v, want {13 7}", m.Pos)
	}

	m.RemoveMoveIntent(core.DirUp)
	if m.MoveIntent().Has(core.DirUp) {
		t.Error("UP still in move intent after removal")
	}
}

func TestApplyGravity(t *testing.T) {
	m := New(Params{Gravity: core.DirNone})
	m.ApplyGravity()
	if !m.MoveIntent().Empty() {
		t.Errorf("gravity NONE added intent %v", m.MoveIntent())
	}

	m.Gravity = core.DirLeft
	m.ApplyGravity()
	if !m.MoveIntent().Has(core.DirLeft) {
		t.Error("gravity LEFT missing from move intent")
	}
}

func TestResetTransientSets(t *testing.T) {
	m := New(Params{})
	m.AddMoveIntent(core.DirDown)
	m.AddCollision(core.DirDown)
	m.AddCollision(core.DirLeft)

	m.ResetMoveIntent()
	m.ResetCollisionMap()

	if !m.MoveIntent().Empty() || !m.Contacts().Empty() {
		t.Errorf("sets not empty after reset: intent=%v contacts=%v", m.MoveIntent(), m.Contacts())
	}
}

func TestCollisionRects(t *testing.T) {
	m := New(Params{
		Pos:   core.Point{X: 32, Y: 48},
		Shape: Shape{Size: core.Size{Width: 1, Height: 2}},
	})

	actual := m.CollisionRect(RectActual)
	if actual != core.NewRect(32, 48, 16, 32) {
		t.Errorf("actual = %+v", actual)
	}

	detect := m.CollisionRect(RectDetect)
	if detect != core.NewRect(24, 40, 32, 48) {
		t.Errorf("detect = %+v", detect)
	}
}

func TestMoveRouting(t *testing.T) {
	m := newTestCharacter(100)

	m.Move(core.DirLeft)
	if m.Character().FaceDir != core.DirLeft {
		t.Errorf("face = %v, want LEFT", m.Character().FaceDir)
	}
	if !m.MoveIntent().Has(core.DirLeft) {
		t.Error("LEFT not in move intent")
	}

	m.Move(core.DirDown)
	if m.Character().FaceDir != core.DirLeft {
		t.Error("DOWN changed facing")
	}
	if !m.MoveIntent().Has(core.DirDown) {
		t.Error("DOWN not in move intent")
	}

	m.Move(core.DirUp)
	c := m.Character()
	if !c.Airborne || c.JumpFrame != 1 || !m.MoveIntent().Has(core.DirUp) {
		t.Errorf("jump not started: airborne=%v frame=%d intent=%v", c.Airborne, c.JumpFrame, m.MoveIntent())
	}

	// Airborne jump is a no-op
	m.Move(core.DirUp)
	if c.JumpFrame != 1 {
		t.Errorf("second jump advanced frame to %d", c.JumpFrame)
	}
}

func TestMoveIgnoredForNonCharacter(t *testing.T) {
	m := New(Params{Category: CategoryTerrain})
	m.Move(core.DirLeft)
	if !m.MoveIntent().Empty() {
		t.Errorf("terrain accepted move intent %v", m.MoveIntent())
	}
}

func TestJumpBound(t *testing.T) {
	const speed = 3.0
	m := newTestCharacter(100)
	maxFrames := MaxJumpFrames(m.Shape.SizePx().Height, speed)

	m.Move(core.DirUp)
	c := m.Character()

	frames := 0
	for c.JumpFrame != 0 {
		// Resting DOWN contact on the launch frame must not cancel the ascent
		m.ApplyGravity()
		m.AddCollision(core.DirDown)
		m.UpdateData(speed)

		if float64(c.JumpFrame) > maxFrames {
			t.Fatalf("jump frame %d exceeds bound %.2f", c.JumpFrame, maxFrames)
		}
		if c.JumpFrame != 0 {
			if m.MoveIntent().Has(core.DirDown) || !m.MoveIntent().Has(core.DirUp) {
				t.Fatalf("ascent intent wrong at frame %d: %v", c.JumpFrame, m.MoveIntent())
			}
		}
		m.ResetMoveIntent()
		m.ResetCollisionMap()

		frames++
		if frames > 100 {
			t.Fatal("jump never ended")
		}
	}

	if frames != 10 {
		t.Errorf("ascent lasted %d frames, want 10", frames)
	}
	if !c.Airborne {
		t.Error("character grounded in the frame the ascent ended")
	}

	m.AddCollision(core.DirDown)
	m.UpdateData(speed)
	if c.Airborne {
		t.Error("character still airborne after landing")
	}
}

func TestShootCooldown(t *testing.T) {
	m := newTestCharacter(100)

	if !m.Shoot(20) {
		t.Fatal("first shot refused")
	}
	if !m.ConsumeShot() {
		t.Fatal("shot flag not raised")
	}

	if m.Shoot(20) {
		t.Error("shot accepted during cooldown")
	}
	if m.ConsumeShot() {
		t.Error("shot flag raised during cooldown")
	}
	if m.Character().ShootCooldown != 20 {
		t.Errorf("cooldown = %d, want 20", m.Character().ShootCooldown)
	}

	for i := 0; i < 20; i++ {
		m.UpdateData(3)
	}
	if m.Character().ShootCooldown != 0 {
		t.Errorf("cooldown = %d after 20 frames", m.Character().ShootCooldown)
	}
	if !m.Shoot(20) {
		t.Error("shot refused after cooldown elapsed")
	}
}

func TestProjectileDamageDestroysCharacter(t *testing.T) {
	target := newTestCharacter(10)
	target.Category = CategoryEnemy

	shooter := newTestCharacter(100)
	p := NewProjectile(shooter, CategoryEnemy, ProjectileSpec{SizeBlocks: 0.5, Damage: 20})

	for _, e := range ResolveContact(p, target) {
		ApplyEffect(e, p, target)
	}

	if p.State != StateDestroyed {
		t.Errorf("projectile state = %v, want DESTROYED", p.State)
	}
	if target.Character().Health != -10 {
		t.Errorf("health = %d, want -10", target.Character().Health)
	}
	if target.State != StateDestroyed {
		t.Errorf("character state = %v before its update, want DESTROYED", target.State)
	}

	target.UpdateData(3)
	if target.State != StateDestroyed {
		t.Errorf("character state = %v after update, want DESTROYED", target.State)
	}
}

func TestNonLethalDamageKeepsCharacter(t *testing.T) {
	target := newTestCharacter(30)
	if !ApplyEffect(Damage(20), New(Params{}), target) {
		t.Fatal("damage not applied")
	}
	if target.Character().Health != 10 || target.State != StateNormal {
		t.Errorf("after hit: health=%d state=%v, want 10 NORMAL", target.Character().Health, target.State)
	}
}

func TestDamageIgnoresTerrain(t *testing.T) {
	wall := New(Params{Category: CategoryTerrain})
	if ApplyEffect(Damage(5), New(Params{}), wall) {
		t.Error("damage applied to terrain")
	}
}

func TestNewProjectileSpawn(t *testing.T) {
	owner := newTestCharacter(100)

	right := NewProjectile(owner, CategoryEnemy, ProjectileSpec{SizeBlocks: 0.5, Damage: 10})
	if right.Pos != (core.Point{X: 132, Y: 112}) {
		t.Errorf("right spawn = %+v, want {132 112}", right.Pos)
	}
	if right.Gravity != core.DirRight {
		t.Errorf("gravity = %v, want RIGHT", right.Gravity)
	}
	if right.Scope != SingleModelType(CategoryEnemy) {
		t.Errorf("scope = %v", right.Scope)
	}
	if right.Projectile().Owner != "player" {
		t.Errorf("owner = %q", right.Projectile().Owner)
	}

	owner.Move(core.DirLeft)
	left := NewProjectile(owner, CategoryEnemy, ProjectileSpec{SizeBlocks: 0.5, Damage: 10})
	if left.Pos != (core.Point{X: 92, Y: 112}) {
		t.Errorf("left spawn = %+v, want {92 112}", left.Pos)
	}
	if left.Gravity != core.DirLeft {
		t.Errorf("gravity = %v, want LEFT", left.Gravity)
	}
}

func TestOwnerExcluded(t *testing.T) {
	owner := newTestCharacter(100)
	other := newTestCharacter(100)
	other.Name = "boss"
	p := NewProjectile(owner, CategoryEnemy, ProjectileSpec{SizeBlocks: 0.5})

	if !OwnerExcluded(p, owner) || !OwnerExcluded(owner, p) {
		t.Error("owner pair not excluded")
	}
	if OwnerExcluded(p, other) {
		t.Error("non-owner excluded")
	}
}

func TestScopeAccepts(t *testing.T) {
	enemy := New(Params{Category: CategoryEnemy})
	wall := New(Params{Category: CategoryTerrain})

	tests := []struct {
		scope CollisionScope
		enemy bool
		wall  bool
	}{
		{CollisionScope{Kind: ScopeNone}, false, false},
		{CollisionScope{Kind: ScopeSameLayer}, true, true},
		{CollisionScope{Kind: ScopeGlobal}, true, true},
		{SingleModelType(CategoryEnemy), true, false},
	}

	for _, tt := range tests {
		if got := tt.scope.Accepts(enemy); got != tt.enemy {
			t.Errorf("%v accepts enemy = %v, want %v", tt.scope, got, tt.enemy)
		}
		if got := tt.scope.Accepts(wall); got != tt.wall {
			t.Errorf("%v accepts wall = %v, want %v", tt.scope, got, tt.wall)
		}
	}
}

func TestSpriteFrameSelection(t *testing.T) {
	m := newTestCharacter(100)
	m.Shape.Texture = asset.LoadedTexture{Kind: asset.TextureImage, Key: "sheet"}
	m.Shape.Sprites = map[string]SpriteFrame{
		FrameIdle:    {Pos: core.Point{X: 0, Y: 0}, Size: core.Size{Width: 2, Height: 2}},
		FrameRunning: {Pos: core.Point{X: 2, Y: 0}, Size: core.Size{Width: 2, Height: 2}},
		FrameJumping: {Pos: core.Point{X: 4, Y: 0}, Size: core.Size{Width: 2, Height: 2}},
	}

	m.AddCollision(core.DirDown)
	m.UpdateData(3)
	if m.Shape.Frame != FrameIdle || m.Shape.Flip {
		t.Errorf("idle frame = %q flip=%v", m.Shape.Frame, m.Shape.Flip)
	}

	m.Move(core.DirLeft)
	m.UpdateData(3)
	if m.Shape.Frame != FrameRunning || !m.Shape.Flip {
		t.Errorf("running frame = %q flip=%v", m.Shape.Frame, m.Shape.Flip)
	}
	tex := m.Shape.CurrentTexture()
	if tex.Region == nil || *tex.Region != core.NewRect(32, 0, 32, 32) {
		t.Errorf("running region = %v", tex.Region)
	}

	m.ResetMoveIntent()
	m.Move(core.DirUp)
	m.UpdateData(3)
	if m.Shape.Frame != FrameJumping {
		t.Errorf("jumping frame = %q", m.Shape.Frame)
	}
}
