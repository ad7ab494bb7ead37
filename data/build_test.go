package data

import (
	"errors"
	"image"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/model"
)

var testOpts = BuildOptions{
	PlayerHealth:   100,
	EnemyHealth:    300,
	HitDamage:      10,
	ProjectileSize: 0.5,
}

func readyProvider() *asset.Provider {
	p := asset.NewProvider(zap.NewNop())
	p.MarkReady()
	return p
}

func TestDefaultTables(t *testing.T) {
	tables, err := DefaultTables()
	if err != nil {
		t.Fatalf("DefaultTables: %v", err)
	}
	if len(tables.Layers) != 2 || tables.Layers[0] != "BG" || tables.Layers[1] != "FG" {
		t.Errorf("layers = %v", tables.Layers)
	}
	if len(tables.Models) != 7 {
		t.Errorf("models = %d, want 7", len(tables.Models))
	}
	if _, ok := tables.Shape("projectile"); !ok {
		t.Error("projectile shape missing")
	}
}

func TestBuildDefaultScene(t *testing.T) {
	tables, _ := DefaultTables()
	scene, err := tables.Build(readyProvider(), testOpts, zap.NewNop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(scene.Spawns) != 7 {
		t.Fatalf("spawns = %d, want 7", len(scene.Spawns))
	}

	player := scene.Find("Player")
	if player == nil || player.Character() == nil {
		t.Fatal("player missing or not a character")
	}
	if player.Pos != (core.Point{X: 64, Y: 304}) {
		t.Errorf("player pos = %+v", player.Pos)
	}
	if player.Character().Health != 100 || player.OnDestroy != model.DestroyActionGameOver {
		t.Errorf("player health=%d action=%v", player.Character().Health, player.OnDestroy)
	}
	if player.Shape.Texture.Kind != asset.TextureColor || player.Shape.Texture.Key != "dimgrey" {
		t.Errorf("player texture = %+v, want dimgrey fallback", player.Shape.Texture)
	}

	boss := scene.Find("Boss")
	if boss.Character().Health != 300 || boss.Character().FaceDir != core.DirLeft {
		t.Errorf("boss = %+v", boss.Character())
	}
	if boss.Category != model.CategoryEnemy {
		t.Errorf("boss category = %v", boss.Category)
	}

	wall := scene.Find("BossCageLeftWall")
	if wall.Scope.Kind != model.ScopeNone || wall.Gravity != core.DirNone {
		t.Errorf("wall scope=%v gravity=%v", wall.Scope, wall.Gravity)
	}

	if scene.Projectile.SizeBlocks != 0.5 || scene.Projectile.Damage != 10 {
		t.Errorf("projectile = %+v", scene.Projectile)
	}
	if scene.Projectile.Texture.Kind != asset.TextureColor || scene.Projectile.Texture.Key != "yellow" {
		t.Errorf("projectile texture = %+v", scene.Projectile.Texture)
	}

	// Fresh models on every build
	again, _ := tables.Build(readyProvider(), testOpts, zap.NewNop())
	if again.Find("Player") == player {
		t.Error("Build reused a model instance")
	}
}

func TestBuildUsesSpriteSheet(t *testing.T) {
	p := readyProvider()
	p.RegisterImage("player_sprite", image.NewRGBA(image.Rect(0, 0, 96, 48)))

	tables, _ := DefaultTables()
	scene, _ := tables.Build(p, testOpts, zap.NewNop())

	player := scene.Find("Player")
	if player.Shape.Texture.Kind != asset.TextureImage {
		t.Fatalf("player texture kind = %v, want image", player.Shape.Texture.Kind)
	}
	if player.Shape.Frame != model.FrameIdle || len(player.Shape.Sprites) != 3 {
		t.Errorf("frame = %q sprites = %d", player.Shape.Frame, len(player.Shape.Sprites))
	}
	tex := player.Shape.CurrentTexture()
	if tex.Region == nil || *tex.Region != core.NewRect(0, 0, 32, 48) {
		t.Errorf("idle region = %v", tex.Region)
	}
}

func TestBuildSkipsInvalidEntries(t *testing.T) {
	raw := []byte(`
shapes:
  block: {width: 1, height: 1, texture: red}
models:
  - {name: Good, category: terrain, shape: block}
  - {name: BadCategory, category: dragon, shape: block}
  - {name: BadShape, category: terrain, shape: nope}
  - {name: BadClass, class: wizard, category: enemy, shape: block}
  - {name: BadGravity, category: terrain, shape: block, gravity: sideways}
  - {name: BadScope, category: terrain, shape: block, scope: single_model_type, scope_target: ghost}
  - name: Hugger
    class: character
    category: enemy
    shape: block
    health: 50
    effects:
      - {kind: damage, amount: 1, target: other}
`)
	tables, err := ParseTables(raw)
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}

	obsCore, logs := observer.New(zapcore.WarnLevel)
	scene, err := tables.Build(readyProvider(), testOpts, zap.New(obsCore))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(scene.Spawns) != 2 {
		t.Fatalf("spawns = %d, want 2", len(scene.Spawns))
	}
	if logs.FilterMessage("model skipped").Len() != 5 {
		t.Errorf("skip warnings = %d, want 5", logs.FilterMessage("model skipped").Len())
	}

	var unknownCategory bool
	for _, entry := range logs.All() {
		for _, f := range entry.Context {
			if f.Key == "error" {
				if err, ok := f.Interface.(error); ok && errors.Is(err, model.ErrUnknownCategory) {
					unknownCategory = true
				}
			}
		}
	}
	if !unknownCategory {
		t.Error("unknown category error not logged")
	}

	hugger := scene.Find("Hugger")
	if hugger.Character().Health != 50 {
		t.Errorf("explicit health = %d, want 50", hugger.Character().Health)
	}
	if len(hugger.OnHit) != 1 || hugger.OnHit[0] != model.Damage(1) {
		t.Errorf("effects = %+v", hugger.OnHit)
	}
	if scene.Spawns[0].Layer != "FG" {
		t.Errorf("default layer = %q, want FG", scene.Spawns[0].Layer)
	}
}

func TestBuildNilTables(t *testing.T) {
	var tables *Tables
	if _, err := tables.Build(readyProvider(), testOpts, nil); !errors.Is(err, ErrNoTables) {
		t.Errorf("err = %v, want ErrNoTables", err)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables("/nonexistent/tables.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}
