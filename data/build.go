package data

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/model"
)

// ErrNoTables is returned when building from nil tables
var ErrNoTables = errors.New("data: nil tables")

// ProjectileShape names the shape entry used for fired projectiles
const ProjectileShape = "projectile"

// Spawn places one model into a named layer
type Spawn struct {
	Layer string
	Model *model.Model
}

// Scene is the set of models created for one run
type Scene struct {
	Layers     []string
	Spawns     []Spawn
	Projectile model.ProjectileSpec
}

// Find returns the first spawned model with the given name
func (s Scene) Find(name string) *model.Model {
	for _, sp := range s.Spawns {
		if sp.Model.Name == name {
			return sp.Model
		}
	}
	return nil
}

// BuildOptions supplies the run-time values that are not part of the tables
type BuildOptions struct {
	PlayerHealth   int
	EnemyHealth    int
	HitDamage      int
	ProjectileSize float64 // blocks, overrides the projectile shape when positive
	DebugCollision bool
}

// Build creates fresh models from the tables
// Entries with an unknown class, category, shape, direction or scope are logged and skipped
func (t *Tables) Build(p *asset.Provider, opts BuildOptions, log *zap.Logger) (Scene, error) {
	if t == nil {
		return Scene{}, ErrNoTables
	}
	if log == nil {
		log = zap.NewNop()
	}

	scene := Scene{Layers: t.Layers}
	for i := range t.Models {
		e := &t.Models[i]
		m, err := t.buildModel(e, p, opts)
		if err != nil {
			log.Warn("model skipped", zap.String("model", e.Name), zap.Error(err))
			continue
		}
		layer := e.Layer
		if layer == "" {
			layer = t.Layers[len(t.Layers)-1]
		}
		scene.Spawns = append(scene.Spawns, Spawn{Layer: layer, Model: m})
	}

	scene.Projectile = model.ProjectileSpec{
		SizeBlocks: opts.ProjectileSize,
		Texture:    asset.Fallback(ProjectileShape),
		Damage:     opts.HitDamage,
		Display:    opts.DebugCollision,
	}
	if s, ok := t.Shape(ProjectileShape); ok {
		scene.Projectile.Texture = resolveTexture(p, s)
		if scene.Projectile.SizeBlocks <= 0 {
			scene.Projectile.SizeBlocks = s.Width
		}
	}
	return scene, nil
}

func (t *Tables) buildModel(e *ModelEntry, p *asset.Provider, opts BuildOptions) (*model.Model, error) {
	category, err := model.ParseCategory(e.Category)
	if err != nil {
		return nil, err
	}
	gravity, err := core.ParseDirection(e.Gravity)
	if err != nil {
		return nil, err
	}
	scope, err := model.ParseScope(e.Scope, e.ScopeTarget)
	if err != nil {
		return nil, err
	}
	onDestroy, err := model.ParseDestroyAction(e.OnDestroy)
	if err != nil {
		return nil, err
	}
	effects, err := parseEffects(e.Effects)
	if err != nil {
		return nil, err
	}
	shape, err := t.buildShape(e.Shape, p)
	if err != nil {
		return nil, err
	}

	display := opts.DebugCollision
	if e.Display != nil {
		display = *e.Display
	}

	params := model.Params{
		Name:             e.Name,
		Category:         category,
		Pos:              core.Point{X: core.BlocksToPx(e.X), Y: core.BlocksToPx(e.Y)},
		Shape:            shape,
		State:            model.StateNormal,
		Gravity:          gravity,
		Scope:            scope,
		DisplayCollision: display,
		OnHit:            effects,
		OnDestroy:        onDestroy,
	}

	switch strings.ToLower(e.Class) {
	case "", "model":
		return model.New(params), nil
	case "character":
		face, err := core.ParseDirection(e.Face)
		if err != nil {
			return nil, err
		}
		health := e.Health
		if health == 0 {
			health = opts.EnemyHealth
			if category == model.CategoryPlayer {
				health = opts.PlayerHealth
			}
		}
		return model.NewCharacter(params, health, face), nil
	}
	return nil, fmt.Errorf("unknown model class %q", e.Class)
}

func (t *Tables) buildShape(name string, p *asset.Provider) (model.Shape, error) {
	s, ok := t.Shape(name)
	if !ok {
		return model.Shape{}, fmt.Errorf("unknown shape %q", name)
	}
	shape := model.Shape{
		Size:    core.Size{Width: s.Width, Height: s.Height},
		Texture: resolveTexture(p, s),
	}
	if shape.Texture.Kind == asset.TextureImage && s.Sprites != "" {
		frames, ok := t.Sprites[s.Sprites]
		if !ok {
			return model.Shape{}, fmt.Errorf("unknown sprite sheet %q", s.Sprites)
		}
		shape.Sprites = make(map[string]model.SpriteFrame, len(frames))
		for name, f := range frames {
			shape.Sprites[name] = model.SpriteFrame{
				Pos:  core.Point{X: f.X, Y: f.Y},
				Size: core.Size{Width: f.Width, Height: f.Height},
			}
		}
		shape.SetSprite(model.FrameIdle, false)
	}
	return shape, nil
}

// resolveTexture prefers the shape texture, falling back when it names a missing image
func resolveTexture(p *asset.Provider, s ShapeEntry) asset.LoadedTexture {
	if s.Fallback != "" && !p.HasImage(s.Texture) {
		return p.Resolve(s.Fallback)
	}
	return p.Resolve(s.Texture)
}

func parseEffects(entries []EffectEntry) ([]model.Effect, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]model.Effect, 0, len(entries))
	for _, e := range entries {
		var eff model.Effect
		switch strings.ToLower(e.Kind) {
		case "damage":
			eff = model.Damage(e.Amount)
		case "destroy":
			eff = model.DestroySelf()
		default:
			return nil, fmt.Errorf("unknown effect %q", e.Kind)
		}
		switch strings.ToLower(e.Target) {
		case "":
		case "self":
			eff.Target = model.TargetSelf
		case "other":
			eff.Target = model.TargetOther
		default:
			return nil, fmt.Errorf("unknown effect target %q", e.Target)
		}
		out = append(out, eff)
	}
	return out, nil
}
