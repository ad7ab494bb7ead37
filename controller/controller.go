// Package controller drives the layers on a fixed timestep and presents the composited frame
package controller

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/audio"
	"github.com/lixenwraith/tile-fighter/config"
	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/data"
	"github.com/lixenwraith/tile-fighter/layer"
	"github.com/lixenwraith/tile-fighter/model"
	"github.com/lixenwraith/tile-fighter/network"
	"github.com/lixenwraith/tile-fighter/render"
	"github.com/lixenwraith/tile-fighter/status"
)

// ErrNoSurface is returned when no display is available to render into
var ErrNoSurface = errors.New("controller: no render surface")

// SoundPlayer plays game cues
type SoundPlayer interface {
	Play(audio.SoundType)
}

// Publisher receives destroy notifications for remote readers
type Publisher interface {
	PublishDestroy(network.DestroyPayload)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the diagnostics logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock replaces the system clock
func WithClock(tp TimeProvider) Option {
	return func(c *Controller) {
		if tp != nil {
			c.clock = tp
		}
	}
}

// WithSound installs the audio cue player
func WithSound(p SoundPlayer) Option {
	return func(c *Controller) { c.sound = p }
}

// WithResolver replaces the declared-effects resolver in every layer
func WithResolver(r model.EffectResolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// WithPublisher forwards destroy events
func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithRegistry shares a metrics registry
func WithRegistry(r *status.Registry) Option {
	return func(c *Controller) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithAssets sets the texture provider used to build scenes
func WithAssets(p *asset.Provider) Option {
	return func(c *Controller) {
		if p != nil {
			c.assets = p
		}
	}
}

// WithTables sets the model tables scenes are built from
func WithTables(t *data.Tables) Option {
	return func(c *Controller) {
		if t != nil {
			c.tables = t
		}
	}
}

// Controller owns the named layers and the fixed-step frame gate
// All mutation goes through mu; metrics are readable lock-free from the registry
type Controller struct {
	mu sync.Mutex

	cfg        *config.Config
	display    render.Display
	compositor *render.Compositor
	layers     []*layer.Layer
	canvases   []*render.Canvas

	tables *data.Tables
	assets *asset.Provider
	scene  data.Scene
	player *model.Model

	running  bool
	gameOver bool
	debug    bool

	// Frame gate
	frameDuration time.Duration
	lastFrame     time.Time
	frames        uint64

	// FPS window
	fps          float64
	frameCount   int
	lastFPSCheck time.Time

	clock     TimeProvider
	log       *zap.Logger
	sound     SoundPlayer
	resolver  model.EffectResolver
	publisher Publisher
	registry  *status.Registry

	// Cached metric pointers
	statRunning   *atomic.Bool
	statDebug     *atomic.Bool
	statFPS       *status.AtomicFloat
	statFrames    *atomic.Int64
	statSkipped   *atomic.Int64
	statActive    *atomic.Int64
	statDestroyed *atomic.Int64
	statEffects   *atomic.Int64
	statDirect    *atomic.Int64
	statHealth    *atomic.Int64
	statShots     *atomic.Int64
	statLast      *status.AtomicString
}

// New creates a stopped controller with one layer per declared layer name
// A nil display is the only fatal initialisation error
func New(display render.Display, cfg *config.Config, opts ...Option) (*Controller, error) {
	if display == nil {
		return nil, ErrNoSurface
	}
	if cfg == nil {
		cfg = config.Default()
	}

	c := &Controller{
		cfg:           cfg,
		display:       display,
		debug:         cfg.Game.DebugCollision,
		frameDuration: cfg.Game.FrameDuration(),
		clock:         SystemClock{},
		log:           zap.NewNop(),
		registry:      status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.assets == nil {
		c.assets = asset.NewProvider(c.log.Named("asset"))
		c.assets.MarkReady()
	}
	if c.tables == nil {
		t, err := data.DefaultTables()
		if err != nil {
			return nil, fmt.Errorf("load default tables: %w", err)
		}
		c.tables = t
	}

	c.cacheMetrics()

	widthPx := core.BlocksToPx(float64(cfg.Game.MapWidth))
	heightPx := core.BlocksToPx(float64(cfg.Game.MapHeight))
	bounds := core.NewRect(0, 0, widthPx, heightPx)
	c.compositor = render.NewCompositor(widthPx, heightPx)

	speeds := layer.Speeds{Character: cfg.Game.CharacterSpeed, Projectile: cfg.Game.ProjectileSpeed}
	for _, name := range c.tables.Layers {
		l := layer.New(name, bounds,
			layer.WithSpeeds(speeds),
			layer.WithResolver(c.resolver),
			layer.WithListener(c),
			layer.WithLogger(c.log.Named("layer").With(zap.String("layer", name))),
		)
		c.layers = append(c.layers, l)
		c.canvases = append(c.canvases, c.compositor.Register(name))
	}

	c.log.Debug("controller created",
		zap.Strings("layers", c.tables.Layers),
		zap.Duration("frame", c.frameDuration),
		zap.Float64("width_px", widthPx),
		zap.Float64("height_px", heightPx),
	)
	return c, nil
}

func (c *Controller) cacheMetrics() {
	r := c.registry
	c.statRunning = r.Bools.Get(status.KeyRunning)
	c.statDebug = r.Bools.Get(status.KeyDebugDisplay)
	c.statFPS = r.Floats.Get(status.KeyFPS)
	c.statFrames = r.Ints.Get(status.KeyFrames)
	c.statSkipped = r.Ints.Get(status.KeySkippedTicks)
	c.statActive = r.Ints.Get(status.KeyActiveModels)
	c.statDestroyed = r.Ints.Get(status.KeyDestroyed)
	c.statEffects = r.Ints.Get(status.KeyEffects)
	c.statDirect = r.Ints.Get(status.KeyDirect)
	c.statHealth = r.Ints.Get(status.KeyPlayerHealth)
	c.statShots = r.Ints.Get(status.KeyShots)
	c.statLast = r.Strings.Get(status.KeyLastDestroy)
	c.statDebug.Store(c.debug)
}

// Registry returns the metrics registry
func (c *Controller) Registry() *status.Registry {
	return c.registry
}

// Layer returns the named layer
func (c *Controller) Layer(name string) (*layer.Layer, bool) {
	for _, l := range c.layers {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// Running reports whether the frame loop is active
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// GameOver reports whether the player was destroyed during this run
func (c *Controller) GameOver() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameOver
}

// Player returns the current player model, nil while stopped
func (c *Controller) Player() *model.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player
}

// Start builds a fresh scene, adds it to the layers and resets the frame timing
// Calling Start on a running controller is a no-op
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	scene, err := c.tables.Build(c.assets, data.BuildOptions{
		PlayerHealth:   c.cfg.Game.PlayerHealth,
		EnemyHealth:    c.cfg.Game.BossHealth,
		HitDamage:      c.cfg.Game.HitDamage,
		ProjectileSize: c.cfg.Game.ProjectileSize,
		DebugCollision: c.debug,
	}, c.log.Named("data"))
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	c.scene = scene
	c.player = nil
	c.gameOver = false
	for _, sp := range scene.Spawns {
		l, ok := c.Layer(sp.Layer)
		if !ok {
			c.log.Warn("spawn skipped: unknown layer", zap.String("model", sp.Model.Name), zap.String("layer", sp.Layer))
			continue
		}
		l.AddActiveModels(sp.Model)
		if c.player == nil && sp.Model.Category == model.CategoryPlayer && sp.Model.IsCharacter() {
			c.player = sp.Model
		}
	}

	now := c.clock.Now()
	c.running = true
	c.lastFrame = now
	c.lastFPSCheck = now
	c.frameCount = 0
	c.fps = 0
	c.statRunning.Store(true)
	c.statFPS.Set(0)
	c.storeHealth()

	c.log.Info("loop started", zap.Int("models", len(scene.Spawns)))
	return nil
}

// Stop halts the loop and removes every model added since Start, projectiles included
// Calling Stop on a stopped controller is a no-op
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	removed := 0
	for _, l := range c.layers {
		removed += l.Clear()
	}

	c.running = false
	c.player = nil
	c.lastFrame = time.Time{}
	c.lastFPSCheck = time.Time{}
	c.frameCount = 0
	c.fps = 0
	c.statRunning.Store(false)
	c.statFPS.Set(0)
	c.statActive.Store(0)

	c.log.Info("loop stopped", zap.Int("removed", removed), zap.Uint64("frames", c.frames))
}

// Toggle starts a stopped controller or stops a running one
func (c *Controller) Toggle() error {
	if c.Running() {
		c.Stop()
		return nil
	}
	return c.Start()
}

// PlayerMove forwards a movement request to the player; ignored while stopped
func (c *Controller) PlayerMove(dir core.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.player == nil || c.player.State == model.StateDestroyed {
		return
	}
	c.player.Move(dir)
}

// PlayerShoot arms the player's shot; the projectile spawns after the next simulation pass
// Returns false while stopped or cooling down
func (c *Controller) PlayerShoot() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.player == nil || c.player.State == model.StateDestroyed {
		return false
	}
	return c.player.Shoot(c.cfg.Game.ShootCooldown)
}

// ToggleDebugCollision flips the collision outline display for every model and returns the new value
func (c *Controller) ToggleDebugCollision() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.debug = !c.debug
	for _, l := range c.layers {
		l.Each(func(m *model.Model) { m.DisplayCollision = c.debug })
	}
	c.scene.Projectile.Display = c.debug
	c.statDebug.Store(c.debug)
	return c.debug
}
