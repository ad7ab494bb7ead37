package controller

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/audio"
	"github.com/lixenwraith/tile-fighter/layer"
	"github.com/lixenwraith/tile-fighter/model"
)

// Tick runs exactly one frame when at least one frame duration elapsed since the last one
// The remainder of the elapsed time carries over so the average rate holds
func (c *Controller) Tick(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return false
	}

	delta := now.Sub(c.lastFrame)
	if delta < c.frameDuration {
		c.statSkipped.Add(1)
		return false
	}
	c.lastFrame = now.Add(-(delta % c.frameDuration))

	c.runFrame()
	c.updateFPS(now)
	return true
}

// runFrame: update views, simulate, spawn shots, draw, composite, present
func (c *Controller) runFrame() {
	c.frames++
	c.statFrames.Store(int64(c.frames))

	active := 0
	for i, l := range c.layers {
		l.UpdateActiveModels()
		report := l.SimulatePhysics()
		c.statDirect.Add(int64(report.Direct))
		c.statEffects.Add(int64(report.Effects))

		c.spawnShots(l)

		l.DrawActiveModels(c.canvases[i])
		active += len(l.Models())
	}
	c.statActive.Store(int64(active))

	if c.player != nil && c.player.State != model.StateDestroyed {
		c.storeHealth()
	}

	frame := c.compositor.Composite()
	if err := c.display.Present(frame, c.hud()); err != nil {
		c.log.Warn("present failed", zap.Uint64("frame", c.frames), zap.Error(err))
	}
}

// spawnShots turns raised shooting flags into projectiles aimed at the opposing category
func (c *Controller) spawnShots(l *layer.Layer) {
	for _, m := range l.Models() {
		if !m.IsCharacter() || !m.ConsumeShot() {
			continue
		}
		target, ok := opponent(m.Category)
		if !ok {
			continue
		}
		p := model.NewProjectile(m, target, c.scene.Projectile)
		l.AddActiveModels(p)
		if m.Category == model.CategoryPlayer {
			c.statShots.Add(1)
		}
		c.play(audio.SoundShoot)
		c.log.Debug("projectile spawned",
			zap.String("layer", l.Name()),
			zap.String("owner", m.Name),
			zap.Stringer("target", target),
			zap.Float64("x", p.Pos.X),
			zap.Float64("y", p.Pos.Y),
		)
	}
}

func opponent(c model.Category) (model.Category, bool) {
	switch c {
	case model.CategoryPlayer:
		return model.CategoryEnemy, true
	case model.CategoryEnemy:
		return model.CategoryPlayer, true
	}
	return 0, false
}

// updateFPS counts the frame and recomputes the rate once per window of at least a second
func (c *Controller) updateFPS(now time.Time) {
	c.frameCount++
	elapsed := now.Sub(c.lastFPSCheck)
	if elapsed < time.Second {
		return
	}
	c.fps = float64(c.frameCount) / float64(elapsed.Milliseconds()) * 1000
	c.frameCount = 0
	c.lastFPSCheck = now
	c.statFPS.Set(c.fps)
}

func (c *Controller) hud() string {
	if !c.cfg.Display.ShowHUD {
		return ""
	}
	hp := 0
	if c.player != nil && !c.gameOver {
		hp = c.player.Character().Health
	}
	s := fmt.Sprintf(" FPS %6.2f  HP %3d  frame %d", c.fps, hp, c.frames)
	if c.gameOver {
		s += "  GAME OVER (p to stop)"
	}
	if c.debug {
		s += "  [collision]"
	}
	return s
}

func (c *Controller) storeHealth() {
	if c.player != nil {
		c.statHealth.Store(int64(c.player.Character().Health))
	}
}

func (c *Controller) play(st audio.SoundType) {
	if c.sound != nil {
		c.sound.Play(st)
	}
}
