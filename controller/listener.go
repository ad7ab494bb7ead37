package controller

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/audio"
	"github.com/lixenwraith/tile-fighter/layer"
	"github.com/lixenwraith/tile-fighter/model"
	"github.com/lixenwraith/tile-fighter/network"
)

// OnDestroy runs the destroy action of a model leaving a layer
// Called from inside SimulatePhysics or RemoveModel with mu already held
func (c *Controller) OnDestroy(layerName string, m *model.Model, reason layer.Reason) {
	c.statDestroyed.Add(1)
	c.statLast.Store(m.Name)

	switch m.OnDestroy {
	case model.DestroyActionSound:
		c.play(audio.SoundDestroy)
	case model.DestroyActionGameOver:
		c.gameOver = true
		c.play(audio.SoundGameOver)
		c.statHealth.Store(0)
		c.log.Info("game over", zap.String("model", m.Name), zap.Stringer("reason", reason))
	}

	if c.publisher != nil {
		c.publisher.PublishDestroy(network.DestroyPayload{
			Layer:    layerName,
			Name:     m.Name,
			Category: m.Category.String(),
			Action:   m.OnDestroy.String(),
			Reason:   reason.String(),
		})
	}
}

// OnEffect plays the hit cue when damage lands on a character
func (c *Controller) OnEffect(_ string, e model.Effect, self, other *model.Model) {
	if e.Kind != model.EffectDamage {
		return
	}
	target := other
	if e.Target == model.TargetSelf {
		target = self
	}
	if target.IsCharacter() {
		c.play(audio.SoundHit)
	}
}
