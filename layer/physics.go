package layer

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/model"
	"github.com/lixenwraith/tile-fighter/vmath"
)

// Contact classifies a candidate pair
type Contact uint8

const (
	ContactNone   Contact = iota
	ContactClose          // DETECT rects overlap, no physical effect
	ContactDirect         // ACTUAL rects overlap
)

func (c Contact) String() string {
	switch c {
	case ContactClose:
		return "CLOSE"
	case ContactDirect:
		return "DIRECT"
	}
	return "NONE"
}

// Destroyed describes one model garbage collected during a frame
type Destroyed struct {
	Name     string
	Category model.Category
	Action   model.DestroyAction
	Reason   Reason
}

// FrameReport summarises one SimulatePhysics pass
type FrameReport struct {
	Frame     uint64
	Simulated int
	Direct    int
	Close     int
	Effects   int
	Destroyed []Destroyed
}

// Classify tests base against other, honoring the base's collision scope only
func Classify(base, other *model.Model) (Contact, core.Direction) {
	if !base.Scope.Accepts(other) {
		return ContactNone, core.DirNone
	}
	if hit, dir := vmath.RectsIntersecting(base.CollisionRect(model.RectActual), other.CollisionRect(model.RectActual)); hit {
		return ContactDirect, dir
	}
	if hit, _ := vmath.RectsIntersecting(base.CollisionRect(model.RectDetect), other.CollisionRect(model.RectDetect)); hit {
		return ContactClose, core.DirNone
	}
	return ContactNone, core.DirNone
}

// SimulatePhysics advances every model of the iteration view by one frame
// Per model: GC, gravity, proximity, classification, resolution, character update, integrate, reset
func (l *Layer) SimulatePhysics() FrameReport {
	l.frame++
	report := FrameReport{Frame: l.frame}

	for _, h := range l.snapshot {
		m, ok := l.store.get(h)
		if !ok {
			// Removed earlier in this frame
			continue
		}

		if reason, dead := l.collectable(m); dead {
			if gone, ok := l.destroy(h, reason); ok {
				report.Destroyed = append(report.Destroyed, Destroyed{
					Name:     gone.Name,
					Category: gone.Category,
					Action:   gone.OnDestroy,
					Reason:   reason,
				})
			}
			continue
		}

		m.ApplyGravity()

		for _, other := range l.nearby(h, m) {
			contact, dir := Classify(m, other)
			switch contact {
			case ContactClose:
				report.Close++
			case ContactDirect:
				report.Direct++
				report.Effects += l.resolve(m, other, dir)
			}
			if m.State == model.StateDestroyed {
				// A model that destroyed itself stops hitting further contacts
				break
			}
		}

		m.UpdateData(l.speeds.Character)
		m.ApplyMoveIntentForce(l.speedFor(m))
		m.ResetMoveIntent()
		m.ResetCollisionMap()
		report.Simulated++
	}

	return report
}

// collectable reports whether m must be garbage collected this frame
// Touching edges count as intersecting: a rect flush with the bounds edge is kept, and one moving out goes a frame later
func (l *Layer) collectable(m *model.Model) (Reason, bool) {
	if m.State == model.StateDestroyed {
		return ReasonDestroyed, true
	}
	if hit, _ := vmath.RectsIntersecting(m.CollisionRect(model.RectActual), l.bounds); !hit {
		return ReasonOutOfBounds, true
	}
	return 0, false
}

// nearby returns every other live model whose DETECT rect overlaps m's
// O(n) per model, O(n²) per frame
func (l *Layer) nearby(self Handle, m *model.Model) []*model.Model {
	detect := m.CollisionRect(model.RectDetect)
	var out []*model.Model
	for _, h := range l.snapshot {
		if h == self {
			continue
		}
		other, ok := l.store.get(h)
		if !ok || other.State == model.StateDestroyed {
			continue
		}
		if model.OwnerExcluded(m, other) {
			continue
		}
		if hit, _ := vmath.RectsIntersecting(detect, other.CollisionRect(model.RectDetect)); hit {
			out = append(out, other)
		}
	}
	return out
}

// resolve blocks the push direction and applies the contact's effects, returning how many landed
func (l *Layer) resolve(m, other *model.Model, dir core.Direction) int {
	m.RemoveMoveIntent(dir)
	m.AddCollision(dir)

	applied := 0
	for _, e := range l.resolver.Resolve(m, other) {
		if !model.ApplyEffect(e, m, other) {
			continue
		}
		applied++
		l.log.Debug("effect applied",
			zap.String("layer", l.name),
			zap.String("self", m.Name),
			zap.String("other", other.Name),
			zap.Stringer("effect", e.Kind),
			zap.Int("amount", e.Amount),
		)
		if l.listener != nil {
			l.listener.OnEffect(l.name, e, m, other)
		}
	}
	return applied
}

func (l *Layer) speedFor(m *model.Model) float64 {
	if m.Category == model.CategoryProjectile {
		return l.speeds.Projectile
	}
	return l.speeds.Character
}
