// Package layer owns a partition of active models and runs their per-frame physics
package layer

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/model"
)

// Speeds are the per-frame integration forces in pixels
type Speeds struct {
	Character  float64
	Projectile float64
}

// DefaultSpeeds match the default game configuration
var DefaultSpeeds = Speeds{Character: 3, Projectile: 6}

// Reason explains why a model left the layer
type Reason uint8

const (
	ReasonDestroyed   Reason = iota // state reached DESTROYED
	ReasonOutOfBounds               // no overlap with the layer bounds
	ReasonRemoved                   // explicit RemoveModel
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out_of_bounds"
	case ReasonRemoved:
		return "removed"
	}
	return "destroyed"
}

// Listener observes destroy actions and applied effects
type Listener interface {
	OnDestroy(layer string, m *model.Model, reason Reason)
	OnEffect(layer string, e model.Effect, self, other *model.Model)
}

// Option configures a Layer
type Option func(*Layer)

// WithSpeeds overrides the integration speeds
func WithSpeeds(s Speeds) Option {
	return func(l *Layer) { l.speeds = s }
}

// WithResolver replaces the declared-effects resolver
func WithResolver(r model.EffectResolver) Option {
	return func(l *Layer) {
		if r != nil {
			l.resolver = r
		}
	}
}

// WithListener installs a destroy and effect observer
func WithListener(ln Listener) Option {
	return func(l *Layer) { l.listener = ln }
}

// WithLogger sets the diagnostics logger
func WithLogger(log *zap.Logger) Option {
	return func(l *Layer) {
		if log != nil {
			l.log = log
		}
	}
}

// Layer is a named simulation and render partition
// Not safe for concurrent use, callers serialize access per frame
type Layer struct {
	name     string
	bounds   core.Rect
	store    *store
	snapshot []Handle
	speeds   Speeds
	resolver model.EffectResolver
	listener Listener
	log      *zap.Logger
	frame    uint64
}

// New creates an empty layer whose GC bounds are the render surface rect
func New(name string, bounds core.Rect, opts ...Option) *Layer {
	l := &Layer{
		name:     name,
		bounds:   bounds,
		store:    newStore(),
		snapshot: make([]Handle, 0, 64),
		speeds:   DefaultSpeeds,
		resolver: model.DeclaredEffects{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the layer name
func (l *Layer) Name() string {
	return l.name
}

// Bounds returns the GC bounds
func (l *Layer) Bounds() core.Rect {
	return l.bounds
}

// AddActiveModels inserts models; they are simulated after the next UpdateActiveModels
func (l *Layer) AddActiveModels(models ...*model.Model) []Handle {
	handles := make([]Handle, 0, len(models))
	for _, m := range models {
		if m == nil {
			continue
		}
		handles = append(handles, l.store.insert(m))
	}
	return handles
}

// UpdateActiveModels refreshes the iteration view used by the next simulate and draw passes
func (l *Layer) UpdateActiveModels() {
	l.snapshot = l.store.activate(l.snapshot)
}

// Get resolves a handle
func (l *Layer) Get(h Handle) (*model.Model, bool) {
	return l.store.get(h)
}

// RemoveModel destroys the model behind h; a second call for the same handle returns false
func (l *Layer) RemoveModel(h Handle) bool {
	_, ok := l.destroy(h, ReasonRemoved)
	return ok
}

// Clear drops every model without firing destroy actions
func (l *Layer) Clear() int {
	removed := l.store.clear()
	for _, m := range removed {
		m.ResetMoveIntent()
		m.ResetCollisionMap()
	}
	l.snapshot = l.snapshot[:0]
	if len(removed) > 0 {
		l.log.Debug("layer cleared", zap.String("layer", l.name), zap.Int("models", len(removed)))
	}
	return len(removed)
}

// Count returns the number of live models, pending ones included
func (l *Layer) Count() int {
	return l.store.count()
}

// Models returns the live models of the current iteration view
func (l *Layer) Models() []*model.Model {
	out := make([]*model.Model, 0, len(l.snapshot))
	for _, h := range l.snapshot {
		if m, ok := l.store.get(h); ok {
			out = append(out, m)
		}
	}
	return out
}

// Each calls fn for every live model, pending ones included
func (l *Layer) Each(fn func(*model.Model)) {
	l.store.each(fn)
}

// ByCategory derives the per-category view of the current iteration view
func (l *Layer) ByCategory(c model.Category) []*model.Model {
	var out []*model.Model
	for _, h := range l.snapshot {
		if m, ok := l.store.get(h); ok && m.Category == c {
			out = append(out, m)
		}
	}
	return out
}

// destroy removes the model, forces DESTROYED and notifies exactly once
func (l *Layer) destroy(h Handle, reason Reason) (*model.Model, bool) {
	m, ok := l.store.remove(h)
	if !ok {
		return nil, false
	}
	m.ModifyState(model.StateDestroyed)
	m.ResetMoveIntent()
	m.ResetCollisionMap()

	l.log.Debug("model destroyed",
		zap.String("layer", l.name),
		zap.String("model", m.Name),
		zap.Stringer("category", m.Category),
		zap.Stringer("reason", reason),
		zap.Stringer("action", m.OnDestroy),
	)
	if l.listener != nil {
		l.listener.OnDestroy(l.name, m, reason)
	}
	return m, true
}
