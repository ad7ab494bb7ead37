// Package status holds lock-free runtime metrics shared between the frame loop and readers
package status

import "sync/atomic"

// Metric keys written by the controller
const (
	KeyRunning      = "loop.running"
	KeyFPS          = "loop.fps"
	KeyFrames       = "loop.frames"
	KeySkippedTicks = "loop.skipped_ticks"
	KeyActiveModels = "models.active"
	KeyDestroyed    = "models.destroyed"
	KeyEffects      = "collision.effects"
	KeyDirect       = "collision.direct"
	KeyPlayerHealth = "player.health"
	KeyLastDestroy  = "models.last_destroyed"
	KeyShots        = "player.shots"
	KeyDebugDisplay = "debug.collision"
)

// Registry is the central metrics facade
// Writers cache pointers once; the frame loop stores directly into the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Len returns the number of metrics across all types
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Snapshot copies every metric into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Len())
	r.Bools.Each(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Each(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Each(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Each(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
