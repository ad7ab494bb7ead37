package controller

import (
	"math"

	"github.com/lixenwraith/tile-fighter/layer"
)

// PerfStats is the externally visible performance snapshot
type PerfStats struct {
	FPS      float64            `json:"fps"`
	PerLayer []layer.LayerStats `json:"layerStats"`
}

// PerfStats returns the FPS rounded to two decimals and the active models of each layer in declaration order
func (c *Controller) PerfStats() PerfStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := PerfStats{
		FPS:      math.Round(c.fps*100) / 100,
		PerLayer: make([]layer.LayerStats, 0, len(c.layers)),
	}
	for _, l := range c.layers {
		stats.PerLayer = append(stats.PerLayer, l.PerfStats())
	}
	return stats
}

// StatsFrame is what the stats endpoint publishes
type StatsFrame struct {
	Perf    PerfStats      `json:"perf"`
	Metrics map[string]any `json:"metrics"`
}

// StatsSnapshot implements network.Source
func (c *Controller) StatsSnapshot() any {
	return StatsFrame{
		Perf:    c.PerfStats(),
		Metrics: c.registry.Snapshot(),
	}
}
