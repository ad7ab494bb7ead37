package layer

import "github.com/lixenwraith/tile-fighter/model"

// ModelStat identifies one active model
type ModelStat struct {
	Name     string         `json:"name"`
	Category model.Category `json:"-"`
	Kind     string         `json:"category"`
}

// LayerStats lists the active models of a layer
type LayerStats struct {
	LayerName    string      `json:"layerName"`
	ActiveModels []ModelStat `json:"activeModels"`
}

// PerfStats snapshots the iteration view
func (l *Layer) PerfStats() LayerStats {
	stats := LayerStats{
		LayerName:    l.name,
		ActiveModels: make([]ModelStat, 0, len(l.snapshot)),
	}
	for _, m := range l.Models() {
		stats.ActiveModels = append(stats.ActiveModels, ModelStat{
			Name:     m.Name,
			Category: m.Category,
			Kind:     m.Category.String(),
		})
	}
	return stats
}
