package layer

import (
	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/model"
	"github.com/lixenwraith/tile-fighter/render"
)

// Debug collision stroke colors
var (
	DetectColor = core.RGB{R: 255, G: 214, B: 10}
	ActualColor = core.RGB{R: 255, G: 59, B: 48}
)

// DrawActiveModels repaints the surface with every model of the iteration view
// Read-only with respect to simulation state
func (l *Layer) DrawActiveModels(s render.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	for _, h := range l.snapshot {
		m, ok := l.store.get(h)
		if !ok {
			continue
		}
		drawModel(s, m)
	}
}

func drawModel(s render.Surface, m *model.Model) {
	dst := m.CollisionRect(model.RectActual)
	tex := m.Shape.CurrentTexture()

	switch {
	case tex.Kind == asset.TextureImage && tex.Image != nil:
		s.DrawImageRegion(tex.Image, tex.SourceRect(), dst, m.Shape.Flip)
	case tex.Kind == asset.TextureImage:
		s.FillRect(dst, asset.FallbackColor)
	default:
		s.FillRect(dst, tex.Color)
	}

	if m.DisplayCollision {
		s.StrokeRect(m.CollisionRect(model.RectDetect), DetectColor)
		s.StrokeRect(dst, ActualColor)
	}
}
