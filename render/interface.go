package render

import (
	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

// Surface accepts draw calls in pixel space, origin top-left, y down
type Surface interface {
	Clear()
	FillRect(r core.Rect, c core.RGB)
	DrawImageRegion(img *asset.Image, src, dst core.Rect, flip bool)
	StrokeRect(r core.Rect, c core.RGB)
	Bounds() core.Rect
}

// Display is the output the composited frame is presented to
type Display interface {
	Present(frame *Canvas, hud string) error
}
