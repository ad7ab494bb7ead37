package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tile-fighter/core"
)

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the canvas background
func TcellToRGB(c tcell.Color) core.RGB {
	if c == tcell.ColorDefault {
		return DefaultBackground
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
