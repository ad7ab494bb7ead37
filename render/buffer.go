package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

// DotPx is the edge length of one canvas dot in pixels
// A terminal cell is 8x16 px and shows two dots stacked with a half-block glyph
const DotPx = 8

// DefaultBackground is painted where no layer touched a dot
var DefaultBackground = core.RGB{R: 26, G: 27, B: 38}

// Canvas is an offscreen dot buffer with touched tracking, implementing Surface
// Each layer draws into its own canvas; the compositor merges touched dots
type Canvas struct {
	dots    []core.RGB
	touched []bool
	width   int
	height  int
	bounds  core.Rect
}

// NewCanvas creates a canvas covering widthPx x heightPx pixels
func NewCanvas(widthPx, heightPx float64) *Canvas {
	w := int(math.Ceil(widthPx / DotPx))
	h := int(math.Ceil(heightPx / DotPx))
	c := &Canvas{
		dots:    make([]core.RGB, w*h),
		touched: make([]bool, w*h),
		width:   w,
		height:  h,
		bounds:  core.NewRect(0, 0, widthPx, heightPx),
	}
	c.Clear()
	return c
}

// Size returns the canvas dimensions in dots
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Bounds returns the pixel rect the canvas covers
func (c *Canvas) Bounds() core.Rect {
	return c.bounds
}

// Clear resets all dots to the background using exponential copy
func (c *Canvas) Clear() {
	if len(c.dots) == 0 {
		return
	}
	c.dots[0] = DefaultBackground
	c.touched[0] = false
	for filled := 1; filled < len(c.dots); filled *= 2 {
		copy(c.dots[filled:], c.dots[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set paints one dot and marks it touched
func (c *Canvas) Set(x, y int, rgb core.RGB) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.dots[idx] = rgb
	c.touched[idx] = true
}

// At returns the dot color and whether any draw call touched it
func (c *Canvas) At(x, y int) (core.RGB, bool) {
	if !c.inBounds(x, y) {
		return DefaultBackground, false
	}
	idx := y*c.width + x
	return c.dots[idx], c.touched[idx]
}

// dotSpan returns the dot range [x0,x1) x [y0,y1) whose centers fall inside r
func (c *Canvas) dotSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(r.Left()/DotPx - 0.5))
	y0 = int(math.Ceil(r.Top()/DotPx - 0.5))
	x1 = int(math.Ceil(r.Right()/DotPx - 0.5))
	y1 = int(math.Ceil(r.Bottom()/DotPx - 0.5))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.width), min(y1, c.height)
	return
}

// FillRect paints every dot whose center lies inside r
func (c *Canvas) FillRect(r core.Rect, rgb core.RGB) {
	x0, y0, x1, y1 := c.dotSpan(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, rgb)
		}
	}
}

// StrokeRect paints the outermost ring of dots covered by r
func (c *Canvas) StrokeRect(r core.Rect, rgb core.RGB) {
	x0, y0, x1, y1 := c.dotSpan(r)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for x := x0; x < x1; x++ {
		c.Set(x, y0, rgb)
		c.Set(x, y1-1, rgb)
	}
	for y := y0; y < y1; y++ {
		c.Set(x0, y, rgb)
		c.Set(x1-1, y, rgb)
	}
}

// DrawImageRegion samples src at each covered dot center, mirrored when flip is set
// Fully transparent source pixels leave the dot untouched, partial alpha blends over it
func (c *Canvas) DrawImageRegion(img *asset.Image, src, dst core.Rect, flip bool) {
	if img == nil || img.Src == nil || dst.Size.Width <= 0 || dst.Size.Height <= 0 {
		return
	}
	bounds := img.Src.Bounds()
	x0, y0, x1, y1 := c.dotSpan(dst)
	for y := y0; y < y1; y++ {
		v := (float64(y)*DotPx + DotPx/2 - dst.Top()) / dst.Size.Height
		sy := int(src.Top() + v*src.Size.Height)
		sy = min(max(sy, bounds.Min.Y), bounds.Max.Y-1)
		for x := x0; x < x1; x++ {
			u := (float64(x)*DotPx + DotPx/2 - dst.Left()) / dst.Size.Width
			if flip {
				u = 1 - u
			}
			sx := int(src.Left() + u*src.Size.Width)

			sx = min(max(sx, bounds.Min.X), bounds.Max.X-1)

			rgb, alpha := colorToRGB(img.Src.At(sx, sy))
			if alpha == 0 {
				continue
			}
			if alpha < 1 {
				under, _ := c.At(x, y)
				rgb = under.Blend(rgb, alpha)
			}
			c.Set(x, y, rgb)
		}
	}
}

// colorToRGB un-premultiplies alpha and returns the opacity in [0,1]
func colorToRGB(cl color.Color) (core.RGB, float64) {
	r, g, b, a := cl.RGBA()
	if a == 0 {
		return core.RGB{}, 0
	}
	return core.RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}, float64(a) / 0xffff
}
