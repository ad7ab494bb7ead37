package core

import "math"

// BlockSizePx is the edge length of one map block in pixels
const BlockSizePx = 16

// Point is a position in pixel space, origin top-left, y down
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height pair; unit depends on context (blocks for shapes, px for rects)
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in pixel space
type Rect struct {
	Pos  Point
	Size Size
}

// NewRect builds a rect from raw coordinates
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.Pos.X }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Pos.Y }

// Right returns the right edge
func (r Rect) Right() float64 { return r.Pos.X + r.Size.Width }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.Height }

// Center returns the midpoint
func (r Rect) Center() Point {
	return Point{X: r.Pos.X + r.Size.Width/2, Y: r.Pos.Y + r.Size.Height/2}
}

// Expand grows the rect by pad on every side
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Pos:  Point{X: r.Pos.X - pad, Y: r.Pos.Y - pad},
		Size: Size{Width: r.Size.Width + 2*pad, Height: r.Size.Height + 2*pad},
	}
}

// BlocksToPx converts a block count to pixels
func BlocksToPx(blocks float64) float64 {
	return blocks * BlockSizePx
}

// PxToBlocks converts pixels to the nearest whole block count
func PxToBlocks(px float64) float64 {
	return math.Round(px / BlockSizePx)
}

// BlockSizeToPx converts a size in blocks to pixels
func BlockSizeToPx(s Size) Size {
	return Size{Width: BlocksToPx(s.Width), Height: BlocksToPx(s.Height)}
}
