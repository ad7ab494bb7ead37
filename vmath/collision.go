package vmath

import "github.com/lixenwraith/tile-fighter/core"

// RectsIntersecting reports whether a and b overlap (touching edges count) and, if so,
// the face of a that was struck: the direction of the shallowest penetration axis
// Equal overlaps resolve in DOWN, UP, RIGHT, LEFT order
func RectsIntersecting(a, b core.Rect) (bool, core.Direction) {
	if a.Right() < b.Left() ||
		a.Left() > b.Right() ||
		a.Bottom() < b.Top() ||
		a.Top() > b.Bottom() {
		return false, core.DirNone
	}

	topOverlap := a.Bottom() - b.Top()
	bottomOverlap := b.Bottom() - a.Top()
	leftOverlap := a.Right() - b.Left()
	rightOverlap := b.Right() - a.Left()

	minOverlap := min(topOverlap, bottomOverlap, leftOverlap, rightOverlap)

	switch minOverlap {
	case topOverlap:
		return true, core.DirDown
	case bottomOverlap:
		return true, core.DirUp
	case leftOverlap:
		return true, core.DirRight
	default:
		return true, core.DirLeft
	}
}
