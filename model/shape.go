package model

import (
	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

// Sprite frame names used by characters
const (
	FrameIdle    = "idle"
	FrameRunning = "running"
	FrameJumping = "jumping"
)

// SpriteFrame is a frame position and size inside a sprite sheet, in blocks
type SpriteFrame struct {
	Pos  core.Point
	Size core.Size
}

// SourceRect converts the frame to source pixels
func (f SpriteFrame) SourceRect() core.Rect {
	return core.Rect{
		Pos:  core.Point{X: core.BlocksToPx(f.Pos.X), Y: core.BlocksToPx(f.Pos.Y)},
		Size: core.BlockSizeToPx(f.Size),
	}
}

// Shape is a model's size in blocks plus its texture
// Immutable after construction except for texture and sprite frame swaps
type Shape struct {
	Size    core.Size
	Texture asset.LoadedTexture
	Sprites map[string]SpriteFrame
	Frame   string
	Flip    bool
}

// SizePx returns the shape size in pixels
func (s *Shape) SizePx() core.Size {
	return core.BlockSizeToPx(s.Size)
}

// SetSprite selects a frame of the sprite sheet; unknown frames are ignored
func (s *Shape) SetSprite(frame string, flip bool) {
	if _, ok := s.Sprites[frame]; !ok {
		return
	}
	s.Frame = frame
	s.Flip = flip
}

// CurrentTexture returns the texture restricted to the active sprite frame, if any
func (s *Shape) CurrentTexture() asset.LoadedTexture {
	if s.Texture.Kind != asset.TextureImage || s.Frame == "" {
		return s.Texture
	}
	f, ok := s.Sprites[s.Frame]
	if !ok {
		return s.Texture
	}
	return s.Texture.WithRegion(f.SourceRect())
}
