package asset

import (
	"image"

	"github.com/lixenwraith/tile-fighter/core"
)

// TextureKind discriminates LoadedTexture
type TextureKind uint8

const (
	TextureColor TextureKind = iota
	TextureImage
)

// Image is a decoded image handle owned by the Provider
type Image struct {
	Name string
	Src  image.Image
}

// Bounds returns the image size in source pixels
func (i *Image) Bounds() core.Rect {
	b := i.Src.Bounds()
	return core.NewRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
}

// LoadedTexture is either a solid color or an image with an optional source sub-rectangle
type LoadedTexture struct {
	Kind   TextureKind
	Key    string
	Color  core.RGB
	Image  *Image
	Region *core.Rect // source pixels, nil = whole image
}

// SourceRect returns the region to sample, defaulting to the full image
func (t LoadedTexture) SourceRect() core.Rect {
	if t.Region != nil {
		return *t.Region
	}
	if t.Image != nil {
		return t.Image.Bounds()
	}
	return core.Rect{}
}

// WithRegion returns a copy of an image texture restricted to region
// Color textures are returned unchanged
func (t LoadedTexture) WithRegion(region core.Rect) LoadedTexture {
	if t.Kind != TextureImage {
		return t
	}
	r := region
	t.Region = &r
	return t
}
