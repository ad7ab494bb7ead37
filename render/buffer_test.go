package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/core"
)

var (
	red  = core.RGB{R: 255}
	blue = core.RGB{B: 255}
)

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(64, 32)
	if w, h := c.Size(); w != 8 || h != 4 {
		t.Fatalf("size = %dx%d, want 8x4", w, h)
	}

	c.FillRect(core.NewRect(16, 8, 16, 16), red)

	tests := []struct {
		x, y    int
		touched bool
	}{
		{2, 1, true},
		{3, 2, true},
		{1, 1, false},
		{4, 1, false},
		{2, 3, false},
	}
	for _, tt := range tests {
		rgb, touched := c.At(tt.x, tt.y)
		if touched != tt.touched {
			t.Errorf("dot (%d,%d) touched = %v, want %v", tt.x, tt.y, touched, tt.touched)
		}
		if touched && rgb != red {
			t.Errorf("dot (%d,%d) = %v, want red", tt.x, tt.y, rgb)
		}
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	c := NewCanvas(32, 32)
	c.FillRect(core.NewRect(-100, -100, 1000, 1000), red)
	c.FillRect(core.NewRect(500, 500, 10, 10), blue)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if rgb, _ := c.At(x, y); rgb != red {
				t.Fatalf("dot (%d,%d) = %v, want red", x, y, rgb)
			}
		}
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	c := NewCanvas(64, 64)
	c.StrokeRect(core.NewRect(0, 0, 32, 32), blue)

	if _, ok := c.At(0, 0); !ok {
		t.Error("corner not stroked")
	}
	if _, ok := c.At(3, 3); !ok {
		t.Error("far corner not stroked")
	}
	if _, ok := c.At(1, 1); ok {
		t.Error("interior stroked")
	}
	if _, ok := c.At(4, 4); ok {
		t.Error("outside stroked")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(32, 32)
	c.FillRect(c.Bounds(), red)
	c.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			rgb, touched := c.At(x, y)
			if touched || rgb != DefaultBackground {
				t.Fatalf("dot (%d,%d) not cleared: %v %v", x, y, rgb, touched)
			}
		}
	}
}

func newTwoPixelImage() *asset.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	return &asset.Image{Name: "pair", Src: img}
}

func TestCanvasDrawImageRegion(t *testing.T) {
	img := newTwoPixelImage()
	src := core.NewRect(0, 0, 2, 1)
	dst := core.NewRect(0, 0, 16, 8)

	c := NewCanvas(16, 8)
	c.DrawImageRegion(img, src, dst, false)
	if rgb, _ := c.At(0, 0); rgb != red {
		t.Errorf("left dot = %v, want red", rgb)
	}
	if rgb, _ := c.At(1, 0); rgb != blue {
		t.Errorf("right dot = %v, want blue", rgb)
	}

	c.Clear()
	c.DrawImageRegion(img, src, dst, true)
	if rgb, _ := c.At(0, 0); rgb != blue {
		t.Errorf("flipped left dot = %v, want blue", rgb)
	}
	if rgb, _ := c.At(1, 0); rgb != red {
		t.Errorf("flipped right dot = %v, want red", rgb)
	}
}

func TestCanvasDrawImageTransparent(t *testing.T) {
	img := &asset.Image{Name: "empty", Src: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	c := NewCanvas(32, 32)
	c.DrawImageRegion(img, core.NewRect(0, 0, 4, 4), c.Bounds(), false)

	if _, ok := c.At(0, 0); ok {
		t.Error("transparent pixel touched the canvas")
	}

	// Nil image is ignored
	c.DrawImageRegion(nil, core.Rect{}, c.Bounds(), false)
}

func TestCompositeOrder(t *testing.T) {
	o := NewCompositor(32, 32)
	bg := o.Register("BG")
	fg := o.Register("FG")

	bg.FillRect(bg.Bounds(), red)
	fg.FillRect(core.NewRect(0, 0, 8, 8), blue)

	frame := o.Composite()
	if rgb, _ := frame.At(0, 0); rgb != blue {
		t.Errorf("overlapped dot = %v, want blue from FG", rgb)
	}
	if rgb, _ := frame.At(1, 1); rgb != red {
		t.Errorf("background dot = %v, want red from BG", rgb)
	}

	if _, ok := o.Canvas("FG"); !ok {
		t.Error("FG canvas not found")
	}
	if _, ok := o.Canvas("HUD"); ok {
		t.Error("unknown canvas found")
	}
}

func TestCanvasDrawImageBlendsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{B: 255, A: 128})

	c := NewCanvas(8, 8)
	c.Set(0, 0, red)
	c.DrawImageRegion(&asset.Image{Name: "glass", Src: img}, core.NewRect(0, 0, 1, 1), c.Bounds(), false)

	rgb, _ := c.At(0, 0)
	if rgb.R == 0 || rgb.B == 0 || rgb.R == 255 || rgb.B == 255 {
		t.Errorf("blended dot = %v, want a red/blue mix", rgb)
	}
}
