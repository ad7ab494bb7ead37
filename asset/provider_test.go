package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/tile-fighter/core"
)

func TestResolve_NotReadyReturnsFallback(t *testing.T) {
	p := NewProvider(nil)
	tex := p.Resolve("grey")
	if tex.Kind != TextureColor || tex.Color != FallbackColor {
		t.Fatalf("expected fallback before init, got %+v", tex)
	}
}

func TestResolve_NilProvider(t *testing.T) {
	var p *Provider
	if tex := p.Resolve("grey"); tex.Color != FallbackColor {
		t.Fatalf("nil provider should return fallback, got %+v", tex)
	}
}

func TestResolve_Colors(t *testing.T) {
	p := NewProvider(nil)
	p.MarkReady()

	tests := []struct {
		key  string
		want core.RGB
	}{
		{"Grey", core.RGB{R: 128, G: 128, B: 128}},
		{"LightSlateGrey", core.RGB{R: 119, G: 136, B: 153}},
		{"#42d8e3", core.RGB{R: 0x42, G: 0xd8, B: 0xe3}},
		{"no-such-color", FallbackColor},
		{"#zzzzzz", FallbackColor},
	}
	for _, tt := range tests {
		tex := p.Resolve(tt.key)
		if tex.Kind != TextureColor {
			t.Errorf("%s: expected color texture, got kind %d", tt.key, tex.Kind)
		}
		if tex.Color != tt.want {
			t.Errorf("%s: color = %v, want %v", tt.key, tex.Color, tt.want)
		}
	}
}

func TestResolve_ImageAndRegion(t *testing.T) {
	p := NewProvider(nil)
	p.RegisterImage("Player", image.NewRGBA(image.Rect(0, 0, 96, 48)))
	p.MarkReady()

	tex := p.Resolve("player")
	if tex.Kind != TextureImage || tex.Image == nil {
		t.Fatalf("expected image texture, got %+v", tex)
	}
	if got := tex.SourceRect(); got != core.NewRect(0, 0, 96, 48) {
		t.Errorf("SourceRect = %+v, want full image", got)
	}

	frame := tex.WithRegion(core.NewRect(32, 0, 32, 48))
	if got := frame.SourceRect(); got != core.NewRect(32, 0, 32, 48) {
		t.Errorf("frame SourceRect = %+v", got)
	}
	if tex.Region != nil {
		t.Error("WithRegion must not mutate the original texture")
	}
}

func TestInit_LoadsPNGDirectory(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	f, err := os.Create(filepath.Join(dir, "Crate.png"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	// Broken file must be skipped, not fail Init
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := NewProvider(nil)
	if err := p.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if tex := p.Resolve("crate"); tex.Kind != TextureImage {
		t.Errorf("expected crate image, got %+v", tex)
	}
	if tex := p.Resolve("broken"); tex.Color != FallbackColor {
		t.Errorf("expected fallback for broken image, got %+v", tex)
	}
}
