package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/core"
)

// Provider resolves texture keys (color names, hex colors, image names) to loaded textures
// Resolve never fails: unknown keys and an uninitialised provider yield the fallback color
type Provider struct {
	mu     sync.RWMutex
	ready  bool
	images map[string]*Image
	missed map[string]struct{}
	log    *zap.Logger
}

// NewProvider creates a provider; it resolves only the fallback until Init or MarkReady
func NewProvider(log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		images: make(map[string]*Image),
		missed: make(map[string]struct{}),
		log:    log,
	}
}

// Init loads every *.png in dir as an image texture named after the file stem, then marks ready
// An empty dir only marks the provider ready
func (p *Provider) Init(dir string) error {
	if dir != "" {
		if err := p.LoadImages(dir); err != nil {
			return err
		}
	}
	p.MarkReady()
	return nil
}

// MarkReady finishes initialisation
func (p *Provider) MarkReady() {
	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
}

// LoadImages decodes all PNG files in dir
func (p *Provider) LoadImages(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return fmt.Errorf("scan asset dir %s: %w", dir, err)
	}
	for _, path := range paths {
		img, err := loadImage(path)
		if err != nil {
			// A broken file only loses its own texture
			p.log.Warn("asset decode failed", zap.String("path", path), zap.Error(err))
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		p.RegisterImage(name, img)
		p.log.Debug("asset loaded", zap.String("name", name), zap.String("path", path))
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// RegisterImage adds or replaces an image texture
func (p *Provider) RegisterImage(name string, img image.Image) {
	if img == nil {
		return
	}
	p.mu.Lock()
	p.images[strings.ToLower(name)] = &Image{Name: name, Src: img}
	p.mu.Unlock()
}

// Fallback returns the designated fallback texture
func Fallback(key string) LoadedTexture {
	return LoadedTexture{Kind: TextureColor, Key: key, Color: FallbackColor}
}

// Resolve maps a key to a texture: image name, CSS color name, then #rrggbb
func (p *Provider) Resolve(key string) LoadedTexture {
	if p == nil {
		return Fallback(key)
	}
	norm := strings.ToLower(strings.TrimSpace(key))

	p.mu.RLock()
	ready := p.ready
	img, isImage := p.images[norm]
	p.mu.RUnlock()

	if !ready {
		p.miss(key, "provider not ready")
		return Fallback(key)
	}
	if isImage {
		return LoadedTexture{Kind: TextureImage, Key: key, Image: img}
	}
	if c, ok := NamedColor(norm); ok {
		return LoadedTexture{Kind: TextureColor, Key: key, Color: c}
	}
	if strings.HasPrefix(norm, "#") {
		if c, err := core.ParseHex(norm); err == nil {
			return LoadedTexture{Kind: TextureColor, Key: key, Color: c}
		}
	}
	p.miss(key, "unresolved key")
	return Fallback(key)
}

// miss logs an unresolved key once per key
func (p *Provider) miss(key, reason string) {
	p.mu.Lock()
	_, seen := p.missed[key]
	if !seen {
		p.missed[key] = struct{}{}
	}
	p.mu.Unlock()
	if !seen {
		p.log.Debug("texture fallback", zap.String("key", key), zap.String("reason", reason))
	}
}

// HasImage reports whether an image texture is registered under key
func (p *Provider) HasImage(key string) bool {
	if p == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.images[strings.ToLower(strings.TrimSpace(key))]
	return ok
}
