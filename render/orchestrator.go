package render

type canvasEntry struct {
	name   string
	canvas *Canvas
}

// Compositor merges per-layer canvases into one frame in registration order
// Later layers are drawn over earlier ones
type Compositor struct {
	frame   *Canvas
	entries []canvasEntry
}

// NewCompositor creates a compositor producing widthPx x heightPx frames
func NewCompositor(widthPx, heightPx float64) *Compositor {
	return &Compositor{
		frame:   NewCanvas(widthPx, heightPx),
		entries: make([]canvasEntry, 0, 4),
	}
}

// Register creates and returns the canvas for a named layer
func (o *Compositor) Register(name string) *Canvas {
	b := o.frame.Bounds()
	c := NewCanvas(b.Size.Width, b.Size.Height)
	o.entries = append(o.entries, canvasEntry{name: name, canvas: c})
	return c
}

// Canvas returns the canvas registered under name
func (o *Compositor) Canvas(name string) (*Canvas, bool) {
	for _, e := range o.entries {
		if e.name == name {
			return e.canvas, true
		}
	}
	return nil, false
}

// Composite rebuilds the frame from all registered canvases
func (o *Compositor) Composite() *Canvas {
	layers := make([]*Canvas, len(o.entries))
	for i, e := range o.entries {
		layers[i] = e.canvas
	}
	Composite(o.frame, layers...)
	return o.frame
}

// Composite clears dst and copies the touched dots of each layer in order
func Composite(dst *Canvas, layers ...*Canvas) {
	dst.Clear()
	for _, l := range layers {
		if l == nil || l.width != dst.width || l.height != dst.height {
			continue
		}
		for i, t := range l.touched {
			if !t {
				continue
			}
			dst.dots[i] = l.dots[i]
			dst.touched[i] = true
		}
	}
}
