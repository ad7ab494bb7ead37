package asset

import "github.com/lixenwraith/tile-fighter/core"

// FallbackColor is substituted for any texture that cannot be resolved
var FallbackColor = core.RGB{R: 255, G: 0, B: 255}

// namedColors is the supported subset of CSS color names, lower-case keys
var namedColors = map[string]core.RGB{
	"black":          {R: 0, G: 0, B: 0},
	"white":          {R: 255, G: 255, B: 255},
	"grey":           {R: 128, G: 128, B: 128},
	"gray":           {R: 128, G: 128, B: 128},
	"dimgrey":        {R: 105, G: 105, B: 105},
	"dimgray":        {R: 105, G: 105, B: 105},
	"darkgrey":       {R: 169, G: 169, B: 169},
	"darkgray":       {R: 169, G: 169, B: 169},
	"lightgrey":      {R: 211, G: 211, B: 211},
	"lightgray":      {R: 211, G: 211, B: 211},
	"lightslategrey": {R: 119, G: 136, B: 153},
	"lightslategray": {R: 119, G: 136, B: 153},
	"slategrey":      {R: 112, G: 128, B: 144},
	"red":            {R: 255, G: 0, B: 0},
	"darkred":        {R: 139, G: 0, B: 0},
	"green":          {R: 0, G: 128, B: 0},
	"lime":           {R: 0, G: 255, B: 0},
	"blue":           {R: 0, G: 0, B: 255},
	"cyan":           {R: 0, G: 255, B: 255},
	"magenta":        {R: 255, G: 0, B: 255},
	"yellow":         {R: 255, G: 255, B: 0},
	"gold":           {R: 255, G: 215, B: 0},
	"orange":         {R: 255, G: 165, B: 0},
	"purple":         {R: 128, G: 0, B: 128},
	"brown":          {R: 165, G: 42, B: 42},
	"skyblue":        {R: 135, G: 206, B: 235},
}

// NamedColor looks up a CSS color name
func NamedColor(name string) (core.RGB, bool) {
	c, ok := namedColors[name]
	return c, ok
}
