package led

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/input/key"
)

// Colormap maps each keymap layer to a solid color.
type Colormap struct {
	layers   map[key.Layer]colorful.Color
	fallback colorful.Color
}

// NewColormap creates a colormap with the given fallback color for layers
// that have no entry.
func NewColormap(fallback colorful.Color) *Colormap {
	return &Colormap{
		layers:   make(map[key.Layer]colorful.Color),
		fallback: fallback,
	}
}

// DefaultColormap returns the stock per-layer palette.
func DefaultColormap() *Colormap {
	cm := NewColormap(colorful.Color{R: 0.05, G: 0.05, B: 0.05})
	cm.Set(key.LayerPrimary, mustHex("#26344d"))
	cm.Set(key.LayerFunction, mustHex("#4d2626"))
	cm.Set(key.LayerNumpad, mustHex("#264d26"))
	return cm
}

// Set assigns a layer color.
func (c *Colormap) Set(layer key.Layer, col colorful.Color) {
	c.layers[layer] = col
}

// ColorFor returns the color for a layer, or the fallback when unset.
func (c *Colormap) ColorFor(layer key.Layer) colorful.Color {
	if col, ok := c.layers[layer]; ok {
		return col
	}
	return c.fallback
}

func mustHex(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		panic("bad palette literal: " + s)
	}
	return col
}
