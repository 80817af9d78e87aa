package imop

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/esimov/dragdrop/utils"
)

const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

var blendModes = []string{Darken, Lighten, Multiply, Screen, Overlay}

// Color is a straight alpha color with channels normalized to [0, 1].
type Color struct {
	R, G, B, A float64
}

func toColor(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (c Color) nrgba() color.NRGBA {
	conv := func(v float64) uint8 {
		return uint8(math.Round(utils.Clamp(v, 0, 1) * 255))
	}
	return color.NRGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: conv(c.A)}
}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend without any mode.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if !slices.Contains(blendModes, opType) {
		return fmt.Errorf("unsupported blend mode: %v", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// mix replaces the source color by its blend with the backdrop,
// weighted by the backdrop coverage. The source alpha is kept.
func (o *Blend) mix(s, b Color) Color {
	channel := func(cs, cb float64) float64 {
		var m float64
		switch o.OpType {
		case Darken:
			m = utils.Min(cs, cb)
		case Lighten:
			m = utils.Max(cs, cb)
		case Multiply:
			m = cs * cb
		case Screen:
			m = cs + cb - cs*cb
		case Overlay:
			if cb <= 0.5 {
				m = 2 * cs * cb
			} else {
				m = 1 - 2*(1-cs)*(1-cb)
			}
		default:
			m = cs
		}
		return (1-b.A)*cs + b.A*m
	}
	return Color{
		R: channel(s.R, b.R),
		G: channel(s.G, b.G),
		B: channel(s.B, b.B),
		A: s.A,
	}
}
