package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

type anchor struct {
	at      float64
	r, g, b float64
}

// rainbow anchors run from red through yellow, green, cyan and blue to magenta.
var rainbow = []anchor{
	{at: 0.000, r: 1.00, g: 0.00, b: 0.16},
	{at: 0.030, r: 1.00, g: 0.00, b: 0.00},
	{at: 0.215, r: 1.00, g: 1.00, b: 0.00},
	{at: 0.400, r: 0.00, g: 1.00, b: 0.00},
	{at: 0.586, r: 0.00, g: 1.00, b: 1.00},
	{at: 0.770, r: 0.00, g: 0.00, b: 1.00},
	{at: 0.954, r: 1.00, g: 0.00, b: 1.00},
	{at: 1.000, r: 1.00, g: 0.00, b: 0.75},
}

// Rainbow is a continuous colormap spanning the full hue range.
// It is stateless apart from its bounds, so the same value always maps to the same color.
type Rainbow struct {
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Rainbow)(nil)

// NewRainbow creates a rainbow colormap over [0, 1].
func NewRainbow() *Rainbow {
	return &Rainbow{
		min:   0,
		max:   1,
		alpha: 1,
	}
}

// At returns the color for the given value.
func (r *Rainbow) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if r.max == r.min {
		return nil, fmt.Errorf("empty range [%v, %v]", r.min, r.max)
	}
	x := (v - r.min) / (r.max - r.min)
	if x < 0 {
		return nil, palette.ErrUnderflow
	}
	if x > 1 {
		return nil, palette.ErrOverflow
	}

	lo, hi := rainbow[0], rainbow[len(rainbow)-1]
	for i := 1; i < len(rainbow); i++ {
		if x <= rainbow[i].at {
			lo, hi = rainbow[i-1], rainbow[i]
			break
		}
	}

	f := 0.0
	if hi.at > lo.at {
		f = (x - lo.at) / (hi.at - lo.at)
	}
	return color.NRGBA{
		R: channel(lo.r + f*(hi.r-lo.r)),
		G: channel(lo.g + f*(hi.g-lo.g)),
		B: channel(lo.b + f*(hi.b-lo.b)),
		A: channel(r.alpha),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(255 * math.Max(0, math.Min(1, v))))
}

// Color returns the color of the i-th of n clusters.
func (r *Rainbow) Color(i, n int) color.Color {
	c, err := r.At(r.min + (r.max-r.min)*float64(i)/float64(n))
	if err != nil {
		return color.Black
	}
	return c
}

func (r *Rainbow) Max() float64 {
	return r.max
}

func (r *Rainbow) SetMax(v float64) {
	r.max = v
}

func (r *Rainbow) Min() float64 {
	return r.min
}

func (r *Rainbow) SetMin(v float64) {
	r.min = v
}

func (r *Rainbow) Alpha() float64 {
	return r.alpha
}

func (r *Rainbow) SetAlpha(v float64) {
	r.alpha = v
}

// Palette samples n evenly spaced colors.
func (r *Rainbow) Palette(n int) palette.Palette {
	p := make(colors, n)
	for i := range p {
		p[i] = r.Color(i, n)
	}
	return p
}

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}
