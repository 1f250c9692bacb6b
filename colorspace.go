package gfx

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogfx/gfx/internal/wide"
)

// Colorspace helpers on top of the packed model. These are conveniences for
// widget styling (hover/disabled shades, readable text on a background);
// the exact pixel algebra stays in the packed types.

// Colorful returns the color channels as a colorful.Color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.argb64.RedF(), G: c.argb64.GreenF(), B: c.argb64.BlueF()}
}

func colorFromColorful(cf colorful.Color, alpha uint16) Color {
	cf = cf.Clamped()
	packed, err := ARGB64FromFloats(float64(alpha)/65535, cf.R, cf.G, cf.B)
	if err != nil {
		// Clamped() keeps every channel in [0, 1].
		panic(err)
	}
	return ColorFromARGB64(packed)
}

// Luminance returns the relative luminance of the color in [0, 1], the Y
// component of the CIE XYZ representation.
func (c Color) Luminance() float64 {
	_, y, _ := c.Colorful().Xyz()
	return y
}

// Lighter returns the color with its HSL lightness raised by amount,
// clamped at white. Alpha is preserved. An amount outside [0, 1] or NaN
// fails with ErrInvalidArgument.
func (c Color) Lighter(amount float64) (Color, error) {
	return c.withLightnessDelta(amount, +1)
}

// Darker returns the color with its HSL lightness lowered by amount,
// clamped at black. Alpha is preserved. An amount outside [0, 1] or NaN
// fails with ErrInvalidArgument.
func (c Color) Darker(amount float64) (Color, error) {
	return c.withLightnessDelta(amount, -1)
}

func (c Color) withLightnessDelta(amount, sign float64) (Color, error) {
	if math.IsNaN(amount) || amount < 0 || amount > 1 {
		return Color{}, fmt.Errorf("%w: amount %v outside [0, 1]", ErrInvalidArgument, amount)
	}
	h, s, l := c.Colorful().Hsl()
	l = wide.Clamp(l+sign*amount, 0, 1)
	return colorFromColorful(colorful.Hsl(h, s, l), c.Alpha()), nil
}

// BlendLab blends the two colors in the perceptually uniform CIE Lab space,
// which avoids the muddy midpoints of packed-channel interpolation. Alpha is
// blended linearly. The ratio contract is that of Interpolated.
func (c Color) BlendLab(o Color, t float64) (Color, error) {
	switch {
	case t == 0:
		return c, nil
	case t == 1:
		return o, nil
	case math.IsNaN(t) || t < 0 || t > 1:
		return Color{}, fmt.Errorf("%w: ratio %v outside [0, 1]", ErrInvalidArgument, t)
	}
	blended := c.Colorful().BlendLab(o.Colorful(), t)
	alpha := uint16(c.argb64.AlphaF()*(1-t)*65535 + o.argb64.AlphaF()*t*65535 + 0.5)
	return colorFromColorful(blended, alpha), nil
}
