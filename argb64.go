package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogfx/gfx/internal/norm"
)

// ARGB64 is a color packed into a 64-bit word with 16 bits per channel in
// the same order as ARGB32: alpha, red, green, blue, most significant
// first. It is the high-precision form; backends may carry it end to end or
// narrow it to ARGB32.
type ARGB64 uint64

// NewARGB64 packs the four 16-bit channels.
func NewARGB64(a, r, g, b uint16) ARGB64 {
	return ARGB64(uint64(a)<<48 | uint64(r)<<32 | uint64(g)<<16 | uint64(b))
}

// ARGB64FromFloats packs four float channels in [0, 1] with the same
// rounding convention as ARGB32FromFloats, at 16-bit resolution. A channel
// outside [0, 1] or NaN fails with ErrInvalidArgument.
func ARGB64FromFloats(a, r, g, b float64) (ARGB64, error) {
	if err := checkChannels(a, r, g, b); err != nil {
		return 0, err
	}
	return NewARGB64(norm.U16FromF(a), norm.U16FromF(r), norm.U16FromF(g), norm.U16FromF(b)), nil
}

// Alpha returns the alpha channel.
func (c ARGB64) Alpha() uint16 { return uint16(c >> 48) }

// Red returns the red channel.
func (c ARGB64) Red() uint16 { return uint16(c >> 32) }

// Green returns the green channel.
func (c ARGB64) Green() uint16 { return uint16(c >> 16) }

// Blue returns the blue channel.
func (c ARGB64) Blue() uint16 { return uint16(c) }

// AlphaF returns the alpha channel as a float in [0, 1].
func (c ARGB64) AlphaF() float64 { return norm.FFromU16(c.Alpha()) }

// RedF returns the red channel as a float in [0, 1].
func (c ARGB64) RedF() float64 { return norm.FFromU16(c.Red()) }

// GreenF returns the green channel as a float in [0, 1].
func (c ARGB64) GreenF() float64 { return norm.FFromU16(c.Green()) }

// BlueF returns the blue channel as a float in [0, 1].
func (c ARGB64) BlueF() float64 { return norm.FFromU16(c.Blue()) }

// WithAlpha returns the color with its alpha channel replaced, other
// channels preserved.
func (c ARGB64) WithAlpha(a uint16) ARGB64 {
	return ARGB64(uint64(a)<<48 | uint64(c)&0x0000ffffffffffff)
}

// Opaque returns the color with alpha forced to the maximum.
func (c ARGB64) Opaque() ARGB64 {
	return c | 0xffff000000000000
}

// Inverted returns the color with each color channel negated and alpha
// preserved.
func (c ARGB64) Inverted() ARGB64 {
	return c ^ 0x0000ffffffffffff
}

// Interpolated blends the two colors in float space per channel, alpha
// included, with the same ratio contract as ARGB32.Interpolated.
func (c ARGB64) Interpolated(o ARGB64, t float64) (ARGB64, error) {
	switch {
	case t == 0:
		return c, nil
	case t == 1:
		return o, nil
	case math.IsNaN(t) || t < 0 || t > 1:
		return 0, fmt.Errorf("%w: ratio %v outside [0, 1]", ErrInvalidArgument, t)
	}
	return NewARGB64(
		norm.U16FromF(norm.LerpF(c.AlphaF(), o.AlphaF(), t)),
		norm.U16FromF(norm.LerpF(c.RedF(), o.RedF(), t)),
		norm.U16FromF(norm.LerpF(c.GreenF(), o.GreenF(), t)),
		norm.U16FromF(norm.LerpF(c.BlueF(), o.BlueF(), t)),
	), nil
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// channels like color.NRGBA64 does.
func (c ARGB64) RGBA() (r, g, b, a uint32) {
	a = uint32(c.Alpha())
	r = uint32(c.Red()) * a / 0xffff
	g = uint32(c.Green()) * a / 0xffff
	b = uint32(c.Blue()) * a / 0xffff
	return
}

var _ color.Color = ARGB64(0)
