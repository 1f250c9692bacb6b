package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogfx/gfx/internal/norm"
)

// ARGB32 is a color packed into a 32-bit word with 8 bits per channel, most
// significant first: alpha, red, green, blue. Opaque red is 0xFFFF0000.
//
// Alpha is not premultiplied into the color channels.
type ARGB32 uint32

// NewARGB32 packs the four 8-bit channels.
func NewARGB32(a, r, g, b uint8) ARGB32 {
	return ARGB32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ARGB32FromFloats packs four float channels in [0, 1]. Quantization rounds
// half up (v = floor(f*255 + 0.5)), the image/color convention. Note that
// the resulting buckets are not statistically uniform; see the package
// documentation. A channel outside [0, 1] or NaN fails with
// ErrInvalidArgument.
func ARGB32FromFloats(a, r, g, b float64) (ARGB32, error) {
	if err := checkChannels(a, r, g, b); err != nil {
		return 0, err
	}
	return NewARGB32(norm.U8FromF(a), norm.U8FromF(r), norm.U8FromF(g), norm.U8FromF(b)), nil
}

func checkChannels(chans ...float64) error {
	for _, f := range chans {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return fmt.Errorf("%w: channel %v outside [0, 1]", ErrInvalidArgument, f)
		}
	}
	return nil
}

// Alpha returns the alpha channel.
func (c ARGB32) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB32) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB32) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB32) Blue() uint8 { return uint8(c) }

// AlphaF returns the alpha channel as a float in [0, 1].
func (c ARGB32) AlphaF() float64 { return norm.FFromU8(c.Alpha()) }

// RedF returns the red channel as a float in [0, 1].
func (c ARGB32) RedF() float64 { return norm.FFromU8(c.Red()) }

// GreenF returns the green channel as a float in [0, 1].
func (c ARGB32) GreenF() float64 { return norm.FFromU8(c.Green()) }

// BlueF returns the blue channel as a float in [0, 1].
func (c ARGB32) BlueF() float64 { return norm.FFromU8(c.Blue()) }

// WithAlpha returns the color with its alpha channel replaced, other
// channels preserved.
func (c ARGB32) WithAlpha(a uint8) ARGB32 {
	return ARGB32(uint32(a)<<24 | uint32(c)&0x00ffffff)
}

// Opaque returns the color with alpha forced to the maximum.
func (c ARGB32) Opaque() ARGB32 {
	return c | 0xff000000
}

// Inverted returns the color with each color channel negated (max minus
// value) and alpha preserved.
func (c ARGB32) Inverted() ARGB32 {
	return c ^ 0x00ffffff
}

// Interpolated blends the two colors in float space per channel, alpha
// included: channel = c1*(1-t) + c2*t. The boundary ratios are
// short-circuited so that t == 0 returns c and t == 1 returns o exactly.
// A ratio outside [0, 1] or NaN fails with ErrInvalidArgument.
func (c ARGB32) Interpolated(o ARGB32, t float64) (ARGB32, error) {
	switch {
	case t == 0:
		return c, nil
	case t == 1:
		return o, nil
	case math.IsNaN(t) || t < 0 || t > 1:
		return 0, fmt.Errorf("%w: ratio %v outside [0, 1]", ErrInvalidArgument, t)
	}
	return NewARGB32(
		norm.U8FromF(norm.LerpF(c.AlphaF(), o.AlphaF(), t)),
		norm.U8FromF(norm.LerpF(c.RedF(), o.RedF(), t)),
		norm.U8FromF(norm.LerpF(c.GreenF(), o.GreenF(), t)),
		norm.U8FromF(norm.LerpF(c.BlueF(), o.BlueF(), t)),
	), nil
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// channels like color.NRGBA does.
func (c ARGB32) RGBA() (r, g, b, a uint32) {
	a = uint32(norm.U16FromU8(c.Alpha()))
	r = uint32(norm.U16FromU8(c.Red())) * a / 0xffff
	g = uint32(norm.U16FromU8(c.Green())) * a / 0xffff
	b = uint32(norm.U16FromU8(c.Blue())) * a / 0xffff
	return
}

var _ color.Color = ARGB32(0)
