package gfx

import "image/color"

// Color is the value a drawing surface holds as its current color. It wraps
// both packed representations consistently: the packed-16 word is the source
// of truth and the packed-32 word is derived from it once at construction,
// so backends that only speak 32-bit colors never pay for the narrowing
// conversion per pixel.
type Color struct {
	argb64 ARGB64
	argb32 ARGB32
}

// ColorFromARGB64 wraps a packed-16 color.
func ColorFromARGB64(c ARGB64) Color {
	return Color{argb64: c, argb32: c.Narrow()}
}

// ColorFromARGB32 wraps a packed-8 color, widening it by byte replication.
func ColorFromARGB32(c ARGB32) Color {
	return Color{argb64: c.Wide(), argb32: c}
}

// ColorFromFloats builds a Color from four float channels in [0, 1],
// quantized at 16-bit resolution. A channel outside [0, 1] or NaN fails
// with ErrInvalidArgument.
func ColorFromFloats(a, r, g, b float64) (Color, error) {
	wide, err := ARGB64FromFloats(a, r, g, b)
	if err != nil {
		return Color{}, err
	}
	return ColorFromARGB64(wide), nil
}

// ARGB64 returns the packed-16 form.
func (c Color) ARGB64() ARGB64 { return c.argb64 }

// ARGB32 returns the cached packed-8 form, always equal to
// c.ARGB64().Narrow().
func (c Color) ARGB32() ARGB32 { return c.argb32 }

// Alpha returns the 16-bit alpha channel.
func (c Color) Alpha() uint16 { return c.argb64.Alpha() }

// IsOpaque reports whether the color has maximum alpha.
func (c Color) IsOpaque() bool { return c.argb64.Alpha() == 0xffff }

// WithAlpha returns the color with its 16-bit alpha channel replaced.
func (c Color) WithAlpha(a uint16) Color {
	return ColorFromARGB64(c.argb64.WithAlpha(a))
}

// Opaque returns the color with alpha forced to the maximum.
func (c Color) Opaque() Color {
	return ColorFromARGB64(c.argb64.Opaque())
}

// Inverted returns the color with each color channel negated and alpha
// preserved.
func (c Color) Inverted() Color {
	return ColorFromARGB64(c.argb64.Inverted())
}

// Interpolated blends the two colors in float space per channel, alpha
// included, with the ratio contract of ARGB64.Interpolated.
func (c Color) Interpolated(o Color, t float64) (Color, error) {
	wide, err := c.argb64.Interpolated(o.argb64, t)
	if err != nil {
		return Color{}, err
	}
	return ColorFromARGB64(wide), nil
}

// Compare orders colors by their raw packed-16 value. It returns -1, 0
// or 1.
func (c Color) Compare(o Color) int {
	switch {
	case c.argb64 < o.argb64:
		return -1
	case c.argb64 > o.argb64:
		return 1
	}
	return 0
}

// RGBA implements color.Color at full 16-bit precision.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.argb64.RGBA()
}

var _ color.Color = Color{}
