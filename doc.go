// Package gfx provides the geometry and color algebra underneath a
// cross-platform 2D drawing API.
//
// # Overview
//
// Every rendering backend (software rasterizer, GPU texture blit, native
// toolkit canvas) consumes the same set of value types for positions,
// regions, coordinate-frame transforms and pixel colors, so these types are
// exact, overflow-safe and behave identically regardless of backend:
//
//   - Point, Rect: integer pixel coordinates and axis-aligned regions, in
//     the convention "integer coordinate = pixel center, span = pixel
//     count". Intermediate rects may overflow the coordinate range; wide
//     accessors handle them exactly and Trimmed cuts them back.
//   - Rotation, Transform: quadrant rotations with exact integer
//     sine/cosine, composed with integer translations into bijections
//     between coordinate frames.
//   - ARGB32, ARGB64, Color: fixed-point packed colors at 8 and 16 bits
//     per channel, with float conversions following the image/color
//     rounding convention and a lossless widen/narrow bridge between the
//     two widths.
//
// All types are immutable values: "mutation" always constructs a new value,
// every operation is a pure function, and everything is safe for concurrent
// use without coordination.
//
// # Quick start
//
//	bounds, _ := gfx.NewRect(0, 0, 800, 600)
//	clip := bounds.Intersect(dirty)
//
//	t := gfx.RectRotation(gfx.Rot90, bounds)
//	x, y := t.XIn1(10, 20), t.YIn1(10, 20)
//
//	c, _ := gfx.ColorByName("cornflowerblue")
//	faded, _ := c.Interpolated(gfx.White, 0.25)
//
// # Errors
//
// Only two failure kinds exist. ErrInvalidArgument reports a value outside
// the documented domain of a call (negative span, out-of-range channel,
// NaN). ErrOverflow reports a derived quantity that does not fit the target
// integer width even though every input was valid; the wide (int64)
// accessors never overflow. Test for both with errors.Is.
//
// # Rounding convention
//
// Float channels quantize as floor(f*255 + 0.5) and convert back as v/255
// (65535 at 16 bits). This reproduces the image/color convention rather
// than a statistically uniform bucketing; as a documented consequence,
// repeated premultiply/unpremultiply round trips are not always exact even
// at high alpha. Code that depends on exact round trips should stay in one
// packed representation, where the widen/narrow bridge is lossless.
package gfx
