// Package norm provides the fixed-point channel conversion primitives shared
// by the packed color types. All functions here are unchecked: inputs are
// assumed to have been validated at the API boundary.
//
// The float conversions follow the image/color convention (round half up on
// the way in, divide by the channel maximum on the way out) rather than a
// statistically uniform quantization. The widening conversion replicates the
// byte into both halves of the 16-bit channel, matching the r |= r << 8
// convention of image/color, so that narrowing by truncation is an exact
// inverse.
package norm

// U8FromF quantizes f in [0,1] to an 8-bit channel value.
func U8FromF(f float64) uint8 {
	return uint8(f*255 + 0.5)
}

// FFromU8 converts an 8-bit channel value to a float in [0,1].
func FFromU8(v uint8) float64 {
	return float64(v) / 255
}

// U16FromF quantizes f in [0,1] to a 16-bit channel value.
func U16FromF(f float64) uint16 {
	return uint16(f*65535 + 0.5)
}

// FFromU16 converts a 16-bit channel value to a float in [0,1].
func FFromU16(v uint16) float64 {
	return float64(v) / 65535
}

// U16FromU8 widens an 8-bit channel by byte replication: 0xAB -> 0xABAB.
func U16FromU8(v uint8) uint16 {
	return uint16(v) * 0x101
}

// U8FromU16 narrows a 16-bit channel to its top byte. It truncates, never
// rounds, so U8FromU16(U16FromU8(v)) == v for every v.
func U8FromU16(v uint16) uint8 {
	return uint8(v >> 8)
}

// LerpF blends two channel values in float space: c1*(1-t) + c2*t.
func LerpF(c1, c2, t float64) float64 {
	return c1*(1-t) + c2*t
}
