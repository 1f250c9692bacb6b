package gfx

// Rotation is one of the four quadrant rotations. Restricting rotations to
// multiples of 90 degrees keeps sine and cosine in {-1, 0, 1}, so coordinate
// conversion is exact integer arithmetic with no trigonometry.
//
// Angles are counted in the screen coordinate convention (y axis down), so
// Rot90 turns the positive x axis onto the positive y axis.
type Rotation uint8

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 1
	Rot180 Rotation = 2
	Rot270 Rotation = 3
)

// Degrees returns the rotation angle in degrees: 0, 90, 180 or 270.
func (r Rotation) Degrees() int {
	return int(r&3) * 90
}

// Sin returns the integer sine of the rotation angle.
//
// The value is derived from the quadrant index by a closed-form bit formula
// rather than a lookup table, so sine and cosine cannot drift apart: bit 0
// selects zero or non-zero, bit 1 the sign.
func (r Rotation) Sin() int32 {
	q := int32(r & 3)
	return (q & 1) * (1 - (q & 2))
}

// Cos returns the integer cosine of the rotation angle, which is the sine
// of the next quadrant.
func (r Rotation) Cos() int32 {
	return (r + 1).Sin()
}

// Next returns the rotation one quadrant further.
func (r Rotation) Next() Rotation {
	return (r + 1) & 3
}

// Prev returns the rotation one quadrant back.
func (r Rotation) Prev() Rotation {
	return (r + 3) & 3
}

// Inverted returns the rotation that undoes r.
func (r Rotation) Inverted() Rotation {
	return (4 - r&3) & 3
}

// PlusQuadrants returns the rotation advanced by n quadrants. Negative n
// turns backward; any n is normalized into the four values.
func (r Rotation) PlusQuadrants(n int) Rotation {
	return Rotation((int(r&3) + n%4 + 4) & 3)
}

// Plus returns the composition of the two rotations.
func (r Rotation) Plus(o Rotation) Rotation {
	return (r + o) & 3
}

// Minus returns the rotation that composed with o yields r.
func (r Rotation) Minus(o Rotation) Rotation {
	return (r + o.Inverted()) & 3
}

// HorVerFlipped reports whether the rotation swaps the roles of horizontal
// and vertical lines, true for Rot90 and Rot270.
func (r Rotation) HorVerFlipped() bool {
	return r&1 != 0
}

// DeltaIn1 converts a coordinate delta from the rotated frame to the base
// frame by the exact rotation matrix.
func (r Rotation) DeltaIn1(dx2, dy2 int32) (dx1, dy1 int32) {
	sin, cos := r.Sin(), r.Cos()
	return cos*dx2 - sin*dy2, sin*dx2 + cos*dy2
}

// DeltaIn2 converts a coordinate delta from the base frame to the rotated
// frame, the inverse of DeltaIn1.
func (r Rotation) DeltaIn2(dx1, dy1 int32) (dx2, dy2 int32) {
	return r.Inverted().DeltaIn1(dx1, dy1)
}

// MapSpans returns the spans of a region's image under the rotation: the
// spans swap axes for Rot90 and Rot270 and are unchanged otherwise.
func (r Rotation) MapSpans(xSpan, ySpan int32) (int32, int32) {
	if r.HorVerFlipped() {
		return ySpan, xSpan
	}
	return xSpan, ySpan
}
