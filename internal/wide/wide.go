// Package wide provides overflow-safe widened integer arithmetic for the
// int32 coordinate algebra. Positions and spans are widened to int64 before
// combining, so intermediate results never wrap even at the extremes of the
// int32 range.
package wide

import "golang.org/x/exp/constraints"

// Max returns the inclusive maximum coordinate pos+span-1, widened.
func Max(pos, span int32) int64 {
	return int64(pos) + int64(span) - 1
}

// End returns the exclusive upper bound pos+span, widened.
func End(pos, span int32) int64 {
	return int64(pos) + int64(span)
}

// Mid returns the middle coordinate of the interval [pos, pos+span-1].
// Even spans have no exact middle; the division truncates toward zero.
func Mid(pos, span int32) int64 {
	return (2*int64(pos) + int64(span) - 1) / 2
}

// Area returns span1*span2, widened. Both spans are expected to be
// non-negative int32 values, so the product always fits in int64.
func Area(span1, span2 int32) int64 {
	return int64(span1) * int64(span2)
}

// Contains reports whether v lies in the half-open interval
// [pos, pos+span).
func Contains(pos, span, v int32) bool {
	return int64(v) >= int64(pos) && int64(v) < End(pos, span)
}

// Overlap reports whether the half-open intervals [pos1, pos1+span1) and
// [pos2, pos2+span2) intersect. Non-positive spans never overlap anything.
func Overlap(pos1, span1, pos2, span2 int32) bool {
	if span1 <= 0 || span2 <= 0 {
		return false
	}
	return int64(pos1) < End(pos2, span2) && int64(pos2) < End(pos1, span1)
}

// InInt32 reports whether v is representable as an int32.
func InInt32(v int64) bool {
	return v >= -1<<31 && v <= 1<<31-1
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
