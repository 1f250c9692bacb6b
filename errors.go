package gfx

import "errors"

var (
	// ErrInvalidArgument reports a value outside the documented domain of the
	// call that received it: a negative span, an out-of-range channel, an
	// interpolation ratio outside [0,1], or NaN. It is a programming error on
	// the caller's side and is never recovered from internally.
	ErrInvalidArgument = errors.New("gfx: invalid argument")

	// ErrOverflow reports that a derived quantity (maximum bound, area, union
	// span) cannot be represented in the target integer width even though
	// every input was individually valid. Callers that need overflow-tolerant
	// results should use the wide (int64) variants, or trim first.
	ErrOverflow = errors.New("gfx: arithmetic overflow")
)
