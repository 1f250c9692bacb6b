package gfx

import "github.com/gogfx/gfx/internal/norm"

// Conversion between the two packed representations.
//
// Widening replicates each byte into both halves of its 16-bit channel
// (0xAB becomes 0xABAB, not 0xAB00), so the top 8 bits of a widened channel
// always equal the original byte. Narrowing keeps only the top byte of each
// channel and never rounds. Together the two directions make
// ARGB32From64(ARGB64From32(c)) the identity for every c, and narrowing a
// widened-then-modified color stays consistent with its own top bits.

// ARGB64From32 widens a packed-8 color to packed-16 by byte replication.
func ARGB64From32(c ARGB32) ARGB64 {
	return NewARGB64(
		norm.U16FromU8(c.Alpha()),
		norm.U16FromU8(c.Red()),
		norm.U16FromU8(c.Green()),
		norm.U16FromU8(c.Blue()),
	)
}

// ARGB32From64 narrows a packed-16 color to packed-8, truncating each
// channel to its top byte.
func ARGB32From64(c ARGB64) ARGB32 {
	return NewARGB32(
		norm.U8FromU16(c.Alpha()),
		norm.U8FromU16(c.Red()),
		norm.U8FromU16(c.Green()),
		norm.U8FromU16(c.Blue()),
	)
}

// Wide widens the color to the packed-16 representation.
func (c ARGB32) Wide() ARGB64 {
	return ARGB64From32(c)
}

// Narrow narrows the color to the packed-8 representation.
func (c ARGB64) Narrow() ARGB32 {
	return ARGB32From64(c)
}
