package gfx

import (
	"errors"
	"image/color"
	"sort"
	"testing"
)

// checkCache verifies the structural invariant of Color: the packed-32 form
// is always the narrowed packed-64 form.
func checkCache(t *testing.T, c Color) {
	t.Helper()
	if c.ARGB32() != c.ARGB64().Narrow() {
		t.Fatalf("cache out of sync: %#08x != narrow(%#016x)",
			uint32(c.ARGB32()), uint64(c.ARGB64()))
	}
}

func TestColor_Constructors(t *testing.T) {
	t.Run("from packed-8", func(t *testing.T) {
		c := ColorFromARGB32(0x80402010)
		checkCache(t, c)
		if c.ARGB32() != 0x80402010 {
			t.Errorf("ARGB32 = %#08x", uint32(c.ARGB32()))
		}
		if c.ARGB64() != 0x8080404020201010 {
			t.Errorf("ARGB64 = %#016x", uint64(c.ARGB64()))
		}
	})

	t.Run("from packed-16", func(t *testing.T) {
		c := ColorFromARGB64(0x123456789abcdef0)
		checkCache(t, c)
		if c.ARGB32() != 0x12569ade {
			t.Errorf("ARGB32 = %#08x", uint32(c.ARGB32()))
		}
	})

	t.Run("from floats", func(t *testing.T) {
		c, err := ColorFromFloats(1, 1, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		checkCache(t, c)
		if c.ARGB32() != 0xffff0000 {
			t.Errorf("ARGB32 = %#08x", uint32(c.ARGB32()))
		}
		if _, err := ColorFromFloats(2, 0, 0, 0); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("out of range err = %v", err)
		}
	})

	t.Run("zero value is transparent", func(t *testing.T) {
		var c Color
		checkCache(t, c)
		if c != Transparent {
			t.Errorf("zero value = %+v", c)
		}
	})
}

func TestColor_Derivations(t *testing.T) {
	c := ColorFromARGB32(0x80402010)

	got := c.WithAlpha(0xffff)
	checkCache(t, got)
	if got.Alpha() != 0xffff || got.ARGB64()&0x0000ffffffffffff != c.ARGB64()&0x0000ffffffffffff {
		t.Errorf("WithAlpha = %#016x", uint64(got.ARGB64()))
	}

	op := c.Opaque()
	checkCache(t, op)
	if !op.IsOpaque() {
		t.Error("Opaque not opaque")
	}
	if c.IsOpaque() {
		t.Error("translucent color claims opacity")
	}

	inv := c.Inverted()
	checkCache(t, inv)
	if inv.Inverted() != c {
		t.Error("double inversion changed the color")
	}
	if inv.Alpha() != c.Alpha() {
		t.Error("inversion touched alpha")
	}

	mid, err := Black.Interpolated(White, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	checkCache(t, mid)
	if got, err := Black.Interpolated(White, 0); err != nil || got != Black {
		t.Errorf("t=0 = %+v, %v", got, err)
	}
	if got, err := Black.Interpolated(White, 1); err != nil || got != White {
		t.Errorf("t=1 = %+v, %v", got, err)
	}
	if _, err := Black.Interpolated(White, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("invalid ratio err = %v", err)
	}
}

func TestColor_Compare(t *testing.T) {
	cs := []Color{White, Black, Transparent, Red}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Compare(cs[j]) < 0 })

	// Ordered by raw packed-16 value: transparent < black < red < white.
	want := []Color{Transparent, Black, Red, White}
	for i := range want {
		if cs[i] != want[i] {
			t.Fatalf("sorted[%d] = %#016x, want %#016x",
				i, uint64(cs[i].ARGB64()), uint64(want[i].ARGB64()))
		}
	}
	if Red.Compare(Red) != 0 {
		t.Error("Compare of equal colors != 0")
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ARGB32
		ok    bool
	}{
		{"lowercase", "cornflowerblue", 0xff6495ed, true},
		{"mixed case", "CornflowerBlue", 0xff6495ed, true},
		{"surrounding space", "  red  ", 0xffff0000, true},
		{"transparent", "transparent", 0x00000000, true},
		{"unknown", "notacolor", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ColorByName(tt.query)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			checkCache(t, c)
			if c.ARGB32() != tt.want {
				t.Errorf("ARGB32 = %#08x, want %#08x", uint32(c.ARGB32()), uint32(tt.want))
			}
		})
	}
}

func TestColor_RGBAInterface(t *testing.T) {
	// The value object reports full 16-bit precision through color.Color.
	c := ColorFromARGB64(NewARGB64(0xffff, 0x1234, 0, 0))
	r, _, _, a := c.RGBA()
	if r != 0x1234 || a != 0xffff {
		t.Errorf("RGBA = (%#04x, ..., %#04x)", r, a)
	}
	var _ color.Color = c
}
