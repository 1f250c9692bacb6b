package gfx

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestARGB64_Packing(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint16
		want       ARGB64
	}{
		{"opaque red", 0xffff, 0xffff, 0, 0, 0xffffffff00000000},
		{"mixed", 0x1234, 0x5678, 0x9abc, 0xdef0, 0x123456789abcdef0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewARGB64(tt.a, tt.r, tt.g, tt.b)
			if c != tt.want {
				t.Fatalf("packed = %#016x, want %#016x", uint64(c), uint64(tt.want))
			}
			if c.Alpha() != tt.a || c.Red() != tt.r || c.Green() != tt.g || c.Blue() != tt.b {
				t.Errorf("channels = (%d, %d, %d, %d)", c.Alpha(), c.Red(), c.Green(), c.Blue())
			}
		})
	}
}

func TestARGB64_FromFloats(t *testing.T) {
	c, err := ARGB64FromFloats(1, 0.5, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// 0.5*65535 + 0.5 = 32768.0
	if c.Red() != 0x8000 {
		t.Errorf("red = %#04x, want 0x8000", c.Red())
	}
	if c.Alpha() != 0xffff || c.Blue() != 0xffff {
		t.Errorf("alpha/blue = %#04x/%#04x", c.Alpha(), c.Blue())
	}

	if _, err := ARGB64FromFloats(0, 0, math.NaN(), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NaN err = %v", err)
	}
}

func TestARGB64_ChannelOps(t *testing.T) {
	c := ARGB64(0x8000123456789abc)

	if got := c.WithAlpha(0xffff); got != ARGB64(0xffff123456789abc) {
		t.Errorf("WithAlpha = %#016x", uint64(got))
	}
	if got := c.Opaque(); got != c.WithAlpha(0xffff) {
		t.Errorf("Opaque = %#016x", uint64(got))
	}
	if got := c.Inverted(); got != ARGB64(0x8000edcba9876543) {
		t.Errorf("Inverted = %#016x", uint64(got))
	}
	if got := c.Inverted().Inverted(); got != c {
		t.Errorf("double inversion = %#016x", uint64(got))
	}
}

func TestARGB64_Interpolated(t *testing.T) {
	a := ARGB64(0x123456789abcdef0)
	b := ARGB64(0xfedcba9876543210)

	if got, err := a.Interpolated(b, 0); err != nil || got != a {
		t.Errorf("t=0: %#016x, %v", uint64(got), err)
	}
	if got, err := a.Interpolated(b, 1); err != nil || got != b {
		t.Errorf("t=1: %#016x, %v", uint64(got), err)
	}

	mid, err := ARGB64(0).Interpolated(ARGB64(0xffffffffffffffff), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	for name, ch := range map[string]uint16{
		"alpha": mid.Alpha(), "red": mid.Red(), "green": mid.Green(), "blue": mid.Blue(),
	} {
		if ch != 0x8000 {
			t.Errorf("%s midpoint = %#04x, want 0x8000", name, ch)
		}
	}

	if _, err := a.Interpolated(b, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ratio 2 err = %v", err)
	}
}

func TestARGB64_RGBA(t *testing.T) {
	// Agrees with color.NRGBA64 on sampled channel values.
	for _, cv := range []uint16{0, 1, 0x7fff, 0x8000, 0xfffe, 0xffff} {
		for _, av := range []uint16{0, 1, 0x8000, 0xffff} {
			got := NewARGB64(av, cv, 0, cv)
			want := color.NRGBA64{R: cv, B: cv, A: av}
			gr, gg, gb, ga := got.RGBA()
			wr, wg, wb, wa := want.RGBA()
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Fatalf("(%#04x, %#04x): got (%d %d %d %d), want (%d %d %d %d)",
					cv, av, gr, gg, gb, ga, wr, wg, wb, wa)
			}
		}
	}
}
