package gfx

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestARGB32_Packing(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
		want       ARGB32
	}{
		{"opaque red", 255, 255, 0, 0, 0xffff0000},
		{"opaque white", 255, 255, 255, 255, 0xffffffff},
		{"transparent black", 0, 0, 0, 0, 0x00000000},
		{"mixed", 0x12, 0x34, 0x56, 0x78, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewARGB32(tt.a, tt.r, tt.g, tt.b)
			if c != tt.want {
				t.Fatalf("packed = %#08x, want %#08x", uint32(c), uint32(tt.want))
			}
			if c.Alpha() != tt.a || c.Red() != tt.r || c.Green() != tt.g || c.Blue() != tt.b {
				t.Errorf("channels = (%d, %d, %d, %d)", c.Alpha(), c.Red(), c.Green(), c.Blue())
			}
		})
	}
}

func TestARGB32_FromFloats(t *testing.T) {
	t.Run("rounds half up", func(t *testing.T) {
		c, err := ARGB32FromFloats(1, 0.5, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if c != 0xff8000ff {
			t.Errorf("got %#08x, want 0xff8000ff", uint32(c))
		}
	})

	t.Run("exact endpoints", func(t *testing.T) {
		c, err := ARGB32FromFloats(1, 1, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if c != 0xffff0000 {
			t.Errorf("got %#08x", uint32(c))
		}
	})

	t.Run("invalid channels", func(t *testing.T) {
		for _, bad := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
			if _, err := ARGB32FromFloats(bad, 0, 0, 0); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("channel %v: err = %v", bad, err)
			}
		}
	})

	t.Run("float round trip per byte", func(t *testing.T) {
		// v/255 quantizes back to v for every byte value.
		for v := 0; v <= 0xff; v++ {
			c, err := ARGB32FromFloats(1, float64(v)/255, 0, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Red(); got != uint8(v) {
				t.Fatalf("byte %d round-trips to %d", v, got)
			}
		}
	})
}

func TestARGB32_ChannelOps(t *testing.T) {
	c := ARGB32(0x80123456)

	if got := c.WithAlpha(0xff); got != ARGB32(0xff123456) {
		t.Errorf("WithAlpha = %#08x", uint32(got))
	}
	if got := c.Opaque(); got != ARGB32(0xff123456) {
		t.Errorf("Opaque = %#08x", uint32(got))
	}
	// Inverted negates the color channels and keeps alpha.
	if got := c.Inverted(); got != ARGB32(0x80edcba9) {
		t.Errorf("Inverted = %#08x", uint32(got))
	}
	if got := c.Inverted().Inverted(); got != c {
		t.Errorf("double inversion = %#08x", uint32(got))
	}
}

func TestARGB32_Interpolated(t *testing.T) {
	black := ARGB32(0xff000000)
	white := ARGB32(0xffffffff)

	t.Run("boundary ratios are exact", func(t *testing.T) {
		a := ARGB32(0x12345678)
		b := ARGB32(0x9abcdef0)
		if got, err := a.Interpolated(b, 0); err != nil || got != a {
			t.Errorf("t=0: %#08x, %v", uint32(got), err)
		}
		if got, err := a.Interpolated(b, 1); err != nil || got != b {
			t.Errorf("t=1: %#08x, %v", uint32(got), err)
		}
	})

	t.Run("midpoint", func(t *testing.T) {
		got, err := black.Interpolated(white, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if got != ARGB32(0xff808080) {
			t.Errorf("midpoint = %#08x, want 0xff808080", uint32(got))
		}
	})

	t.Run("alpha participates", func(t *testing.T) {
		got, err := ARGB32(0x00000000).Interpolated(ARGB32(0xff000000), 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if got.Alpha() != 128 {
			t.Errorf("alpha = %d, want 128", got.Alpha())
		}
	})

	t.Run("invalid ratios", func(t *testing.T) {
		for _, bad := range []float64{-0.5, 1.5, math.NaN()} {
			if _, err := black.Interpolated(white, bad); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ratio %v: err = %v", bad, err)
			}
		}
	})
}

func TestARGB32_RGBA(t *testing.T) {
	// Agrees with color.NRGBA for every red/alpha combination.
	for cv := 0; cv <= 0xff; cv++ {
		for av := 0; av <= 0xff; av++ {
			got := NewARGB32(uint8(av), uint8(cv), 0, 0)
			want := color.NRGBA{R: uint8(cv), A: uint8(av)}
			gr, gg, gb, ga := got.RGBA()
			wr, wg, wb, wa := want.RGBA()
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Fatalf("(%d, %d): got (%d %d %d %d), want (%d %d %d %d)",
					cv, av, gr, gg, gb, ga, wr, wg, wb, wa)
			}
		}
	}
}
