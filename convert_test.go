package gfx

import "testing"

func TestConvert_WidenReplicates(t *testing.T) {
	tests := []struct {
		name string
		in   ARGB32
		want ARGB64
	}{
		{"opaque red", 0xffff0000, 0xffffffff00000000},
		{"mixed", 0x12345678, 0x1212343456567878},
		{"zero", 0x00000000, 0x0000000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGB64From32(tt.in); got != tt.want {
				t.Errorf("widened = %#016x, want %#016x", uint64(got), uint64(tt.want))
			}
			if got := tt.in.Wide(); got != tt.want {
				t.Errorf("Wide = %#016x", uint64(got))
			}
		})
	}
}

func TestConvert_NarrowTruncates(t *testing.T) {
	// The top byte wins; the low byte never rounds up.
	in := NewARGB64(0xabcd, 0x00ff, 0xff01, 0x7fff)
	got := ARGB32From64(in)
	want := NewARGB32(0xab, 0x00, 0xff, 0x7f)
	if got != want {
		t.Errorf("narrowed = %#08x, want %#08x", uint32(got), uint32(want))
	}
	if in.Narrow() != want {
		t.Errorf("Narrow = %#08x", uint32(in.Narrow()))
	}
}

func TestConvert_RoundTripIsIdentity(t *testing.T) {
	// Replicate-then-truncate recovers every byte value on every channel.
	for v := 0; v <= 0xff; v++ {
		b := uint8(v)
		c := NewARGB32(b, b^0xff, b, b^0x55)
		if got := c.Wide().Narrow(); got != c {
			t.Fatalf("byte %#02x: round trip %#08x != %#08x", v, uint32(got), uint32(c))
		}
	}

	for _, c := range []ARGB32{0x00000000, 0xffffffff, 0x12345678, 0x80808080, 0xdeadbeef} {
		if got := c.Wide().Narrow(); got != c {
			t.Errorf("round trip of %#08x = %#08x", uint32(c), uint32(got))
		}
	}
}

func TestConvert_WidenedTopBitsStayConsistent(t *testing.T) {
	// After widening, narrowing again must agree with the top 8 bits of
	// each 16-bit channel, the property byte replication buys over 0xAB00.
	for v := 0; v <= 0xff; v++ {
		w := ARGB64From32(NewARGB32(uint8(v), 0, 0, 0))
		if got := w.Alpha() >> 8; got != uint16(v) {
			t.Fatalf("top byte of widened %#02x = %#02x", v, got)
		}
		if got := w.Alpha() & 0xff; got != uint16(v) {
			t.Fatalf("low byte of widened %#02x = %#02x", v, got)
		}
	}
}
