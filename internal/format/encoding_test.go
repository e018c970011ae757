package format

import (
	"math"
	"testing"
)

func TestReadIntAllWidths(t *testing.T) {
	cases := []struct {
		width uint8
		bytes []byte
		want  int64
	}{
		{1, []byte{0x01}, 1},
		{1, []byte{0xff}, -1},
		{2, []byte{0x01, 0x02}, 0x0201},
		{2, []byte{0x00, 0x80}, math.MinInt16},
		{4, []byte{0x01, 0x02, 0x03, 0x04}, 0x04030201},
		{4, []byte{0xfe, 0xff, 0xff, 0xff}, -2},
		{8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0x0807060504030201},
		{8, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, math.MaxInt64},
	}
	for _, c := range cases {
		if got := ReadInt(c.bytes, 0, c.width); got != c.want {
			t.Fatalf("ReadInt(% x, w=%d)=%d want %d", c.bytes, c.width, got, c.want)
		}
	}
}

func TestReadUintAllWidths(t *testing.T) {
	cases := []struct {
		width uint8
		bytes []byte
		want  uint64
	}{
		{1, []byte{0xff}, 0xff},
		{2, []byte{0x01, 0xff}, 0xff01},
		{4, []byte{0x01, 0x02, 0x03, 0xff}, 0xff030201},
		{8, []byte{1, 2, 3, 4, 5, 6, 7, 0xff}, 0xff07060504030201},
	}
	for _, c := range cases {
		if got := ReadUint(c.bytes, 0, c.width); got != c.want {
			t.Fatalf("ReadUint(% x, w=%d)=%#x want %#x", c.bytes, c.width, got, c.want)
		}
	}
}

func TestReadAtOffset(t *testing.T) {
	b := []byte{0xaa, 0xbb, 0x34, 0x12, 0xcc}
	if got := ReadUint(b, 2, 2); got != 0x1234 {
		t.Fatalf("ReadUint at offset 2 = %#x", got)
	}
	if got := ReadInt(b, 0, 1); got != int64(int8(-0x56)) {
		t.Fatalf("ReadInt at offset 0 = %d", got)
	}
}

func TestReadFloat(t *testing.T) {
	b := make([]byte, 8)
	PutUint(b, 0, 4, uint64(math.Float32bits(4.0)))
	if v, ok := ReadFloat(b, 0, 4); !ok || v != 4.0 {
		t.Fatalf("ReadFloat w=4 = %v,%v", v, ok)
	}
	PutUint(b, 0, 8, math.Float64bits(-1.5e300))
	if v, ok := ReadFloat(b, 0, 8); !ok || v != -1.5e300 {
		t.Fatalf("ReadFloat w=8 = %v,%v", v, ok)
	}
	for _, w := range []uint8{1, 2} {
		if _, ok := ReadFloat(b, 0, w); ok {
			t.Fatalf("ReadFloat should reject width %d", w)
		}
	}
}

func TestPutUintRoundTripsThroughReaders(t *testing.T) {
	for _, w := range []uint8{1, 2, 4, 8} {
		b := make([]byte, 8)
		PutUint(b, 0, w, math.MaxUint64)
		if got := ReadInt(b, 0, w); got != -1 {
			t.Fatalf("w=%d all-ones should read as -1, got %d", w, got)
		}
		want := uint64(1)<<(8*uint(w)) - 1
		if w == 8 {
			want = math.MaxUint64
		}
		if got := ReadUint(b, 0, w); got != want {
			t.Fatalf("w=%d all-ones should read as %#x, got %#x", w, want, got)
		}
	}
}

func TestReadUintPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for width 3")
		}
	}()
	ReadUint([]byte{0, 0, 0, 0}, 0, 3)
}
