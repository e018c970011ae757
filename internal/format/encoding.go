package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Binary encoding utilities for little-endian scalars of variable width.
//
// Every scalar in a buffer is stored at one of four byte widths (1, 2, 4, 8).
// The readers below take the width as a parameter and widen the result to 64
// bits. Callers validate bounds before calling; an out-of-range offset panics
// like any slice access, and an unknown width is a programming error.
//
// Implementation: Uses encoding/binary.LittleEndian, which the compiler
// inlines well enough that unsafe loads gave no measurable benefit.

// ReadUint reads an unsigned little-endian integer of the given width at off
// and zero-extends it to 64 bits.
func ReadUint(b []byte, off int, width uint8) uint64 {
	switch width {
	case 1:
		return uint64(b[off])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b[off : off+2]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b[off : off+4]))
	case 8:
		return binary.LittleEndian.Uint64(b[off : off+8])
	default:
		panic(fmt.Sprintf("format: invalid scalar width %d", width))
	}
}

// ReadInt reads a signed little-endian integer of the given width at off and
// sign-extends it to 64 bits.
func ReadInt(b []byte, off int, width uint8) int64 {
	switch width {
	case 1:
		return int64(int8(b[off]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b[off : off+2])))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b[off : off+4])))
	case 8:
		return int64(binary.LittleEndian.Uint64(b[off : off+8]))
	default:
		panic(fmt.Sprintf("format: invalid scalar width %d", width))
	}
}

// ReadFloat reads an IEEE-754 float at off. Width 4 is widened from single
// precision; width 8 is read directly. Half and quarter precision are not
// decoded: ok is false for any other width.
func ReadFloat(b []byte, off int, width uint8) (v float64, ok bool) {
	switch width {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off : off+4]))), true
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+8])), true
	default:
		return 0, false
	}
}

// PutUint writes v at off using width bytes, truncating higher bits.
// Used by tests and fixture tooling to hand-assemble buffers.
func PutUint(b []byte, off int, width uint8, v uint64) {
	switch width {
	case 1:
		b[off] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b[off:off+2], uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b[off:off+8], v)
	default:
		panic(fmt.Sprintf("format: invalid scalar width %d", width))
	}
}
