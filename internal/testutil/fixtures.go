// Package testutil holds byte fixtures and helpers shared by tests across
// packages. It depends only on internal/format so that in-package tests of
// any flexkit package can import it without cycles.
package testutil

import "github.com/joshuapare/flexkit/internal/format"

// Scalar roots. Each buffer is [value][packed type][root width].
var (
	ByteInt     = []byte{1, 4, 1}                      // Int w1: 1
	ShortInt    = []byte{1, 2, 5, 2}                   // Int w2: 0x0201
	Int         = []byte{1, 2, 3, 4, 6, 4}             // Int w4: 0x04030201
	LongInt     = []byte{1, 2, 3, 4, 5, 6, 7, 8, 7, 8} // Int w8: 0x0807060504030201
	ByteNegInt  = []byte{0xff, 4, 1}                   // Int w1: -1
	IndirectInt = []byte{1, 1, 24, 1}                  // IndirectInt, offset 1 back to a w1 Int: 1

	ByteUint  = []byte{0xff, 8, 1}                      // UInt w1: 0xff
	ShortUint = []byte{1, 0xff, 9, 2}                   // UInt w2: 0xff01
	Uint      = []byte{1, 2, 3, 0xff, 10, 4}            // UInt w4: 0xff030201
	LongUint  = []byte{1, 2, 3, 4, 5, 6, 7, 0xff, 11, 8} // UInt w8: 0xff07060504030201

	BadByteWidth = []byte{1, 4, 3}   // root width 3
	BadType      = []byte{1, 108, 1} // tag 27
)

// Vector roots.
var (
	// TypedIntVector is a size-prefixed VectorInt of bytes [1, 2, 3]:
	// [size=3][1][2][3][offset=3][packed VectorInt w1][root width 1].
	TypedIntVector = []byte{3, 1, 2, 3, 3, 44, 1}

	// Uint3Tuple is a fixed VectorUInt3 of bytes [1, 2, 3] with neither a size
	// prefix nor a type table.
	Uint3Tuple = []byte{1, 2, 3, 3, 80, 1}
)

// MapBytes encodes
//
//	{ vec: [-100, "Fred", 4.0, false], bar: [1, 2, 3], bar3: [1, 2, 3], foo: 100.0,
//	  bool: true, mymap: { foo: "Fred", sbool1: "true", sbool2: "false",
//	  sbool3: "1", sbool4: "0" } }
//
// The root map has 4-byte values and 1-byte keys.
var MapBytes = []byte{
	118, 101, 99, 0, 4, 70, 114, 101, 100, 0, 0, 0, 0, 0, 128, 64, 4, 156, 13, 7, 0, 4, 20, 34,
	104, 98, 97, 114, 0, 3, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 98, 97, 114, 51, 0, 1,
	0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 98, 111, 111, 108, 0, 102, 111, 111, 0, 109, 121, 109, 97,
	112, 0, 115, 98, 111, 111, 108, 49, 0, 4, 116, 114, 117, 101, 0, 115, 98, 111, 111, 108, 50,
	0, 5, 102, 97, 108, 115, 101, 0, 115, 98, 111, 111, 108, 51, 0, 1, 49, 0, 115, 98, 111, 111,
	108, 52, 0, 1, 48, 0, 5, 58, 49, 37, 24, 15, 5, 1, 5, 128, 49, 37, 24, 15, 20, 20, 20, 20,
	20, 6, 119, 100, 84, 80, 77, 149, 0, 0, 8, 0, 0, 0, 1, 0, 0, 0, 6, 0, 0, 0, 131, 0, 0, 0, 118,
	0, 0, 0, 1, 0, 0, 0, 0, 0, 200, 66, 47, 0, 0, 0, 167, 0, 0, 0, 46, 78, 106, 14, 36, 40, 30,
	38, 1,
}

// Offsets inside MapBytes used by corruption tests.
const (
	MapValuesOffset    = 164 // first value slot of the root map
	MapKeysSlotOffset  = 152 // [keys offset] slot, 3 slots before the values
	MapKeysWidthOffset = 156 // [keys byte width] slot
	MapSizeOffset      = 160 // [size] slot
	MapTypeTableOffset = 188 // per-value packed types
	MapKeysOffset      = 144 // first key slot
	MapRootOffset      = 194 // root slot holding the backward offset to the values
	VecValuesOffset    = 17  // elements of the nested "vec" vector
	FredOffset         = 5   // "Fred\x00" inside "vec"
)

// MapKeys lists the root map's keys in stored (ascending) order.
var MapKeys = []string{"bar", "bar3", "bool", "foo", "mymap", "vec"}

// Clone returns a copy of b that tests may corrupt freely.
func Clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// ScalarRoot assembles a buffer whose root is an inline scalar of the given
// tag stored at width bytes.
func ScalarRoot(tag uint8, width uint8, v uint64) []byte {
	packed, ok := format.PackType(tag, width)
	if !ok {
		panic("testutil: invalid width")
	}
	out := make([]byte, int(width)+format.TrailerSize)
	format.PutUint(out, 0, width, v)
	out[width] = packed
	out[width+1] = width
	return out
}

// IndirectRoot assembles a buffer whose root slot (rootWidth bytes) points
// back at a scalar of valueWidth bytes stored at the start of the buffer.
func IndirectRoot(tag uint8, valueWidth, rootWidth uint8, v uint64) []byte {
	packed, ok := format.PackType(tag, valueWidth)
	if !ok {
		panic("testutil: invalid width")
	}
	out := make([]byte, int(valueWidth)+int(rootWidth)+format.TrailerSize)
	format.PutUint(out, 0, valueWidth, v)
	format.PutUint(out, int(valueWidth), rootWidth, uint64(valueWidth))
	out[len(out)-2] = packed
	out[len(out)-1] = rootWidth
	return out
}

// StringRoot assembles a String (or Blob) root: [len][bytes][NUL][offset][packed][width]
// with a 1-byte length prefix and 1-byte root slot.
func StringRoot(tag uint8, s string) []byte {
	packed, _ := format.PackType(tag, 1)
	out := make([]byte, 0, len(s)+5)
	out = append(out, byte(len(s)))
	out = append(out, s...)
	out = append(out, 0)
	// root slot sits right after the NUL; the data starts at index 1
	slot := len(out)
	out = append(out, byte(slot-1), packed, 1)
	return out
}

// SharedFanout assembles levels nested two-element generic vectors where both
// elements of every level point at the same vector one level down. The
// innermost level is the typed int vector [1, 2]. The buffer grows by five
// bytes per level while the expanded tree has 2^levels copies of the
// innermost vector. levels must be between 1 and 48.
func SharedFanout(levels int) []byte {
	if levels < 1 || levels > 48 {
		panic("testutil: fanout levels out of range")
	}
	vecInt, _ := format.PackType(format.TagVectorInt, 1)
	vec, _ := format.PackType(format.TagVector, 1)

	// [size][1][2]
	out := []byte{2, 1, 2}
	prevData, prevPacked := 1, vecInt
	for i := 0; i < levels; i++ {
		p := len(out)
		out = append(out,
			2,
			byte(p+1-prevData),
			byte(p+2-prevData),
			prevPacked,
			prevPacked,
		)
		prevData, prevPacked = p+1, vec
	}
	slot := len(out)
	return append(out, byte(slot-prevData), prevPacked, 1)
}
