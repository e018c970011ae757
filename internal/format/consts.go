// Package format houses the low-level layout of the binary value format:
// packed type bytes, width codes, trailer and map-prefix geometry, and the
// little-endian scalar readers. The goal is to keep the byte arithmetic
// focused, allocation-free, and independent from the navigation API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// TrailerSize is the number of bytes closing every buffer:
	//
	//	[... root value ...][packed type byte][root byte width]
	TrailerSize = 2

	// MinBufferSize is the smallest legal encoding: a 1-byte value plus the trailer.
	MinBufferSize = 1 + TrailerSize

	// PackedTypeShift is the shift applied to a type tag inside a packed type byte.
	PackedTypeShift = 2

	// WidthCodeMask extracts the width code from a packed type byte.
	WidthCodeMask = 0x03

	// MapPrefixSlots is the number of byte-width slots preceding a map's values:
	//
	//	[keys offset][keys byte width][size][values ...][types ...]
	MapPrefixSlots = 3

	// MapKeysOffsetSlot and MapKeysWidthSlot index the map prefix slots,
	// counted from the first slot.
	MapKeysOffsetSlot = 0
	MapKeysWidthSlot  = 1

	// MinTupleLen and MaxTupleLen bound the length of fixed typed vectors.
	MinTupleLen = 2
	MaxTupleLen = 4

	// tupleElemKinds is the number of element kinds per tuple length (int, uint, float).
	tupleElemKinds = 3
)

// Wire values of the type tags the layout arithmetic depends on. They mirror
// types.Type; the duplication keeps this package free of public imports.
const (
	TagNull         = 0
	TagInt          = 1
	TagKey          = 4
	TagMap          = 9
	TagVector       = 10
	TagVectorInt    = 11
	TagVectorString = 15
	TagVectorInt2   = 16
	TagVectorFloat4 = 24
	TagBool         = 26
	TagVectorBool   = 36
)
