package format

// UnpackType splits a packed type byte into its type tag and byte width.
// The width is always one of 1, 2, 4 or 8; tag validity is the caller's concern.
func UnpackType(packed byte) (tag uint8, width uint8) {
	return packed >> PackedTypeShift, 1 << (packed & WidthCodeMask)
}

// PackType combines a type tag and a byte width into a packed type byte.
// ok is false when width is not one of 1, 2, 4 or 8.
func PackType(tag uint8, width uint8) (packed byte, ok bool) {
	code, ok := WidthCode(width)
	if !ok {
		return 0, false
	}
	return tag<<PackedTypeShift | code, true
}

// WidthCode returns the 2-bit code for a byte width.
func WidthCode(width uint8) (uint8, bool) {
	switch width {
	case 1:
		return 0, true
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	default:
		return 0, false
	}
}

// ValidWidth reports whether width is one of 1, 2, 4 or 8.
func ValidWidth(width uint64) bool {
	return width == 1 || width == 2 || width == 4 || width == 8
}

// TupleShape returns the length and element tag of a fixed typed vector tag.
// The tuple tags form a 3x3 grid of {int, uint, float} x {2, 3, 4}.
func TupleShape(tag uint8) (length int, elem uint8) {
	rel := int(tag - TagVectorInt2)
	return rel/tupleElemKinds + MinTupleLen, uint8(rel%tupleElemKinds) + TagInt
}

// IsTuple reports whether tag is a fixed typed vector.
func IsTuple(tag uint8) bool {
	return tag >= TagVectorInt2 && tag <= TagVectorFloat4
}

// TypedVectorElem returns the element tag of a size-prefixed typed vector, or
// TagNull for generic vectors and maps, whose elements carry their own types.
func TypedVectorElem(tag uint8) uint8 {
	if (tag >= TagVectorInt && tag <= TagVectorString) || tag == TagVectorBool {
		return tag - TagVector
	}
	return TagNull
}
