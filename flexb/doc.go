// Package flexb provides zero-copy, read-only navigation of self-describing
// binary value buffers (the FlexBuffers layout).
//
// # Overview
//
// A buffer encodes one root value: a scalar, string, blob, vector or
// key-sorted map, possibly nested. Nothing is parsed up front. Callers bind
// the root once and then convert, resolve and index their way down the tree;
// every step re-derives a small view from the bytes and nothing is cached.
//
// # Key Types
//
//   - Ref: a typed reference to one value (position, parent width, byte width, tag)
//   - Vector: a resolved container (position, length, element width, element type)
//   - Map: a values Vector paired with a sorted keys Vector
//
// # Buffer Layout
//
// The last two bytes of a buffer describe the root:
//
//	[ ... values ... ][root slot][packed type byte][root byte width]
//
// A packed type byte is tag<<2 | widthCode, with widths 1, 2, 4 and 8.
// Containers, strings, blobs and indirect scalars are stored before the slot
// that references them; the slot holds a backward offset to the data.
//
// Generic vectors and maps store a size prefix before their elements and a
// packed type byte per element after them:
//
//	[size][e0][e1]...[eN-1][t0][t1]...[tN-1]
//
// Typed vectors keep the size prefix but drop the type table; fixed tuples of
// 2 to 4 elements drop both. Maps prefix their values with three slots that
// locate the keys vector:
//
//	[keys offset][keys byte width][size][values ...][types ...]
//
// # Reading a Buffer
//
//	root, err := flexb.Root(data)
//	if err != nil {
//	    return err
//	}
//	m, err := root.AsMap()
//	if err != nil {
//	    return err
//	}
//	ref, err := m.Lookup("vec")
//	if err != nil {
//	    return err
//	}
//	vec, _ := ref.AsVector()
//	first, _ := vec.At(0)
//	n, _ := first.AsInt64()
//
// # Errors
//
// Every operation returns an error wrapping one of the pkg/types sentinels:
// ErrInvalidArgument, ErrCorrupt, ErrInvalidConversion, ErrNotFound or
// ErrUnsupported. Use errors.Is to branch. Offsets are checked against both
// ends of the buffer, so malformed input is reported and never panics.
//
// # Zero-Copy Design
//
// Refs, Vectors and Maps are small values that borrow the caller's slice.
// AsString, AsKey and AsBlob return views aliasing the buffer, so the buffer
// must not be modified or released while any derived value is in use.
//
// # Thread Safety
//
// Decoding never writes. Any number of goroutines may navigate the same
// buffer concurrently.
package flexb
