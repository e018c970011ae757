package flexb

import (
	"fmt"

	"github.com/joshuapare/flexkit/internal/buf"
	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Vector is a zero-cost view over a resolved container.
type Vector struct {
	buf       []byte
	off       int // first element
	length    int
	byteWidth uint8
	packed    byte // element packed type; 0 when each element has its own
}

// AsVector resolves any container reference: maps, generic vectors, typed
// vectors (including VectorBool) and fixed tuples.
//
// Generic vectors and maps are heterogeneous: every element's packed type is
// read from the table after the elements. Typed vectors and tuples share one
// element type, derived from the tag. Tuples carry no size prefix; their
// length is also derived from the tag.
func (r Ref) AsVector() (Vector, error) {
	if !r.typ.IsVector() {
		return Vector{}, r.conversionError("vector")
	}
	data, err := indirect(r.buf, r.off, r.parentWidth)
	if err != nil {
		return Vector{}, fmt.Errorf("vector: %w", err)
	}

	tag := uint8(r.typ)
	var (
		length int
		elem   uint8
	)
	if format.IsTuple(tag) {
		length, elem = format.TupleShape(tag)
	} else {
		n, err := readUint(r.buf, data-int(r.byteWidth), r.byteWidth)
		if err != nil {
			return Vector{}, fmt.Errorf("vector: size prefix: %w", err)
		}
		if n > uint64(len(r.buf)) {
			return Vector{}, fmt.Errorf("vector: length %d exceeds buffer of %d: %w", n, len(r.buf), types.ErrCorrupt)
		}
		length = int(n)
		elem = format.TypedVectorElem(tag)
	}

	var packed byte
	if elem != format.TagNull {
		p, ok := format.PackType(elem, r.byteWidth)
		if !ok {
			return Vector{}, fmt.Errorf("vector: element width %d: %w", r.byteWidth, types.ErrCorrupt)
		}
		packed = p
	}

	v := Vector{
		buf:       r.buf,
		off:       data,
		length:    length,
		byteWidth: r.byteWidth,
		packed:    packed,
	}
	if err := v.checkExtent(); err != nil {
		return Vector{}, fmt.Errorf("vector: %w", err)
	}
	return v, nil
}

// checkExtent verifies that the elements, and the type table when present,
// lie inside the buffer so that At never needs to.
func (v Vector) checkExtent() error {
	end, err := buf.CheckSpan(len(v.buf), v.off, v.length, int(v.byteWidth))
	if err != nil {
		return &types.Error{Kind: types.ErrKindCorrupt, Msg: "elements", Err: err}
	}
	if v.packed == 0 {
		if _, err := buf.CheckSpan(len(v.buf), end, v.length, 1); err != nil {
			return &types.Error{Kind: types.ErrKindCorrupt, Msg: "type table", Err: err}
		}
	}
	return nil
}

// Len returns the number of elements.
func (v Vector) Len() int { return v.length }

// ByteWidth returns the width of every element slot.
func (v Vector) ByteWidth() uint8 { return v.byteWidth }

// Offset returns the buffer position of the first element.
func (v Vector) Offset() int { return v.off }

// IsTyped reports whether all elements share one type and no table is stored.
func (v Vector) IsTyped() bool { return v.packed != 0 }

// ElemType returns the shared element type of a typed vector or tuple, and
// TypeNull for heterogeneous vectors.
func (v Vector) ElemType() types.Type {
	tag, _ := format.UnpackType(v.packed)
	return types.Type(tag)
}

// At returns a reference to element i. Indexes outside [0, Len()) are
// reported as types.ErrNotFound.
func (v Vector) At(i int) (Ref, error) {
	if i < 0 || i >= v.length {
		return Ref{}, fmt.Errorf("vector index %d of %d: %w", i, v.length, types.ErrNotFound)
	}
	w := int(v.byteWidth)
	packed := v.packed
	if packed == 0 {
		packed = v.buf[v.off+w*v.length+i]
	}
	return newRef(v.buf, v.off+w*i, v.byteWidth, packed)
}
