package flexb

import (
	"fmt"

	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Ref is a zero-cost typed reference to one value inside a buffer.
//
// parentWidth is the width of the slot holding the reference: direct scalars
// are read at that width and indirections are resolved with it. byteWidth is
// the width used for the referenced data (indirect scalars, string and blob
// length prefixes, container elements).
type Ref struct {
	buf         []byte
	off         int
	parentWidth uint8
	byteWidth   uint8
	typ         types.Type
}

// newRef is the single construction point for references; it rejects tags
// outside the wire format's enumeration.
func newRef(b []byte, off int, parentWidth uint8, packed byte) (Ref, error) {
	tag, width := format.UnpackType(packed)
	t := types.Type(tag)
	if !t.Valid() {
		return Ref{}, fmt.Errorf("packed type %#02x at slot %d: unknown tag %d: %w", packed, off, tag, types.ErrCorrupt)
	}
	return Ref{
		buf:         b,
		off:         off,
		parentWidth: parentWidth,
		byteWidth:   width,
		typ:         t,
	}, nil
}

func (r Ref) Type() types.Type    { return r.typ }
func (r Ref) Offset() int         { return r.off }
func (r Ref) ParentWidth() uint8  { return r.parentWidth }
func (r Ref) ByteWidth() uint8    { return r.byteWidth }
func (r Ref) IsNull() bool        { return r.typ.IsNull() }
func (r Ref) IsInt() bool         { return r.typ.IsInt() }
func (r Ref) IsUint() bool        { return r.typ.IsUint() }
func (r Ref) IsFloat() bool       { return r.typ.IsFloat() }
func (r Ref) IsNumeric() bool     { return r.typ.IsNumeric() }
func (r Ref) IsIndirect() bool    { return r.typ.IsIndirect() }
func (r Ref) IsKey() bool         { return r.typ.IsKey() }
func (r Ref) IsString() bool      { return r.typ.IsString() }
func (r Ref) IsMap() bool         { return r.typ.IsMap() }
func (r Ref) IsVector() bool      { return r.typ.IsVector() }
func (r Ref) IsTypedVector() bool { return r.typ.IsTypedVector() }
func (r Ref) IsBlob() bool        { return r.typ.IsBlob() }
func (r Ref) IsBool() bool        { return r.typ.IsBool() }

func (r Ref) IsFixedTypedVector() bool { return r.typ.IsFixedTypedVector() }

// String describes the reference for diagnostics, e.g. "Map@194(w1/4)".
func (r Ref) String() string {
	return fmt.Sprintf("%s@%d(w%d/%d)", r.typ, r.off, r.parentWidth, r.byteWidth)
}

func (r Ref) conversionError(to string) error {
	return fmt.Errorf("%s to %s: %w", r.typ, to, types.ErrInvalidConversion)
}
