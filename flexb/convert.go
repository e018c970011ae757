package flexb

import (
	"fmt"

	"github.com/joshuapare/flexkit/internal/buf"
	"github.com/joshuapare/flexkit/pkg/types"
)

// AsInt64 interprets the reference as a signed integer.
// Int and UInt are read inline at the parent width, IndirectInt and
// IndirectUInt are read at the byte width after following the slot's offset,
// and Null reads as 0. UInt values above math.MaxInt64 wrap.
func (r Ref) AsInt64() (int64, error) {
	switch r.typ {
	case types.TypeInt:
		return readInt(r.buf, r.off, r.parentWidth)
	case types.TypeUint:
		v, err := readUint(r.buf, r.off, r.parentWidth)
		return int64(v), err
	case types.TypeIndirectInt:
		p, err := indirect(r.buf, r.off, r.parentWidth)
		if err != nil {
			return 0, err
		}
		return readInt(r.buf, p, r.byteWidth)
	case types.TypeIndirectUint:
		p, err := indirect(r.buf, r.off, r.parentWidth)
		if err != nil {
			return 0, err
		}
		v, err := readUint(r.buf, p, r.byteWidth)
		return int64(v), err
	case types.TypeNull:
		return 0, nil
	}
	return 0, r.conversionError("int64")
}

// AsUint64 is AsInt64 with the signed and unsigned roles swapped.
// Negative Int values are reinterpreted as two's complement.
func (r Ref) AsUint64() (uint64, error) {
	switch r.typ {
	case types.TypeUint:
		return readUint(r.buf, r.off, r.parentWidth)
	case types.TypeInt:
		v, err := readInt(r.buf, r.off, r.parentWidth)
		return uint64(v), err
	case types.TypeIndirectUint:
		p, err := indirect(r.buf, r.off, r.parentWidth)
		if err != nil {
			return 0, err
		}
		return readUint(r.buf, p, r.byteWidth)
	case types.TypeIndirectInt:
		p, err := indirect(r.buf, r.off, r.parentWidth)
		if err != nil {
			return 0, err
		}
		v, err := readInt(r.buf, p, r.byteWidth)
		return uint64(v), err
	case types.TypeNull:
		return 0, nil
	}
	return 0, r.conversionError("uint64")
}

// AsFloat64 interprets a Float or IndirectFloat. Floats narrower than 32
// bits are reported as types.ErrUnsupported.
func (r Ref) AsFloat64() (float64, error) {
	switch r.typ {
	case types.TypeFloat:
		return readFloat(r.buf, r.off, r.parentWidth)
	case types.TypeIndirectFloat:
		p, err := indirect(r.buf, r.off, r.parentWidth)
		if err != nil {
			return 0, err
		}
		return readFloat(r.buf, p, r.byteWidth)
	}
	return 0, r.conversionError("float64")
}

// AsBool interprets the reference as a boolean.
//
// Bool is true when its inline value is non-zero. Null and integer types
// coerce through AsUint64. Every other type coerces to false: AsBool never
// reports types.ErrInvalidConversion, only corruption.
func (r Ref) AsBool() (bool, error) {
	switch {
	case r.typ == types.TypeBool:
		v, err := readUint(r.buf, r.off, r.parentWidth)
		return v != 0, err
	case r.typ.IsNull(), r.typ.IsInt(), r.typ.IsUint():
		v, err := r.AsUint64()
		return v != 0, err
	default:
		return false, nil
	}
}

// AsString returns the NUL-terminated text of a String value, without the
// terminator. The result aliases the buffer.
func (r Ref) AsString() (string, error) {
	if r.typ != types.TypeString {
		return "", r.conversionError("string")
	}
	s, err := r.terminated()
	if err != nil {
		return "", fmt.Errorf("string: %w", err)
	}
	return borrow(s), nil
}

// AsKey returns the NUL-terminated text of a Key value (map keys and
// VectorKey elements). The result aliases the buffer.
func (r Ref) AsKey() (string, error) {
	if r.typ != types.TypeKey {
		return "", r.conversionError("key")
	}
	s, err := r.terminated()
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	return borrow(s), nil
}

func (r Ref) terminated() ([]byte, error) {
	p, err := indirect(r.buf, r.off, r.parentWidth)
	if err != nil {
		return nil, err
	}
	return cstring(r.buf, p)
}

// AsBlob returns the bytes of a Blob or String using the length prefix stored
// byteWidth bytes before the data; no terminator is required. The result
// aliases the buffer and its capacity is clipped to its length.
func (r Ref) AsBlob() ([]byte, error) {
	if r.typ != types.TypeBlob && r.typ != types.TypeString {
		return nil, r.conversionError("blob")
	}
	p, err := indirect(r.buf, r.off, r.parentWidth)
	if err != nil {
		return nil, fmt.Errorf("blob: %w", err)
	}
	n, err := readUint(r.buf, p-int(r.byteWidth), r.byteWidth)
	if err != nil {
		return nil, fmt.Errorf("blob: length prefix: %w", err)
	}
	if n > uint64(len(r.buf)) {
		return nil, fmt.Errorf("blob: length %d exceeds buffer of %d: %w", n, len(r.buf), types.ErrCorrupt)
	}
	data, ok := buf.Slice(r.buf, p, int(n))
	if !ok {
		return nil, fmt.Errorf("blob: %w", outOfBounds(r.buf, p, int(n)))
	}
	return data, nil
}
