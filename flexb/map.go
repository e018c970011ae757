package flexb

import (
	"fmt"

	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Map pairs a map's values with its keys. Keys are sorted ascending by their
// bytes and keys[i] names values[i]; both are encoding-time guarantees that
// navigation trusts (see package verify for an exhaustive check).
type Map struct {
	values Vector
	keys   Vector
}

// AsMap resolves a Map reference. The values are a heterogeneous vector; the
// keys vector is located through the slots preceding the values:
//
//	[keys offset][keys byte width][size][values ...]
func (r Ref) AsMap() (Map, error) {
	if r.typ != types.TypeMap {
		return Map{}, r.conversionError("map")
	}
	values, err := r.AsVector()
	if err != nil {
		return Map{}, fmt.Errorf("map: %w", err)
	}

	w := int(values.byteWidth)
	slot := values.off - format.MapPrefixSlots*w
	if slot < 0 {
		return Map{}, fmt.Errorf("map: key prefix at %d before buffer start: %w", slot, types.ErrCorrupt)
	}
	keysOff, err := indirect(r.buf, slot+format.MapKeysOffsetSlot*w, values.byteWidth)
	if err != nil {
		return Map{}, fmt.Errorf("map: keys offset: %w", err)
	}
	keysWidth, err := readUint(r.buf, slot+format.MapKeysWidthSlot*w, values.byteWidth)
	if err != nil {
		return Map{}, fmt.Errorf("map: keys width: %w", err)
	}
	if !format.ValidWidth(keysWidth) {
		return Map{}, fmt.Errorf("map: keys byte width %d: %w", keysWidth, types.ErrCorrupt)
	}
	packed, _ := format.PackType(format.TagKey, uint8(keysWidth))

	keys := Vector{
		buf:       r.buf,
		off:       keysOff,
		length:    values.length,
		byteWidth: uint8(keysWidth),
		packed:    packed,
	}
	if err := keys.checkExtent(); err != nil {
		return Map{}, fmt.Errorf("map: keys: %w", err)
	}
	return Map{values: values, keys: keys}, nil
}

// Len returns the number of entries.
func (m Map) Len() int { return m.values.length }

// Values returns the values vector.
func (m Map) Values() Vector { return m.values }

// Keys returns the keys vector; its elements are Key references.
func (m Map) Keys() Vector { return m.keys }

// At returns the value of entry i.
func (m Map) At(i int) (Ref, error) { return m.values.At(i) }

// KeyAt returns the key of entry i. The result aliases the buffer.
func (m Map) KeyAt(i int) (string, error) {
	ref, err := m.keys.At(i)
	if err != nil {
		return "", err
	}
	return ref.AsKey()
}

// Lookup binary-searches the keys for key and returns the matching value.
// Only the probed keys are read: O(log n) comparisons, each bounded by the
// key length. A missing key is reported as types.ErrNotFound.
func (m Map) Lookup(key string) (Ref, error) {
	w := int(m.keys.byteWidth)
	lo, hi := 0, m.keys.length-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		target, err := indirect(m.keys.buf, m.keys.off+mid*w, m.keys.byteWidth)
		if err != nil {
			return Ref{}, fmt.Errorf("map key %d: %w", mid, err)
		}
		c, err := compareKey(m.keys.buf, target, key)
		if err != nil {
			return Ref{}, fmt.Errorf("map key %d: %w", mid, err)
		}
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return m.values.At(mid)
		}
	}
	return Ref{}, fmt.Errorf("map key %q: %w", key, types.ErrNotFound)
}
