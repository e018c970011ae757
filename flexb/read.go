package flexb

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/joshuapare/flexkit/internal/buf"
	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// --- Bounds-checked scalar reads (no allocations on success) ---

func readUint(b []byte, off int, width uint8) (uint64, error) {
	if !buf.Has(b, off, int(width)) {
		return 0, outOfBounds(b, off, int(width))
	}
	return format.ReadUint(b, off, width), nil
}

func readInt(b []byte, off int, width uint8) (int64, error) {
	if !buf.Has(b, off, int(width)) {
		return 0, outOfBounds(b, off, int(width))
	}
	return format.ReadInt(b, off, width), nil
}

func readFloat(b []byte, off int, width uint8) (float64, error) {
	if !buf.Has(b, off, int(width)) {
		return 0, outOfBounds(b, off, int(width))
	}
	v, ok := format.ReadFloat(b, off, width)
	if !ok {
		return 0, fmt.Errorf("float of width %d at %d: %w", width, off, types.ErrUnsupported)
	}
	return v, nil
}

// indirect follows the backward offset stored in the width-byte slot at off.
func indirect(b []byte, off int, width uint8) (int, error) {
	delta, err := readUint(b, off, width)
	if err != nil {
		return 0, err
	}
	target, ok := buf.Back(off, delta)
	if !ok {
		return 0, fmt.Errorf("offset %d at %d resolves before buffer start: %w", delta, off, types.ErrCorrupt)
	}
	return target, nil
}

// cstring returns the bytes from off up to, not including, the next NUL.
func cstring(b []byte, off int) ([]byte, error) {
	if off < 0 || off >= len(b) {
		return nil, outOfBounds(b, off, 1)
	}
	n := bytes.IndexByte(b[off:], 0)
	if n < 0 {
		return nil, fmt.Errorf("unterminated string at %d: %w", off, types.ErrCorrupt)
	}
	return b[off : off+n : off+n], nil
}

// compareKey compares the NUL-terminated key stored at off with key, byte by
// byte, and returns -1, 0 or 1 like strcmp(stored, key). Only the bytes up
// to the first difference are read.
func compareKey(b []byte, off int, key string) (int, error) {
	if off < 0 {
		return 0, outOfBounds(b, off, 1)
	}
	for i := 0; ; i++ {
		p := off + i
		if p >= len(b) {
			return 0, fmt.Errorf("unterminated key at %d: %w", off, types.ErrCorrupt)
		}
		c := b[p]
		switch {
		case c == 0 && i == len(key):
			return 0, nil
		case c == 0:
			return -1, nil
		case i == len(key):
			return 1, nil
		case c < key[i]:
			return -1, nil
		case c > key[i]:
			return 1, nil
		}
	}
}

// borrow aliases b as a string without copying. b must never be modified.
func borrow(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func outOfBounds(b []byte, off, n int) error {
	return fmt.Errorf("%d bytes at %d outside buffer of %d: %w", n, off, len(b), types.ErrCorrupt)
}
