package flexb

import (
	"fmt"

	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Root binds the outermost reference of a buffer.
//
// The last byte is the root slot's width and the byte before it the packed
// type of the root value; the slot itself ends where the trailer begins.
// The returned Ref borrows data, which must outlive it and stay unmodified.
func Root(data []byte) (Ref, error) {
	if data == nil {
		return Ref{}, fmt.Errorf("root: nil buffer: %w", types.ErrInvalidArgument)
	}
	if len(data) < format.MinBufferSize {
		return Ref{}, fmt.Errorf("root: buffer of %d bytes, need at least %d: %w",
			len(data), format.MinBufferSize, types.ErrInvalidArgument)
	}

	end := len(data)
	width := data[end-1]
	if !format.ValidWidth(uint64(width)) {
		return Ref{}, fmt.Errorf("root: byte width %d: %w", width, types.ErrCorrupt)
	}
	packed := data[end-2]

	off := end - format.TrailerSize - int(width)
	if off < 0 {
		return Ref{}, fmt.Errorf("root: slot of width %d does not fit in %d bytes: %w", width, end, types.ErrCorrupt)
	}

	ref, err := newRef(data, off, width, packed)
	if err != nil {
		return Ref{}, fmt.Errorf("root: %w", err)
	}
	return ref, nil
}
