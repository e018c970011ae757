// Package verify provides exhaustive validation of FlexBuffers buffers.
//
// Navigation in package flexb trusts encoding-time guarantees (sorted map
// keys, for instance) and only decodes what a lookup touches. The checks
// here visit every reachable value, which makes them suitable for untrusted
// input before it is handed to long-lived readers, and for tests.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/flexb/walker"
	"github.com/joshuapare/flexkit/internal/format"
	"github.com/joshuapare/flexkit/pkg/types"
)

// ValidationError describes the first invariant violation found.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all buffer invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte) error {
	if err := Trailer(data); err != nil {
		return err
	}
	return Tree(data, walker.DefaultOptions())
}

// Trailer validates the root trailer: buffer size, root byte width, and the
// root's packed type.
func Trailer(data []byte) error {
	if len(data) < format.MinBufferSize {
		return &ValidationError{
			Type:    "Trailer",
			Message: fmt.Sprintf("buffer too small: %d bytes (need %d)", len(data), format.MinBufferSize),
			Offset:  -1,
		}
	}
	if _, err := flexb.Root(data); err != nil {
		return &ValidationError{
			Type:    "Trailer",
			Message: err.Error(),
			Offset:  len(data) - format.TrailerSize,
		}
	}
	return nil
}

// Tree walks every value reachable from the root and checks that it decodes:
// container extents, map key widths and ordering, string terminators and
// blob lengths. Floats narrower than 32 bits are legal and not reported.
//
// Containers may be shared by several parents. Each distinct container is
// descended into once, so opts.MaxNodes bounds the references examined
// rather than the size of the expanded tree.
func Tree(data []byte, opts walker.Options) error {
	root, err := flexb.Root(data)
	if err != nil {
		return Trailer(data)
	}

	seen := make(map[container]struct{})
	err = walker.New(opts).Walk(root, func(p walker.Path, ref flexb.Ref) error {
		if verr := checkRef(ref); verr != nil {
			verr.Details = map[string]any{"path": p.String(), "type": ref.Type().String()}
			return verr
		}
		if !ref.IsVector() {
			return nil
		}
		// A container reached through more than one reference is checked on
		// its first visit only.
		c, err := containerOf(ref)
		if err != nil {
			return err
		}
		if _, ok := seen[c]; ok {
			return walker.SkipChildren
		}
		seen[c] = struct{}{}
		return nil
	})

	var verr *ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, walker.ErrTooDeep), errors.Is(err, walker.ErrTooManyNodes):
		return &ValidationError{Type: "Limits", Message: err.Error(), Offset: -1}
	default:
		return &ValidationError{Type: "Tree", Message: err.Error(), Offset: -1}
	}
}

// container identifies resolved container data. The element width and type
// take part because they change how the same bytes decode.
type container struct {
	off   int
	width uint8
	typ   types.Type
}

func containerOf(ref flexb.Ref) (container, error) {
	v, err := ref.AsVector()
	if err != nil {
		return container{}, err
	}
	return container{off: v.Offset(), width: v.ByteWidth(), typ: ref.Type()}, nil
}

func checkRef(ref flexb.Ref) *ValidationError {
	switch {
	case ref.IsMap():
		return checkMap(ref)
	case ref.IsVector():
		if _, err := ref.AsVector(); err != nil {
			return refError("Vector", ref, err)
		}
	case ref.IsString():
		if _, err := ref.AsString(); err != nil {
			return refError("String", ref, err)
		}
		if _, err := ref.AsBlob(); err != nil {
			return refError("String", ref, err)
		}
	case ref.IsBlob():
		if _, err := ref.AsBlob(); err != nil {
			return refError("Blob", ref, err)
		}
	case ref.IsKey():
		if _, err := ref.AsKey(); err != nil {
			return refError("Key", ref, err)
		}
	case ref.IsFloat():
		if _, err := ref.AsFloat64(); err != nil && !errors.Is(err, types.ErrUnsupported) {
			return refError("Scalar", ref, err)
		}
	case ref.IsInt(), ref.IsUint():
		if _, err := ref.AsUint64(); err != nil {
			return refError("Scalar", ref, err)
		}
	case ref.IsBool():
		if _, err := ref.AsBool(); err != nil {
			return refError("Scalar", ref, err)
		}
	}
	return nil
}

// checkMap validates the map's layout and that its keys are terminated and
// strictly ascending, which binary search relies on.
func checkMap(ref flexb.Ref) *ValidationError {
	m, err := ref.AsMap()
	if err != nil {
		return refError("Map", ref, err)
	}
	prev := ""
	for i := 0; i < m.Len(); i++ {
		key, err := m.KeyAt(i)
		if err != nil {
			return &ValidationError{
				Type:    "MapKey",
				Message: fmt.Sprintf("key %d: %v", i, err),
				Offset:  m.Keys().Offset() + i*int(m.Keys().ByteWidth()),
			}
		}
		if i > 0 && strings.Compare(prev, key) >= 0 {
			return &ValidationError{
				Type:    "MapKey",
				Message: fmt.Sprintf("keys not strictly ascending: %q then %q", prev, key),
				Offset:  m.Keys().Offset() + i*int(m.Keys().ByteWidth()),
			}
		}
		prev = key
	}
	return nil
}

func refError(kind string, ref flexb.Ref, err error) *ValidationError {
	return &ValidationError{Type: kind, Message: err.Error(), Offset: ref.Offset()}
}
