package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindArgument    ErrKind = iota // nil buffer, short buffer, empty path
	ErrKindCorrupt                    // bad width code, unknown tag, offset outside the buffer
	ErrKindConversion                 // accessor does not match the value's type tag
	ErrKindNotFound                   // index past the end or key absent
	ErrKindUnsupported                // recognized encoding we don't decode (sub-32-bit floats)
	ErrKindState                      // use after Close
)

// String returns a short, stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindArgument:
		return "invalid-argument"
	case ErrKindCorrupt:
		return "corrupted"
	case ErrKindConversion:
		return "invalid-conversion"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindState:
		return "invalid-state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// ad-hoc errors built by other packages still match the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels returned (wrapped) by the decoder.
var (
	// ErrInvalidArgument indicates a nil or too-short buffer, or an unusable query.
	ErrInvalidArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
	// ErrCorrupt indicates the buffer violates the wire format.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupted buffer"}
	// ErrInvalidConversion indicates the requested accessor doesn't match the type tag.
	ErrInvalidConversion = &Error{Kind: ErrKindConversion, Msg: "invalid conversion"}
	// ErrNotFound indicates a missing vector index or map key.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrUnsupported indicates a recognized but unsupported encoding.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported encoding"}
	// ErrClosed indicates use of a buffer after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "buffer is closed"}
)

// KindOf returns the kind of the first *Error in err's chain.
// ok is false when err carries no typed error.
func KindOf(err error) (kind ErrKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
