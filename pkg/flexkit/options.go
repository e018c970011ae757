package flexkit

// DefaultMaxSize is the largest file Open accepts when OpenOptions.MaxSize is zero.
const DefaultMaxSize = 1 << 30

// OpenOptions controls file opening behavior.
type OpenOptions struct {
	// Verify walks the whole tree before returning and rejects buffers that
	// violate any invariant (see package verify).
	// Default: false
	Verify bool

	// Copy reads the file onto the heap instead of memory-mapping it.
	// Default: false
	Copy bool

	// MaxSize rejects larger files (0 = DefaultMaxSize).
	MaxSize int64
}
