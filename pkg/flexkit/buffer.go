package flexkit

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/flexb/verify"
	"github.com/joshuapare/flexkit/internal/mmfile"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Buffer is an opened FlexBuffers document. It is safe for concurrent reads;
// Close must not race with other calls.
type Buffer struct {
	data    []byte
	root    flexb.Ref
	cleanup func() error
	closed  bool
}

// Info summarizes a buffer's root.
type Info struct {
	Size        int
	RootType    types.Type
	RootOffset  int
	ParentWidth uint8 // width of the root slot
	ByteWidth   uint8 // width of the root's data
	Len         int   // entries of a container root, -1 for scalars
}

// Open maps the file at path and binds its root.
func Open(path string, opts OpenOptions) (*Buffer, error) {
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > maxSize {
		return nil, &types.Error{
			Kind: types.ErrKindArgument,
			Msg:  fmt.Sprintf("%s: %d bytes exceeds limit of %d", path, st.Size(), maxSize),
		}
	}

	var (
		data    []byte
		cleanup func() error
	)
	if opts.Copy {
		data, err = os.ReadFile(path)
		cleanup = func() error { return nil }
	} else {
		data, cleanup, err = mmfile.Map(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	b, err := newBuffer(data, cleanup, opts)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FromBytes binds data's root without copying. data must stay unmodified for
// the lifetime of the Buffer and everything read from it.
func FromBytes(data []byte, opts OpenOptions) (*Buffer, error) {
	return newBuffer(data, func() error { return nil }, opts)
}

func newBuffer(data []byte, cleanup func() error, opts OpenOptions) (*Buffer, error) {
	if opts.Verify {
		if err := verify.AllInvariants(data); err != nil {
			return nil, err
		}
	}
	root, err := flexb.Root(data)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data, root: root, cleanup: cleanup}, nil
}

func (b *Buffer) ensureOpen() error {
	if b.closed {
		return types.ErrClosed
	}
	return nil
}

// Root returns the root reference.
func (b *Buffer) Root() (flexb.Ref, error) {
	if err := b.ensureOpen(); err != nil {
		return flexb.Ref{}, err
	}
	return b.root, nil
}

// Bytes returns the underlying buffer. It must not be modified and is only
// valid until Close.
func (b *Buffer) Bytes() []byte { return b.data }

// Find resolves a "/"-separated path from the root.
func (b *Buffer) Find(path string) (flexb.Ref, error) {
	if err := b.ensureOpen(); err != nil {
		return flexb.Ref{}, err
	}
	return Find(b.root, path)
}

// Find resolves a "/"-separated path starting at ref: map keys inside maps,
// decimal indexes inside other vectors.
func Find(ref flexb.Ref, path string) (flexb.Ref, error) {
	cur := ref
	walked := make([]string, 0, strings.Count(path, "/")+1)
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		next, err := step(cur, seg)
		if err != nil {
			return flexb.Ref{}, fmt.Errorf("find %q at %q: %w", seg, strings.Join(walked, "/"), err)
		}
		walked = append(walked, seg)
		cur = next
	}
	return cur, nil
}

func step(ref flexb.Ref, seg string) (flexb.Ref, error) {
	switch {
	case ref.IsMap():
		m, err := ref.AsMap()
		if err != nil {
			return flexb.Ref{}, err
		}
		return m.Lookup(seg)
	case ref.IsVector():
		i, err := strconv.Atoi(seg)
		if err != nil {
			return flexb.Ref{}, &types.Error{Kind: types.ErrKindArgument, Msg: fmt.Sprintf("index %q", seg), Err: err}
		}
		vec, err := ref.AsVector()
		if err != nil {
			return flexb.Ref{}, err
		}
		return vec.At(i)
	default:
		return flexb.Ref{}, fmt.Errorf("%s has no children: %w", ref.Type(), types.ErrNotFound)
	}
}

// Info returns a summary of the buffer's root.
func (b *Buffer) Info() (Info, error) {
	if err := b.ensureOpen(); err != nil {
		return Info{}, err
	}
	info := Info{
		Size:        len(b.data),
		RootType:    b.root.Type(),
		RootOffset:  b.root.Offset(),
		ParentWidth: b.root.ParentWidth(),
		ByteWidth:   b.root.ByteWidth(),
		Len:         -1,
	}
	if b.root.IsVector() {
		n, err := containerLen(b.root)
		if err != nil {
			return Info{}, err
		}
		info.Len = n
	}
	return info, nil
}

func containerLen(ref flexb.Ref) (int, error) {
	if ref.IsMap() {
		m, err := ref.AsMap()
		return m.Len(), err
	}
	v, err := ref.AsVector()
	return v.Len(), err
}

// Verify runs every invariant check over the buffer.
func (b *Buffer) Verify() error {
	if err := b.ensureOpen(); err != nil {
		return err
	}
	return verify.AllInvariants(b.data)
}

// Close releases the mapping. References obtained from the buffer become
// invalid. Calling Close twice is a no-op.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	err := b.cleanup()
	b.data = nil
	b.root = flexb.Ref{}
	return err
}
