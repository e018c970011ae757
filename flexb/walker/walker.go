package walker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
)

const (
	// initialStackCapacity is the pre-allocated capacity for the traversal stack.
	initialStackCapacity = 64

	// DefaultMaxDepth bounds container nesting.
	DefaultMaxDepth = 128

	// DefaultMaxNodes bounds the number of visited references.
	DefaultMaxNodes = 1 << 24
)

var (
	// SkipChildren may be returned by a Visitor to skip a container's elements.
	// It is never returned by Walk.
	SkipChildren = errors.New("walker: skip children")

	// ErrTooDeep is returned when nesting exceeds Options.MaxDepth.
	ErrTooDeep = errors.New("walker: maximum depth exceeded")

	// ErrTooManyNodes is returned when a walk exceeds Options.MaxNodes.
	ErrTooManyNodes = errors.New("walker: maximum node count exceeded")
)

// Step is one edge from a container to an element. Key is set for map
// entries; Index is always the element's position.
type Step struct {
	Key   string
	Index int
	InMap bool
}

// String renders the step as its key for map entries and its index otherwise.
func (s Step) String() string {
	if s.InMap {
		return s.Key
	}
	return strconv.Itoa(s.Index)
}

// Path is the sequence of steps from the root to a reference.
type Path []Step

// String joins the steps with "/", e.g. "vec/1". The root path is "".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

// Depth returns the nesting level; the root is at depth 0.
func (p Path) Depth() int { return len(p) }

// Visitor is invoked for every reference. The path is owned by the callee
// and may be retained.
type Visitor func(path Path, ref flexb.Ref) error

// Options control a walk.
type Options struct {
	MaxDepth int // 0 means DefaultMaxDepth
	MaxNodes int // 0 means DefaultMaxNodes
}

// DefaultOptions returns the recommended limits.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		MaxNodes: DefaultMaxNodes,
	}
}

type frame struct {
	ref  flexb.Ref
	path Path
}

// Walker performs depth-first traversal. A Walker may be reused for several
// walks but not concurrently.
type Walker struct {
	opts  Options
	stack []frame
}

// New creates a walker.
func New(opts Options) *Walker {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	return &Walker{
		opts:  opts,
		stack: make([]frame, 0, initialStackCapacity),
	}
}

// Walk visits root and everything beneath it. Decoding errors are returned
// with the path of the offending container; a visitor error stops the walk
// and is returned unchanged.
func (w *Walker) Walk(root flexb.Ref, visit Visitor) error {
	w.Reset()
	w.stack = append(w.stack, frame{ref: root})

	visited := 0
	for len(w.stack) > 0 {
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		visited++
		if visited > w.opts.MaxNodes {
			return fmt.Errorf("at %q: %w", f.path, ErrTooManyNodes)
		}

		err := visit(f.path, f.ref)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if !f.ref.IsVector() {
			continue
		}
		if len(f.path) >= w.opts.MaxDepth {
			return fmt.Errorf("at %q: depth %d: %w", f.path, len(f.path), ErrTooDeep)
		}
		if err := w.pushChildren(f); err != nil {
			return fmt.Errorf("at %q: %w", f.path, err)
		}
	}
	return nil
}

// pushChildren pushes a container's elements in reverse so they pop in order.
func (w *Walker) pushChildren(f frame) error {
	if f.ref.IsMap() {
		m, err := f.ref.AsMap()
		if err != nil {
			return err
		}
		for i := m.Len() - 1; i >= 0; i-- {
			key, err := m.KeyAt(i)
			if err != nil {
				return err
			}
			ref, err := m.At(i)
			if err != nil {
				return err
			}
			w.stack = append(w.stack, frame{ref: ref, path: child(f.path, Step{Key: key, Index: i, InMap: true})})
		}
		return nil
	}

	vec, err := f.ref.AsVector()
	if err != nil {
		return err
	}
	for i := vec.Len() - 1; i >= 0; i-- {
		ref, err := vec.At(i)
		if err != nil {
			return err
		}
		w.stack = append(w.stack, frame{ref: ref, path: child(f.path, Step{Index: i})})
	}
	return nil
}

func child(parent Path, s Step) Path {
	p := make(Path, len(parent)+1)
	copy(p, parent)
	p[len(parent)] = s
	return p
}

// Reset clears the stack, keeping its capacity.
func (w *Walker) Reset() {
	w.stack = w.stack[:0]
}

// Walk is a convenience wrapper around New(DefaultOptions()).Walk.
func Walk(root flexb.Ref, visit Visitor) error {
	return New(DefaultOptions()).Walk(root, visit)
}
