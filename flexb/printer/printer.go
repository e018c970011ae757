// Package printer renders FlexBuffers value trees as indented text or JSON.
package printer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/flexb/walker"
	"github.com/joshuapare/flexkit/pkg/types"
)

const (
	DefaultIndentSize   = 2
	DefaultMaxDepth     = 0
	DefaultMaxBlobBytes = 32

	RootLabel = "(root)"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one line per value, indented by depth.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level. For JSON, 0
	// produces compact output.
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep containers are expanded (0 = unlimited).
	// Deeper containers are summarized by type and length.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowTypes annotates every value with its type name. In JSON each value
	// becomes {"type": ..., "value": ...}.
	// Default: true
	ShowTypes bool

	// MaxBlobBytes limits how many blob bytes the text format displays.
	// Set to 0 for no limit. JSON always carries the full blob.
	// Default: 32
	MaxBlobBytes int

	// MaxNodes bounds how many values are rendered. Shared subtrees are
	// rendered once per reference, so a small buffer can expand to a very
	// large tree; printing stops with walker.ErrTooManyNodes past the limit.
	// Default: walker.DefaultMaxNodes (0 also means the default)
	MaxNodes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		MaxDepth:     DefaultMaxDepth,
		ShowTypes:    true,
		MaxBlobBytes: DefaultMaxBlobBytes,
		MaxNodes:     walker.DefaultMaxNodes,
	}
}

// Printer handles formatted output of value trees. It is not safe for
// concurrent use.
type Printer struct {
	opts   Options
	writer io.Writer
	nodes  int // values rendered by the current JSON print
}

// New creates a new Printer writing to w.
//
// Example:
//
//	root, _ := flexb.Root(data)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(root)
func New(w io.Writer, opts Options) *Printer {
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = walker.DefaultMaxNodes
	}
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// Print renders ref and everything beneath it.
func (p *Printer) Print(ref flexb.Ref) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(ref)
	case FormatText:
		return p.printText(ref)
	default:
		return p.printText(ref)
	}
}

// FormatScalar renders a non-container value the way the text format shows
// it. Strings and keys are quoted; blobs are hex, truncated to maxBlob bytes
// when maxBlob > 0.
func FormatScalar(ref flexb.Ref, maxBlob int) (string, error) {
	switch {
	case ref.IsNull():
		return "null", nil
	case ref.IsInt():
		v, err := ref.AsInt64()
		return strconv.FormatInt(v, 10), err
	case ref.IsUint():
		v, err := ref.AsUint64()
		return strconv.FormatUint(v, 10), err
	case ref.IsFloat():
		v, err := ref.AsFloat64()
		if errors.Is(err, types.ErrUnsupported) {
			return fmt.Sprintf("(%d-byte float)", floatWidth(ref)), nil
		}
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case ref.IsBool():
		v, err := ref.AsBool()
		return strconv.FormatBool(v), err
	case ref.IsString():
		s, err := ref.AsString()
		return strconv.Quote(sanitize(s)), err
	case ref.IsKey():
		s, err := ref.AsKey()
		return strconv.Quote(sanitize(s)), err
	case ref.IsBlob():
		b, err := ref.AsBlob()
		if err != nil {
			return "", err
		}
		return formatBlob(b, maxBlob), nil
	}
	return "", fmt.Errorf("%s is not a scalar: %w", ref.Type(), types.ErrInvalidConversion)
}

func floatWidth(ref flexb.Ref) uint8 {
	if ref.IsIndirect() {
		return ref.ByteWidth()
	}
	return ref.ParentWidth()
}

func formatBlob(b []byte, maxBytes int) string {
	if maxBytes <= 0 || len(b) <= maxBytes {
		return "0x" + hex.EncodeToString(b)
	}
	return fmt.Sprintf("0x%s... (truncated, %d total bytes)", hex.EncodeToString(b[:maxBytes]), len(b))
}

// sanitize replaces invalid UTF-8 with U+FFFD; strings are arbitrary bytes
// on the wire.
func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(unicode.UTF8.NewDecoder(), s)
	if err != nil {
		return s
	}
	return out
}
