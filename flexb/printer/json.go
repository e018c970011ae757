package printer

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/flexb/walker"
	"github.com/joshuapare/flexkit/pkg/types"
)

// jsonTyped is the annotated form of a value when ShowTypes is set.
type jsonTyped struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// jsonTruncated stands in for a container beyond MaxDepth.
type jsonTruncated struct {
	Type      string `json:"type"`
	Len       int    `json:"len"`
	Truncated bool   `json:"truncated"`
}

// printJSON writes ref as one JSON document. Maps become objects (FlexBuffers
// keys are sorted bytewise, as encoding/json sorts object keys), vectors
// become arrays and blobs become hex strings.
func (p *Printer) printJSON(ref flexb.Ref) error {
	p.nodes = 0
	v, err := p.toJSON(ref, 0)
	if err != nil {
		return err
	}

	var data []byte
	if p.opts.IndentSize > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", p.opts.IndentSize))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer) toJSON(ref flexb.Ref, depth int) (any, error) {
	if depth > walker.DefaultMaxDepth {
		return nil, fmt.Errorf("depth %d: %w", depth, walker.ErrTooDeep)
	}
	p.nodes++
	if p.nodes > p.opts.MaxNodes {
		return nil, fmt.Errorf("%d values: %w", p.opts.MaxNodes, walker.ErrTooManyNodes)
	}

	v, err := p.decodeJSON(ref, depth)
	if err != nil {
		return nil, err
	}
	if p.opts.ShowTypes {
		return jsonTyped{Type: ref.Type().String(), Value: v}, nil
	}
	return v, nil
}

func (p *Printer) decodeJSON(ref flexb.Ref, depth int) (any, error) {
	if ref.IsVector() && p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		n, err := containerLen(ref)
		if err != nil {
			return nil, err
		}
		return jsonTruncated{Type: ref.Type().String(), Len: n, Truncated: true}, nil
	}

	switch {
	case ref.IsMap():
		m, err := ref.AsMap()
		if err != nil {
			return nil, err
		}
		obj := make(map[string]any, m.Len())
		for i := 0; i < m.Len(); i++ {
			key, err := m.KeyAt(i)
			if err != nil {
				return nil, err
			}
			val, err := m.At(i)
			if err != nil {
				return nil, err
			}
			if obj[sanitize(key)], err = p.toJSON(val, depth+1); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		return obj, nil

	case ref.IsVector():
		vec, err := ref.AsVector()
		if err != nil {
			return nil, err
		}
		arr := make([]any, vec.Len())
		for i := range arr {
			el, err := vec.At(i)
			if err != nil {
				return nil, err
			}
			if arr[i], err = p.toJSON(el, depth+1); err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
		}
		return arr, nil

	case ref.IsNull():
		return nil, nil
	case ref.IsInt():
		return ref.AsInt64()
	case ref.IsUint():
		return ref.AsUint64()
	case ref.IsBool():
		return ref.AsBool()
	case ref.IsFloat():
		f, err := ref.AsFloat64()
		if errors.Is(err, types.ErrUnsupported) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		// JSON has no NaN or infinities.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprint(f), nil
		}
		return f, nil
	case ref.IsString():
		s, err := ref.AsString()
		return sanitize(s), err
	case ref.IsKey():
		s, err := ref.AsKey()
		return sanitize(s), err
	case ref.IsBlob():
		b, err := ref.AsBlob()
		if err != nil {
			return nil, err
		}
		return hex.EncodeToString(b), nil
	}
	return nil, fmt.Errorf("%s: %w", ref.Type(), types.ErrInvalidConversion)
}
