package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/flexb/walker"
)

// printText writes one line per value:
//
//	(root) [Map] (6)
//	  foo [Float] = 100
//	  vec [Vector] (4)
//	    0 [Int] = -100
func (p *Printer) printText(root flexb.Ref) error {
	w := walker.New(walker.Options{MaxNodes: p.opts.MaxNodes})
	return w.Walk(root, func(path walker.Path, ref flexb.Ref) error {
		depth := path.Depth()
		label := RootLabel
		if depth > 0 {
			label = sanitize(path[depth-1].String())
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)

		annotation := ""
		if p.opts.ShowTypes {
			annotation = fmt.Sprintf(" [%s]", ref.Type())
		}

		if !ref.IsVector() {
			s, err := FormatScalar(ref, p.opts.MaxBlobBytes)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			_, err = fmt.Fprintf(p.writer, "%s%s%s = %s\n", indent, label, annotation, s)
			return err
		}

		n, err := containerLen(ref)
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth && n > 0 {
			if _, err := fmt.Fprintf(p.writer, "%s%s%s (%d) ...\n", indent, label, annotation, n); err != nil {
				return err
			}
			return walker.SkipChildren
		}
		_, err = fmt.Fprintf(p.writer, "%s%s%s (%d)\n", indent, label, annotation, n)
		return err
	})
}

// containerLen returns the entry count of a map or vector.
func containerLen(ref flexb.Ref) (int, error) {
	if ref.IsMap() {
		m, err := ref.AsMap()
		if err != nil {
			return 0, err
		}
		return m.Len(), nil
	}
	v, err := ref.AsVector()
	if err != nil {
		return 0, err
	}
	return v.Len(), nil
}
