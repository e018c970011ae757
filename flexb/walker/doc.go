// Package walker provides iterative traversal of a FlexBuffers value tree.
//
// # Overview
//
// Walker visits every reference reachable from a root in depth-first,
// document order: a container is visited before its elements, and map
// entries are visited in key order. Traversal uses an explicit stack, so
// deeply nested buffers cannot exhaust the goroutine stack.
//
// Shared subtrees are legal in the wire format (two slots may point at the
// same string or vector). They are visited once per path that reaches them;
// Options.MaxDepth and Options.MaxNodes bound the work a hostile buffer can
// cause.
//
// # Quick Start
//
//	root, _ := flexb.Root(data)
//	w := walker.New(walker.DefaultOptions())
//	err := w.Walk(root, func(p walker.Path, ref flexb.Ref) error {
//	    fmt.Printf("%s: %s\n", p, ref.Type())
//	    return nil
//	})
//
// Return SkipChildren from the visitor to prune a container's elements.
//
// Counting references by type:
//
//	stats, err := walker.Count(root)
//	fmt.Println(stats)
package walker
