package walker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/flexkit/flexb"
	"github.com/joshuapare/flexkit/pkg/types"
)

// Stats contains statistics about the references in a tree.
type Stats struct {
	Total      uint64
	Containers uint64
	Scalars    uint64
	MaxDepth   int
	ByType     map[types.Type]uint64
}

// Counter tallies references by type during traversal.
type Counter struct {
	*Walker

	stats Stats
}

// NewCounter creates a counter with the given walk limits.
func NewCounter(opts Options) *Counter {
	return &Counter{Walker: New(opts)}
}

// Count walks root and returns the tallies.
//
// Example:
//
//	stats, err := walker.NewCounter(walker.DefaultOptions()).Count(root)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("maps: %d\n", stats.ByType[types.TypeMap])
func (c *Counter) Count(root flexb.Ref) (*Stats, error) {
	c.stats = Stats{ByType: make(map[types.Type]uint64)}
	err := c.Walk(root, func(p Path, ref flexb.Ref) error {
		c.countRef(p, ref)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c.stats, nil
}

func (c *Counter) countRef(p Path, ref flexb.Ref) {
	c.stats.Total++
	c.stats.ByType[ref.Type()]++
	if ref.IsVector() {
		c.stats.Containers++
	} else {
		c.stats.Scalars++
	}
	if d := p.Depth(); d > c.stats.MaxDepth {
		c.stats.MaxDepth = d
	}
}

// Count is a convenience wrapper around NewCounter(DefaultOptions()).Count.
func Count(root flexb.Ref) (*Stats, error) {
	return NewCounter(DefaultOptions()).Count(root)
}

// String returns a human-readable summary, types in tag order.
func (s *Stats) String() string {
	typs := make([]types.Type, 0, len(s.ByType))
	for t := range s.ByType {
		typs = append(typs, t)
	}
	sort.Slice(typs, func(i, j int) bool { return typs[i] < typs[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d refs (containers: %d, scalars: %d, max depth: %d)\n",
		s.Total, s.Containers, s.Scalars, s.MaxDepth)
	b.WriteString("By Type:\n")
	for _, t := range typs {
		fmt.Fprintf(&b, "  %s: %d\n", t, s.ByType[t])
	}
	return b.String()
}
