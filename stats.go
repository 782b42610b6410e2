package llrb

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"
)

// Stats describes the shape of a tree. Depths count the links from the
// root to an empty child, so a single node tree has Height 1.
type Stats struct {
	Count       int
	Height      int
	MinDepth    int
	BlackHeight int
	Reds        int
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"count:%s height:%d mindepth:%d blackheight:%d reds:%s",
		humanize.Comma(int64(s.Count)), s.Height, s.MinDepth, s.BlackHeight,
		humanize.Comma(int64(s.Reds)),
	)
}

func (t *tree[K, V]) Stats() Stats {
	var s Stats
	if t == nil || t.root == nil {
		return s
	}

	s.MinDepth = -1
	t.collectStats(t.root, 1, &s)

	// black height along the leftmost path, Validate checks the rest
	for n := t.root; n != nil; n = n.left {
		if !n.isRed() {
			s.BlackHeight++
		}
	}
	return s
}

func (t *tree[K, V]) collectStats(n *node[K, V], depth int, s *Stats) {
	s.Count++
	if n.isRed() {
		s.Reds++
	}

	for _, child := range [2]*node[K, V]{n.left, n.right} {
		if child != nil {
			t.collectStats(child, depth+1, s)
			continue
		}
		if depth > s.Height {
			s.Height = depth
		}
		if s.MinDepth < 0 || depth < s.MinDepth {
			s.MinDepth = depth
		}
	}
}
