package verify

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Overlaps runs a direct coordinate-ordered sweep over rects: process
// rectangles in increasing X0 order, maintaining a bitset of "active"
// indices (those whose X1 still exceeds the current rectangle's X0), and
// test the new rectangle against every active one. Every active rectangle
// necessarily overlaps the new one in X by construction, so only the Y
// ranges need checking. Worst case O(n^2) (a sweep with no early pruning
// opportunity, e.g. all rectangles at X0=0), matching the "direct" sweep's
// stated complexity; OverlapsFast is the sub-quadratic alternative.
//
// Returns the first overlapping pair found (order unspecified beyond
// "first encountered by the sweep"), or ok=false if rects has no overlap.
func Overlaps(rects []Rect) (ok bool, i, j int) {
	n := len(rects)
	if n < 2 {
		return false, -1, -1
	}
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return rects[order[a]].X0 < rects[order[b]].X0 })

	active := bitset.New(uint(n))
	for _, idx := range order {
		r := rects[idx]
		for a, more := active.NextSet(0); more; a, more = active.NextSet(a + 1) {
			ai := int(a)
			if rects[ai].X1 <= r.X0 {
				active.Clear(a)
				continue
			}
			if intersects(rects[ai], r) {
				return true, ai, idx
			}
		}
		active.Set(uint(idx))
	}
	return false, -1, -1
}
