package verify

import "github.com/tidwall/rtree"

// OverlapsFast is Overlaps' sub-quadratic counterpart: it indexes every
// rectangle into an R-tree and, for each rectangle, queries only the
// candidates whose bounding boxes actually intersect it — the same
// spatial-index approach as an R-tree-backed collision check in an SA
// acceptance loop. Each query candidate is still confirmed with a strict
// intersects check, since an R-tree query box match includes touching
// boundaries.
//
// Returns the first overlapping pair found, or ok=false if rects has no
// overlap. The two evaluators are exercised against each other as a
// property test (§8 property 5) rather than trusted individually.
func OverlapsFast(rects []Rect) (ok bool, i, j int) {
	var tr rtree.RTree
	for idx, r := range rects {
		tr.Insert(
			[2]float64{float64(r.X0), float64(r.Y0)},
			[2]float64{float64(r.X1), float64(r.Y1)},
			idx,
		)
	}

	for idx, r := range rects {
		found := -1
		tr.Search(
			[2]float64{float64(r.X0), float64(r.Y0)},
			[2]float64{float64(r.X1), float64(r.Y1)},
			func(min, max [2]float64, data interface{}) bool {
				cand := data.(int)
				if cand != idx && intersects(rects[idx], rects[cand]) {
					found = cand
					return false
				}
				return true
			},
		)
		if found >= 0 {
			return true, idx, found
		}
	}
	return false, -1, -1
}
