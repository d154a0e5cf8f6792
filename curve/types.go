package curve

import (
	"sort"

	"github.com/floorsa/floorsa/module"
)

// Point is one admissible (width, height) shape on a Curve.
type Point struct {
	W, H int32
}

// Area returns p.W * p.H as an int64 to avoid overflow on large layouts.
func (p Point) Area() int64 { return int64(p.W) * int64(p.H) }

// Combine tags how a slicing-tree node's two children are assembled.
type Combine int

const (
	// Leaf marks a tree node with no children (a module).
	Leaf Combine = iota
	// H places children side-by-side: widths add, heights max.
	H
	// V stacks children: heights add, widths max.
	V
)

// Invert swaps H and V, leaving Leaf unchanged (§3).
func (c Combine) Invert() Combine {
	switch c {
	case H:
		return V
	case V:
		return H
	default:
		return Leaf
	}
}

func (c Combine) String() string {
	switch c {
	case H:
		return "H"
	case V:
		return "V"
	default:
		return "LEAF"
	}
}

// Curve is an ordered sequence of Points with strictly increasing W and
// strictly decreasing H (§3). A well-formed Curve is never empty and never
// contains a dominated point.
type Curve []Point

// LeafCurve builds the curve for a single module (§3, §4.7 O3):
//
//   - if m.Shapes is non-empty, the curve is the Pareto frontier of those
//     shapes (explicit discrete aspect ratios);
//   - else if m is square, the curve is the single point (w, h);
//   - else the curve is the two points {(min,max), (max,min)} (free rotation).
func LeafCurve(m module.Module) Curve {
	if len(m.Shapes) > 0 {
		pts := make([]Point, len(m.Shapes))
		for i, s := range m.Shapes {
			pts[i] = Point{W: s.Width, H: s.Height}
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].W < pts[j].W })
		var out Curve
		for _, p := range pts {
			out = appendMonotonic(out, p)
		}
		return out
	}
	if m.Square() {
		return Curve{{W: m.Width, H: m.Height}}
	}
	lo, hi := m.Width, m.Height
	if lo > hi {
		lo, hi = hi, lo
	}
	return Curve{{W: lo, H: hi}, {W: hi, H: lo}}
}

// appendMonotonic inserts p into a Pareto frontier under construction,
// popping any trailing point p dominates and skipping p if a trailing point
// already dominates it. This is the "equal-shape points are collapsed, no
// point is dominated" invariant from §3, applied incrementally.
func appendMonotonic(out Curve, p Point) Curve {
	for len(out) > 0 {
		last := out[len(out)-1]
		if p.W <= last.W && p.H <= last.H {
			// p dominates (or ties) the last point: drop it and retry.
			out = out[:len(out)-1]
			continue
		}
		break
	}
	if len(out) > 0 {
		last := out[len(out)-1]
		if last.W <= p.W && last.H <= p.H {
			// last already dominates p: p contributes nothing.
			return out
		}
	}
	return append(out, p)
}

// Compose produces the parent curve for children f (left) and g (right)
// combined under op, per the sweep rules in §3's table. op must be H or V.
func Compose(op Combine, f, g Curve) Curve {
	if op == H {
		return composeH(f, g)
	}
	return composeV(f, g)
}

// composeH implements the H (side-by-side) sweep: decreasing height, widths
// add, height is the max of the two operands at each step. See §9 (Open
// Question O2 / scenario C): when one operand is exhausted first, the
// remaining operand continues to be combined against the exhausted side's
// last-seen point.
func composeH(f, g Curve) Curve {
	var out Curve
	i, j := 0, 0
	for i < len(f) && j < len(g) {
		fw, fh := f[i].W, f[i].H
		gw, gh := g[j].W, g[j].H
		out = appendMonotonic(out, Point{W: fw + gw, H: max32(fh, gh)})
		switch {
		case fh > gh:
			i++
		case gh > fh:
			j++
		default:
			i++
			j++
		}
	}
	if i < len(f) {
		gw, gh := g[len(g)-1].W, g[len(g)-1].H
		for ; i < len(f); i++ {
			out = appendMonotonic(out, Point{W: f[i].W + gw, H: max32(f[i].H, gh)})
		}
	} else if j < len(g) {
		fw, fh := f[len(f)-1].W, f[len(f)-1].H
		for ; j < len(g); j++ {
			out = appendMonotonic(out, Point{W: fw + g[j].W, H: max32(fh, g[j].H)})
		}
	}
	return out
}

// composeV implements the V (stacked) sweep: increasing width, heights add,
// width is the max of the two operands at each step.
func composeV(f, g Curve) Curve {
	var out Curve
	i, j := 0, 0
	for i < len(f) && j < len(g) {
		fw, fh := f[i].W, f[i].H
		gw, gh := g[j].W, g[j].H
		out = appendMonotonic(out, Point{W: max32(fw, gw), H: fh + gh})
		switch {
		case fw < gw:
			i++
		case gw < fw:
			j++
		default:
			i++
			j++
		}
	}
	if i < len(f) {
		gw, gh := g[len(g)-1].W, g[len(g)-1].H
		for ; i < len(f); i++ {
			out = appendMonotonic(out, Point{W: max32(f[i].W, gw), H: f[i].H + gh})
		}
	} else if j < len(g) {
		fw, fh := f[len(f)-1].W, f[len(f)-1].H
		for ; j < len(g); j++ {
			out = appendMonotonic(out, Point{W: max32(fw, g[j].W), H: fh + g[j].H})
		}
	}
	return out
}

// MinAreaPoint returns the point of c with the smallest Area (§4.3's tree
// cost contract). c must be non-empty.
func MinAreaPoint(c Curve) Point {
	best := c[0]
	for _, p := range c[1:] {
		if p.Area() < best.Area() {
			best = p
		}
	}
	return best
}

// FindSplit locates, for a chosen parent shape target produced by combining
// left and right under op, the pair of child points (and their indices) that
// combine to exactly target. ok is false if no such pair exists (a payload
// integrity violation upstream).
//
// Implemented as a scan of left paired with a binary search of right by the
// width (H) or height (V) each candidate split requires — O(|left| log
// |right|), matching the
// spirit of the "lower_bound" binary-search reconstruction in §4.1 without
// depending on combine provenance.
func FindSplit(op Combine, left, right Curve, target Point) (lp, rp Point, li, ri int, ok bool) {
	if op == H {
		for li = range left {
			need := target.W - left[li].W
			if need < 0 {
				continue
			}
			if ri, ok = searchExactWidth(right, need); ok {
				if max32(left[li].H, right[ri].H) == target.H {
					return left[li], right[ri], li, ri, true
				}
			}
		}
		return Point{}, Point{}, 0, 0, false
	}
	// V: heights add, width is max.
	for li = range left {
		needH := target.H - left[li].H
		if needH < 0 {
			continue
		}
		if ri, ok = searchExactHeight(right, needH); ok {
			if max32(left[li].W, right[ri].W) == target.W {
				return left[li], right[ri], li, ri, true
			}
		}
	}
	return Point{}, Point{}, 0, 0, false
}

func searchExactWidth(c Curve, w int32) (int, bool) {
	i := sort.Search(len(c), func(i int) bool { return c[i].W >= w })
	if i < len(c) && c[i].W == w {
		return i, true
	}
	return 0, false
}

func searchExactHeight(c Curve, h int32) (int, bool) {
	// c is sorted by strictly decreasing height, so search on the mirrored key.
	i := sort.Search(len(c), func(i int) bool { return c[i].H <= h })
	if i < len(c) && c[i].H == h {
		return i, true
	}
	return 0, false
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
