package verify

import "github.com/floorsa/floorsa/layout"

// Rect is an axis-aligned, half-open rectangle [X0, X1) x [Y0, Y1).
type Rect struct {
	X0, Y0, X1, Y1 int32
}

// RectsFromLayout extracts one Rect per placed module from l.
func RectsFromLayout(l layout.Layout) []Rect {
	out := make([]Rect, l.Len())
	for i := 0; i < l.Len(); i++ {
		out[i] = Rect{
			X0: l.X[i], Y0: l.Y[i],
			X1: l.X[i] + l.Width[i], Y1: l.Y[i] + l.Height[i],
		}
	}
	return out
}

// intersects reports whether a and b share more than a boundary: touching
// edges are not an overlap, a positive-area intersection is.
func intersects(a, b Rect) bool {
	return a.X0 < b.X1 && b.X0 < a.X1 && a.Y0 < b.Y1 && b.Y0 < a.Y1
}
