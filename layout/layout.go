package layout

import (
	"errors"

	"github.com/floorsa/floorsa/module"
)

// ErrLengthMismatch indicates the four coordinate slices of a Layout differ
// in length, or differ from the module count they are paired against.
var ErrLengthMismatch = errors.New("layout: coordinate slice length mismatch")

// Layout is a finished placement: per-module x, y, width, height (§3).
type Layout struct {
	X      []int32
	Y      []int32
	Width  []int32
	Height []int32
}

// New allocates a Layout for n modules, all fields zeroed.
func New(n int) Layout {
	return Layout{
		X:      make([]int32, n),
		Y:      make([]int32, n),
		Width:  make([]int32, n),
		Height: make([]int32, n),
	}
}

// Len returns the number of placed modules.
func (l Layout) Len() int { return len(l.X) }

// Validate checks that all four slices share one length.
func (l Layout) Validate() error {
	n := len(l.X)
	if len(l.Y) != n || len(l.Width) != n || len(l.Height) != n {
		return ErrLengthMismatch
	}
	return nil
}

// Set places module i at (x, y) with the given dimensions.
func (l Layout) Set(i int, x, y, w, h int32) {
	l.X[i], l.Y[i], l.Width[i], l.Height[i] = x, y, w, h
}

// CenterX returns the horizontal center of module i, per §3's net formula.
func (l Layout) CenterX(i int) float64 {
	return float64(l.X[i]) + float64(l.Width[i])/2
}

// CenterY returns the vertical center of module i.
func (l Layout) CenterY(i int) float64 {
	return float64(l.Y[i]) + float64(l.Height[i])/2
}

// BoundingBox returns (width, height) of the smallest axis-aligned box
// containing every placed module: (max x+w − min x, max y+h − min y).
// Returns (0, 0) for an empty layout.
func (l Layout) BoundingBox() (int32, int32) {
	n := l.Len()
	if n == 0 {
		return 0, 0
	}
	minX, minY := l.X[0], l.Y[0]
	maxX, maxY := l.X[0]+l.Width[0], l.Y[0]+l.Height[0]
	for i := 1; i < n; i++ {
		if l.X[i] < minX {
			minX = l.X[i]
		}
		if l.Y[i] < minY {
			minY = l.Y[i]
		}
		if r := l.X[i] + l.Width[i]; r > maxX {
			maxX = r
		}
		if t := l.Y[i] + l.Height[i]; t > maxY {
			maxY = t
		}
	}
	return maxX - minX, maxY - minY
}

// Area returns the bounding-box area as an int64 to avoid overflow.
func (l Layout) Area() int64 {
	w, h := l.BoundingBox()
	return int64(w) * int64(h)
}

// Wirelength sums the Manhattan distance between net endpoints' centers,
// scaled by each net's EffectiveWeight (§3, §4.7).
func Wirelength(l Layout, nets []module.Net) float64 {
	var total float64
	for _, net := range nets {
		dx := l.CenterX(net.A) - l.CenterX(net.B)
		dy := l.CenterY(net.A) - l.CenterY(net.B)
		total += net.EffectiveWeight() * (absF(dx) + absF(dy))
	}
	return total
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
