package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/module"
)

// Scenario C (spec.md §8): curve combine.
func TestCompose_ScenarioC(t *testing.T) {
	l := curve.Curve{{W: 1, H: 5}, {W: 3, H: 2}, {W: 5, H: 0}}
	r := curve.Curve{{W: 2, H: 3}, {W: 4, H: 1}, {W: 5, H: 0}}

	v := curve.Compose(curve.V, l, r)
	assert.Equal(t, curve.Curve{{2, 8}, {3, 5}, {4, 3}, {5, 0}}, v)

	h := curve.Compose(curve.H, l, r)
	assert.Equal(t, curve.Curve{{3, 5}, {5, 3}, {7, 2}, {9, 1}, {10, 0}}, h)
}

// Scenario A/B (spec.md §8): six equal 30x20 modules combined as
// "0 1 * 2 3 + 4 5 + * +" should have root curve [(40,90),(60,60)].
func TestCompose_ScenarioB_RootCurve(t *testing.T) {
	leaf := curve.LeafCurve(module.Module{Name: "m", Width: 30, Height: 20})
	assert.Equal(t, curve.Curve{{20, 30}, {30, 20}}, leaf)

	n01 := curve.Compose(curve.H, leaf, leaf)
	n23 := curve.Compose(curve.V, leaf, leaf)
	n45 := curve.Compose(curve.V, leaf, leaf)
	inner := curve.Compose(curve.H, n23, n45)
	root := curve.Compose(curve.V, n01, inner)

	assert.Equal(t, curve.Curve{{40, 90}, {60, 60}}, root)
	assert.Equal(t, curve.Point{W: 60, H: 60}, curve.MinAreaPoint(root))
}

func TestLeafCurve_Square(t *testing.T) {
	c := curve.LeafCurve(module.Module{Name: "sq", Width: 10, Height: 10})
	assert.Equal(t, curve.Curve{{10, 10}}, c)
}

func TestLeafCurve_DiscreteShapes(t *testing.T) {
	m := module.Module{Name: "m", Width: 10, Height: 10, Shapes: []module.Shape{
		{Width: 4, Height: 9},
		{Width: 6, Height: 6},
		{Width: 9, Height: 4},
		{Width: 8, Height: 8}, // dominated by (6,6); must be dropped
	}}
	c := curve.LeafCurve(m)
	assert.Equal(t, curve.Curve{{4, 9}, {6, 6}, {9, 4}}, c)
}

func TestFindSplit_RoundTrip(t *testing.T) {
	l := curve.Curve{{W: 1, H: 5}, {W: 3, H: 2}, {W: 5, H: 0}}
	r := curve.Curve{{W: 2, H: 3}, {W: 4, H: 1}, {W: 5, H: 0}}
	h := curve.Compose(curve.H, l, r)
	for _, target := range h {
		lp, rp, _, _, ok := curve.FindSplit(curve.H, l, r, target)
		assert.True(t, ok, "target %v", target)
		assert.Equal(t, target.W, lp.W+rp.W)
		assert.Equal(t, target.H, maxI32(lp.H, rp.H))
	}

	v := curve.Compose(curve.V, l, r)
	for _, target := range v {
		lp, rp, _, _, ok := curve.FindSplit(curve.V, l, r, target)
		assert.True(t, ok, "target %v", target)
		assert.Equal(t, target.H, lp.H+rp.H)
		assert.Equal(t, target.W, maxI32(lp.W, rp.W))
	}
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
