package verify_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floorsa/floorsa/verify"
)

func TestOverlaps_NoOverlap(t *testing.T) {
	rects := []verify.Rect{
		{X0: 0, Y0: 0, X1: 2, Y1: 2},
		{X0: 2, Y0: 0, X1: 4, Y1: 2}, // touches at x=2, not an overlap
		{X0: 0, Y0: 2, X1: 2, Y1: 4},
	}
	ok, _, _ := verify.Overlaps(rects)
	assert.False(t, ok)
}

func TestOverlaps_DetectsOverlap(t *testing.T) {
	rects := []verify.Rect{
		{X0: 0, Y0: 0, X1: 3, Y1: 3},
		{X0: 2, Y0: 2, X1: 5, Y1: 5},
	}
	ok, i, j := verify.Overlaps(rects)
	assert.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, []int{i, j})
}

func TestOverlapsFast_AgreesWithOverlaps_NoOverlap(t *testing.T) {
	rects := []verify.Rect{
		{X0: 0, Y0: 0, X1: 2, Y1: 2},
		{X0: 2, Y0: 0, X1: 4, Y1: 2},
	}
	ok1, _, _ := verify.Overlaps(rects)
	ok2, _, _ := verify.OverlapsFast(rects)
	assert.Equal(t, ok1, ok2)
	assert.False(t, ok1)
}

// Property 5 (spec.md §8): Overlaps and OverlapsFast must agree on every
// random rectangle set.
func TestOverlaps_AgreesWithOverlapsFast_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(12)
		rects := make([]verify.Rect, n)
		for i := range rects {
			x0 := int32(rng.Intn(20))
			y0 := int32(rng.Intn(20))
			rects[i] = verify.Rect{
				X0: x0, Y0: y0,
				X1: x0 + int32(1+rng.Intn(8)),
				Y1: y0 + int32(1+rng.Intn(8)),
			}
		}
		ok1, _, _ := verify.Overlaps(rects)
		ok2, _, _ := verify.OverlapsFast(rects)
		assert.Equal(t, ok1, ok2, "trial %d", trial)
	}
}
