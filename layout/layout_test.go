package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorsa/floorsa/layout"
	"github.com/floorsa/floorsa/module"
)

func TestBoundingBox_ScenarioA(t *testing.T) {
	l := layout.New(6)
	coords := [][2]int32{{0, 0}, {30, 0}, {0, 20}, {0, 40}, {30, 20}, {30, 40}}
	for i, c := range coords {
		l.Set(i, c[0], c[1], 30, 20)
	}
	require.NoError(t, l.Validate())
	w, h := l.BoundingBox()
	assert.Equal(t, int32(60), w)
	assert.Equal(t, int32(60), h)
}

func TestWirelength(t *testing.T) {
	l := layout.New(2)
	l.Set(0, 0, 0, 10, 10)
	l.Set(1, 20, 0, 10, 10)
	nets := []module.Net{{A: 0, B: 1}}
	assert.Equal(t, 20.0, layout.Wirelength(l, nets))

	nets[0].Weight = 2
	assert.Equal(t, 40.0, layout.Wirelength(l, nets))
}

func TestLengthMismatch(t *testing.T) {
	l := layout.Layout{X: []int32{0}, Y: []int32{0, 1}}
	assert.ErrorIs(t, l.Validate(), layout.ErrLengthMismatch)
}
