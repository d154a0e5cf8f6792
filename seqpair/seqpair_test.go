package seqpair_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/seqpair"
)

func twoModules() []module.Module {
	return []module.Module{
		{Name: "a", Width: 3, Height: 5},
		{Name: "b", Width: 4, Height: 6},
	}
}

func TestNew_IdentityState(t *testing.T) {
	s, err := seqpair.New(twoModules())
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, []int{0, 1}, s.GammaPlus)
	assert.Equal(t, []int{0, 1}, s.GammaMinus)
}

func TestValidate_RejectsNonPermutation(t *testing.T) {
	s, err := seqpair.New(twoModules())
	require.NoError(t, err)
	s.GammaPlus[1] = 0
	assert.ErrorIs(t, s.Validate(), seqpair.ErrNotPermutation)
}

func TestOperators_Rollback(t *testing.T) {
	mods := twoModules()
	s, err := seqpair.New(mods)
	require.NoError(t, err)

	before := s.Clone()

	m := s.Rotate(0)
	assert.Equal(t, mods[0].Height, s.Widths[0])
	s.Rollback(m)
	assert.Equal(t, before.Widths, s.Widths)
	assert.Equal(t, before.Orient, s.Orient)

	m = s.Swap(seqpair.AxisX, 0, 1)
	assert.Equal(t, []int{1, 0}, s.GammaPlus)
	s.Rollback(m)
	assert.Equal(t, before.GammaPlus, s.GammaPlus)

	m = s.Reverse(seqpair.AxisXY, 0, 2)
	s.Rollback(m)
	assert.Equal(t, before.GammaPlus, s.GammaPlus)
	assert.Equal(t, before.GammaMinus, s.GammaMinus)

	s3, err := seqpair.New(append(mods, module.Module{Name: "c", Width: 1, Height: 1}))
	require.NoError(t, err)
	before3 := s3.Clone()
	m = s3.RotateSeq(seqpair.AxisX, 0, 3)
	assert.Equal(t, []int{1, 2, 0}, s3.GammaPlus)
	s3.Rollback(m)
	assert.Equal(t, before3.GammaPlus, s3.GammaPlus)
}

func TestChangeDistribution_DefaultDrawsOnlyKnownOperators(t *testing.T) {
	d := seqpair.DefaultChangeDistribution()
	rng := rand.New(rand.NewSource(7))
	counts := map[seqpair.Operator]int{}
	for i := 0; i < 2000; i++ {
		c := d.Draw(rng)
		counts[c.Op]++
	}
	assert.Greater(t, counts[seqpair.OpRotate], counts[seqpair.OpReverse])
	assert.Greater(t, counts[seqpair.OpRotate], counts[seqpair.OpRotateSeq])
	assert.Zero(t, counts[seqpair.OpSwap], "default distribution does not draw swap")
}

func TestChangeDistribution_RejectsNegativeWeight(t *testing.T) {
	_, err := seqpair.NewChangeDistribution(map[seqpair.Change]float64{
		{Op: seqpair.OpRotate}: -0.5,
	})
	require.ErrorIs(t, err, seqpair.ErrNegativeWeight)
}

func TestChangeDistribution_ZeroWeightDisallowsOperator(t *testing.T) {
	d, err := seqpair.NewChangeDistribution(map[seqpair.Change]float64{
		{Op: seqpair.OpRotate}:               1,
		{Op: seqpair.OpSwap, Axis: seqpair.AxisX}: 0,
	})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		assert.Equal(t, seqpair.OpRotate, d.Draw(rng).Op)
	}
}

// Hand-verified two-module example: both orders agree, gamma+
// == gamma- == identity, so the whole constraint lives in the H graph.
func TestDAGAndLCS_Agree_HandVerified(t *testing.T) {
	gammaPlus := []int{0, 1}
	gammaMinus := []int{0, 1}
	widths := []int32{3, 4}
	heights := []int32{5, 6}

	dxs, dys, dw, dh := seqpair.EvaluateDAG(gammaPlus, gammaMinus, widths, heights)
	lxs, lys, lw, lh := seqpair.EvaluateLCS(gammaPlus, gammaMinus, widths, heights)

	assert.Equal(t, dxs, lxs)
	assert.Equal(t, dys, lys)
	assert.Equal(t, dw, lw)
	assert.Equal(t, dh, lh)
	assert.Equal(t, []int32{0, 3}, dxs)
	assert.Equal(t, int32(7), dw)
	assert.Equal(t, []int32{0, 0}, dys)
	assert.Equal(t, int32(6), dh)
}

// Property 4 (spec.md §8): the DAG and LCS evaluators must agree on every
// input, exercised over random permutations and footprints.
func TestDAGAndLCS_Agree_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(8)
		widths := make([]int32, n)
		heights := make([]int32, n)
		for i := range widths {
			widths[i] = int32(1 + rng.Intn(20))
			heights[i] = int32(1 + rng.Intn(20))
		}
		gammaPlus := rng.Perm(n)
		gammaMinus := rng.Perm(n)

		dxs, dys, dw, dh := seqpair.EvaluateDAG(gammaPlus, gammaMinus, widths, heights)
		lxs, lys, lw, lh := seqpair.EvaluateLCS(gammaPlus, gammaMinus, widths, heights)

		require.Equal(t, dxs, lxs, "trial %d xs", trial)
		require.Equal(t, dys, lys, "trial %d ys", trial)
		require.Equal(t, dw, lw, "trial %d width", trial)
		require.Equal(t, dh, lh, "trial %d height", trial)
	}
}
