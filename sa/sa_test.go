package sa_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/sa"
	"github.com/floorsa/floorsa/seqpair"
	"github.com/floorsa/floorsa/slicing"
)

func fourModules() []module.Module {
	return []module.Module{
		{Name: "a", Width: 2, Height: 3},
		{Name: "b", Width: 4, Height: 1},
		{Name: "c", Width: 3, Height: 3},
		{Name: "d", Width: 1, Height: 5},
	}
}

func TestTreeRepresentation_CostMatchesRootPayload(t *testing.T) {
	mods := fourModules()
	tree, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	rep := sa.NewTreeRepresentation(tree)
	require.Greater(t, rep.Cost(), 0.0)
	root := tree.Payload(tree.Root()).(slicing.ScalarPayload)
	assert.Equal(t, float64(root.W)*float64(root.H), rep.Cost())
}

func TestTreeRepresentation_ProposeRollbackRestoresCost(t *testing.T) {
	mods := fourModules()
	tree, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	rep := sa.NewTreeRepresentation(tree)
	before := rep.Cost()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		undo, ok := rep.Propose(rng)
		if !ok {
			continue
		}
		rep.Rollback(undo)
		assert.Equal(t, before, rep.Cost())
	}
}

func TestRun_Tree_ImprovesOrHoldsCost(t *testing.T) {
	mods := fourModules()
	tree, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	rep := sa.NewTreeRepresentation(tree)
	initial := rep.Cost()

	opts := sa.DefaultTreeOptions()
	opts.RepsPerT = 20
	res := sa.Run(rep, opts, rand.New(rand.NewSource(5)))

	assert.LessOrEqual(t, res.BestCost, initial)
	assert.Equal(t, res.BestCost, res.Best.Cost())
}

func TestRun_SeqPair_ImprovesOrHoldsCost(t *testing.T) {
	mods := fourModules()
	state, err := seqpair.New(mods)
	require.NoError(t, err)
	nets := []module.Net{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}
	rep := sa.NewSeqPairRepresentation(state, nets, 0.5, seqpair.EvaluateDAG, nil)
	initial := rep.Cost()

	opts := sa.DefaultSeqPairOptions()
	opts.RepsPerT = 20
	res := sa.Run(rep, opts, rand.New(rand.NewSource(6)))

	assert.LessOrEqual(t, res.BestCost, initial)
}

func TestRun_WithHistory_RecordsNonNegativeBestCosts(t *testing.T) {
	mods := fourModules()
	tree, err := slicing.NewVectorRandom(mods, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	rep := sa.NewTreeRepresentation(tree)

	opts := sa.DefaultTreeOptions()
	opts.RepsPerT = 10
	opts.PStop = 0.9 // stop quickly so the history stays short in this test
	res := sa.Run(rep, opts, rand.New(rand.NewSource(8)), sa.WithHistory())

	require.NotEmpty(t, res.History)
	for _, c := range res.History {
		assert.GreaterOrEqual(t, c, 0.0)
	}
}

// TestRun_Deterministic exercises §8 property 8 / scenario E: two anneals
// over the same modules, options, and seed must produce bitwise-identical
// best costs and layouts.
func TestRun_Deterministic(t *testing.T) {
	mods := fourModules()
	opts := sa.DefaultTreeOptions()
	opts.RepsPerT = 30

	tree1, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	res1 := sa.Run(sa.NewTreeRepresentation(tree1), opts, rand.New(rand.NewSource(42)))

	tree2, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	res2 := sa.Run(sa.NewTreeRepresentation(tree2), opts, rand.New(rand.NewSource(42)))

	assert.Equal(t, res1.BestCost, res2.BestCost)

	l1, err := slicing.ExtractScalar(res1.Best.(*sa.TreeRepresentation).Tree)
	require.NoError(t, err)
	l2, err := slicing.ExtractScalar(res2.Best.(*sa.TreeRepresentation).Tree)
	require.NoError(t, err)
	assert.Equal(t, l1.X, l2.X)
	assert.Equal(t, l1.Y, l2.Y)
	assert.Equal(t, l1.Width, l2.Width)
	assert.Equal(t, l1.Height, l2.Height)
}

func TestRunUntilStable_TerminatesAndReturnsBest(t *testing.T) {
	mods := fourModules()
	newRep := func() sa.Representation {
		tree, err := slicing.NewScalarRandom(mods, rand.New(rand.NewSource(9)))
		if err != nil {
			t.Fatalf("NewScalarRandom: %v", err)
		}
		return sa.NewTreeRepresentation(tree)
	}
	opts := sa.DefaultTreeOptions()
	opts.RepsPerT = 10
	opts.PStop = 0.9
	res := sa.RunUntilStable(newRep, opts, rand.New(rand.NewSource(10)), 2)
	require.NotNil(t, res)
	assert.Greater(t, res.BestCost, 0.0)
}
