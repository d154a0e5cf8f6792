package sa

import (
	"math/rand"

	"github.com/floorsa/floorsa/layout"
	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/seqpair"
)

// Evaluator computes coordinates and a bounding box from a sequence-pair
// state (either seqpair.EvaluateDAG or seqpair.EvaluateLCS — property 4
// guarantees they agree).
type Evaluator func(gammaPlus, gammaMinus []int, widths, heights []int32) (xs, ys []int32, w, h int32)

// SeqPairRepresentation adapts a *seqpair.State to Representation (§4.3):
// cost is alpha*area + (1-alpha)*wirelength (§4.4), and moves are drawn
// from the state's ChangeDistribution plus uniformly random operand
// indices.
type SeqPairRepresentation struct {
	State     *seqpair.State
	Nets      []module.Net
	Alpha     float64
	Dist      *seqpair.ChangeDistribution
	Evaluator Evaluator
}

// NewSeqPairRepresentation builds a representation over state, scoring
// placements with nets and the area/wirelength weight alpha (§4.4). dist
// defaults to seqpair.DefaultChangeDistribution when nil.
func NewSeqPairRepresentation(state *seqpair.State, nets []module.Net, alpha float64, evaluator Evaluator, dist *seqpair.ChangeDistribution) *SeqPairRepresentation {
	if dist == nil {
		dist = seqpair.DefaultChangeDistribution()
	}
	return &SeqPairRepresentation{State: state, Nets: nets, Alpha: alpha, Dist: dist, Evaluator: evaluator}
}

// Cost implements Representation.
func (r *SeqPairRepresentation) Cost() float64 {
	xs, ys, w, h := r.Evaluator(r.State.GammaPlus, r.State.GammaMinus, r.State.Widths, r.State.Heights)
	l := layout.New(r.State.Len())
	for i := 0; i < r.State.Len(); i++ {
		l.Set(i, xs[i], ys[i], r.State.Widths[i], r.State.Heights[i])
	}
	area := float64(w) * float64(h)
	wl := layout.Wirelength(l, r.Nets)
	return r.Alpha*area + (1-r.Alpha)*wl
}

// Propose draws a Change from r.Dist, then uniformly random operand
// indices valid for that change's operator, retrying (reject-and-redraw)
// until one succeeds or the attempt budget is exhausted — a change can be
// undrawable on a tiny instance (e.g. reverse/rotate-seq need a span of at
// least two positions).
func (r *SeqPairRepresentation) Propose(rng *rand.Rand) (any, bool) {
	n := r.State.Len()
	for attempt := 0; attempt < maxProposeAttempts; attempt++ {
		change := r.Dist.Draw(rng)
		switch change.Op {
		case seqpair.OpRotate:
			k := rng.Intn(n)
			return r.State.Rotate(k), true
		case seqpair.OpSwap:
			if n < 2 {
				continue
			}
			i, j := distinctPair(rng, n)
			return r.State.Swap(change.Axis, i, j), true
		case seqpair.OpReverse:
			if n < 2 {
				continue
			}
			i, j := rangePair(rng, n)
			return r.State.Reverse(change.Axis, i, j), true
		case seqpair.OpRotateSeq:
			if n < 2 {
				continue
			}
			i, j := rangePair(rng, n)
			return r.State.RotateSeq(change.Axis, i, j), true
		}
	}
	return nil, false
}

// Rollback implements Representation.
func (r *SeqPairRepresentation) Rollback(undo any) {
	r.State.Rollback(undo.(seqpair.Move))
}

// Clone implements Representation.
func (r *SeqPairRepresentation) Clone() Representation {
	return &SeqPairRepresentation{
		State:     r.State.Clone(),
		Nets:      r.Nets,
		Alpha:     r.Alpha,
		Dist:      r.Dist,
		Evaluator: r.Evaluator,
	}
}

// CopyFrom implements Representation.
func (r *SeqPairRepresentation) CopyFrom(src Representation) {
	r.State.CopyFrom(src.(*SeqPairRepresentation).State)
}

// distinctPair draws two distinct indices in [0, n).
func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}
	return i, j
}

// rangePair draws a span [i, j) with 0 <= i < j <= n and j-i >= 2, the
// minimum span Reverse/RotateSeq act on meaningfully.
func rangePair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n - 1)
	j := i + 2 + rng.Intn(n-i-1)
	return i, j
}
