package seqpair

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrNegativeWeight indicates a ChangeDistribution initializer was given a
// negative weight (§7): zero is a valid "disallow this operator" weight,
// but negative is a configuration error.
var ErrNegativeWeight = errors.New("seqpair: change distribution weight is negative")

// Change names one entry of a ChangeDistribution: an operator plus (for
// the axis-parameterized operators) which permutation(s) it acts on.
type Change struct {
	Op   Operator
	Axis Axis
}

// ChangeDistribution is a normalized discrete distribution over the
// sequence-pair operator set, sampled once per SA step (§4.2, §4.3's
// move-proposal contract for sequence pairs).
type ChangeDistribution struct {
	changes []Change
	cum     []float64
}

// NewChangeDistribution builds a distribution from a weight map; weights
// need not sum to 1, they are normalized. A zero weight disallows that
// operator (§4.2, §4.9 design notes); a negative weight is a configuration
// error and no distribution is built (§7's strong exception guarantee —
// there is nothing to leave unchanged, since a *ChangeDistribution is
// always fresh, but the rejected input produces no partial result either).
func NewChangeDistribution(weights map[Change]float64) (*ChangeDistribution, error) {
	var total float64
	changes := make([]Change, 0, len(weights))
	for c, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
		if w == 0 {
			continue
		}
		changes = append(changes, c)
		total += w
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Op != changes[j].Op {
			return changes[i].Op < changes[j].Op
		}
		return changes[i].Axis < changes[j].Axis
	})
	cum := make([]float64, len(changes))
	var running float64
	for i, c := range changes {
		running += weights[c] / total
		cum[i] = running
	}
	return &ChangeDistribution{changes: changes, cum: cum}, nil
}

// DefaultChangeDistribution is the distribution described in §4.2: equal
// weight across reverse_{x,y,xy} and rotate-seq_{x,y,xy} (six entries
// sharing a third of the mass equally), and a 2/3 weight on module
// rotation.
func DefaultChangeDistribution() *ChangeDistribution {
	const each = 1.0 / 18.0
	d, err := NewChangeDistribution(map[Change]float64{
		{Op: OpRotate}:                  2.0 / 3.0,
		{Op: OpReverse, Axis: AxisX}:    each,
		{Op: OpReverse, Axis: AxisY}:    each,
		{Op: OpReverse, Axis: AxisXY}:   each,
		{Op: OpRotateSeq, Axis: AxisX}:  each,
		{Op: OpRotateSeq, Axis: AxisY}:  each,
		{Op: OpRotateSeq, Axis: AxisXY}: each,
	})
	if err != nil {
		// The default table's weights are fixed non-negative constants;
		// a rejection here would be a programming error, not bad input.
		panic(err)
	}
	return d
}

// Draw samples one Change from the distribution.
func (d *ChangeDistribution) Draw(rng *rand.Rand) Change {
	r := rng.Float64()
	idx := sort.Search(len(d.cum), func(i int) bool { return d.cum[i] >= r })
	if idx >= len(d.changes) {
		idx = len(d.changes) - 1
	}
	return d.changes[idx]
}
