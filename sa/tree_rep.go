package sa

import (
	"math/rand"

	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/slicing"
)

// maxProposeAttempts bounds the reject-and-redraw loop in both
// representations' Propose (§5: "a bounded per-move reject-retry counter
// (>= 2^16) prevents pathological non-termination when valid move
// candidates are scarce"). A tiny instance (one or two modules) can make
// some move kinds permanently unavailable; exhausting the budget turns
// that into a clean ok=false instead of an infinite loop.
const maxProposeAttempts = 1 << 16

// TreeRepresentation adapts a *slicing.Tree to Representation (§4.3): cost
// is the root payload's area (scalar: w*h directly; vectorized: the
// minimum-area point of the root curve), and moves are drawn uniformly
// from {M1, M2, M3} (vectorized) or {M1, M2, M3, M4} (scalar).
type TreeRepresentation struct {
	Tree *slicing.Tree
}

// NewTreeRepresentation wraps t.
func NewTreeRepresentation(t *slicing.Tree) *TreeRepresentation {
	return &TreeRepresentation{Tree: t}
}

// Cost implements Representation.
func (r *TreeRepresentation) Cost() float64 {
	root := r.Tree.Root()
	if r.Tree.IsScalar() {
		p := r.Tree.Payload(root).(slicing.ScalarPayload)
		return float64(p.W) * float64(p.H)
	}
	p := r.Tree.Payload(root).(slicing.VectorPayload)
	return float64(curve.MinAreaPoint(p.Curve).Area())
}

// treeUndo records the arguments of a successful M1/M2/M3/M4 call; each of
// those moves is its own structural inverse given the right replay
// arguments (see the per-case comments in Rollback).
type treeUndo struct {
	kind byte
	a, b slicing.NodeID
}

// Propose draws a uniformly random move kind, then uniformly random
// operands for it, retrying (reject-and-redraw, §4.3) until one succeeds
// or the attempt budget is exhausted.
func (r *TreeRepresentation) Propose(rng *rand.Rand) (any, bool) {
	kinds := []byte{1, 2, 3}
	if r.Tree.IsScalar() {
		kinds = []byte{1, 2, 3, 4}
	}
	for attempt := 0; attempt < maxProposeAttempts; attempt++ {
		switch kinds[rng.Intn(len(kinds))] {
		case 1:
			leaves := r.Tree.Leaves()
			if len(leaves) < 2 {
				continue
			}
			a := leaves[rng.Intn(len(leaves))]
			b := leaves[rng.Intn(len(leaves))]
			if a == b {
				continue
			}
			if r.Tree.M1(a, b) {
				return treeUndo{kind: 1, a: a, b: b}, true
			}
		case 2:
			ops := r.Tree.Operators()
			if len(ops) == 0 {
				continue
			}
			v := ops[rng.Intn(len(ops))]
			if r.Tree.M2(v) {
				return treeUndo{kind: 2, a: v}, true
			}
		case 3:
			post := r.Tree.Postorder()
			if len(post) < 2 {
				continue
			}
			i := rng.Intn(len(post) - 1)
			a, b := post[i], post[i+1]
			if r.Tree.M3(a, b) {
				return treeUndo{kind: 3, a: a, b: b}, true
			}
		case 4:
			leaves := r.Tree.Leaves()
			if len(leaves) == 0 {
				continue
			}
			v := leaves[rng.Intn(len(leaves))]
			if r.Tree.M4(v) {
				return treeUndo{kind: 4, a: v}, true
			}
		}
	}
	return nil, false
}

// Rollback undoes u by replaying the corresponding move with operands
// chosen so the replay is exactly the forward move's inverse:
//
//   - M1(a,b) is its own inverse (swap the same two leaves back);
//   - M2(v) is its own inverse (inverting a path's combine types twice is
//     the identity);
//   - M4(leaf) is its own inverse (toggling a bit twice is the identity);
//   - M3(i,j) is undone by M3(j,i): the move leaves the two swapped nodes
//     adjacent in post-order in the opposite role order (leaf-then-operator
//     becomes operator-then-leaf or vice versa), so calling M3 again with
//     the arguments reversed re-triggers the opposite rotation and restores
//     the original structure.
func (r *TreeRepresentation) Rollback(undo any) {
	u := undo.(treeUndo)
	switch u.kind {
	case 1:
		r.Tree.M1(u.a, u.b)
	case 2:
		r.Tree.M2(u.a)
	case 3:
		r.Tree.M3(u.b, u.a)
	case 4:
		r.Tree.M4(u.a)
	}
}

// Clone implements Representation.
func (r *TreeRepresentation) Clone() Representation {
	return &TreeRepresentation{Tree: r.Tree.Clone()}
}

// CopyFrom implements Representation.
func (r *TreeRepresentation) CopyFrom(src Representation) {
	r.Tree = src.(*TreeRepresentation).Tree.Clone()
}
