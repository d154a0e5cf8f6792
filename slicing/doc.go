// Package slicing implements the slicing-tree representation (SPEC_FULL.md
// §3, §4.1): a binary tree whose leaves are modules and whose internal
// nodes carry an H or V combiner, stored in a flat node pool so that parent
// back-pointers never form reference cycles a garbage collector would need
// to reason about.
//
// One skeleton serves two variants via the Payload interface: the scalar
// tree stores a single (width, height) pair per node (plus a per-leaf
// rotation bit and move M4), the vectorized tree stores a full shape curve
// per node (curve.Curve) and omits M4 — each leaf's curve already encodes
// both orientations.
//
// Construction is either a fold over a Polish-expression token stream or a
// uniform-random normalized build (§4.1). Four neighborhood moves (M1–M4)
// mutate a tree in place under strict locality of update: only the
// ancestors of the touched node(s), up to the sentinel header, are
// recomputed.
package slicing
