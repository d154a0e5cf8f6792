package slicing

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/module"
)

// Sentinel errors for tree construction and extraction.
var (
	ErrNoModules           = errors.New("slicing: module set is empty")
	ErrLeafIndexOutOfRange = errors.New("slicing: leaf token references a module index out of range")
	ErrTooFewOperands      = errors.New("slicing: operator token with fewer than two operands on the stack")
	ErrTrailingOperands    = errors.New("slicing: expression leaves more than one subtree on the stack")
	ErrNotScalarTree       = errors.New("slicing: tree is not a scalar-payload tree")
	ErrNotVectorTree       = errors.New("slicing: tree is not a vectorized (curve) tree")
	ErrSplitNotFound       = errors.New("slicing: no child-shape pair reconstructs the requested point")
)

// NodeID indexes into a Tree's node pool. Nil is the null node.
type NodeID int

// Nil is the null NodeID.
const Nil NodeID = -1

// Payload is the per-node data a slicing tree carries, abstracting over the
// scalar (width, height) representation and the vectorized shape-curve
// representation behind one tree skeleton. Recompute derives a node's own
// payload from its two children's payloads and its combine type; the
// receiver's own fields are never read, only its dynamic type selects the
// implementation.
type Payload interface {
	Recompute(left, right Payload, op curve.Combine) Payload
}

// ScalarPayload is a node's single (width, height) pair.
type ScalarPayload struct {
	W, H int32
}

// Recompute implements Payload for the scalar tree variant.
func (ScalarPayload) Recompute(left, right Payload, op curve.Combine) Payload {
	l := left.(ScalarPayload)
	r := right.(ScalarPayload)
	if op == curve.H {
		return ScalarPayload{W: l.W + r.W, H: max32(l.H, r.H)}
	}
	return ScalarPayload{W: max32(l.W, r.W), H: l.H + r.H}
}

// VectorPayload is a node's full shape curve.
type VectorPayload struct {
	Curve curve.Curve
}

// Recompute implements Payload for the vectorized tree variant.
func (VectorPayload) Recompute(left, right Payload, op curve.Combine) Payload {
	l := left.(VectorPayload)
	r := right.(VectorPayload)
	return VectorPayload{Curve: curve.Compose(op, l.Curve, r.Curve)}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// node is one slot in a Tree's flat pool. Internal nodes (kind != Leaf) use
// left/right/size/payload; leaves additionally use moduleIdx and rotated.
type node struct {
	kind      curve.Combine
	parent    NodeID
	left      NodeID
	right     NodeID
	size      int
	moduleIdx int
	rotated   bool // scalar variant only
	payload   Payload
}

// Tree is a slicing tree over a fixed module set: either a scalar tree
// (ScalarPayload, moves M1-M4) or a vectorized tree (VectorPayload, moves
// M1-M3). Nodes live in a flat, never-shrinking pool; a sentinel header node
// stands in as the root's parent so ancestor-walking code never special-
// cases "have I reached the top."
type Tree struct {
	nodes   []node
	alloc   *bitset.BitSet
	header  NodeID
	modules []module.Module
	scalar  bool
}

func newTree(modules []module.Module, scalar bool) *Tree {
	t := &Tree{modules: modules, scalar: scalar, alloc: bitset.New(0)}
	t.header = t.allocNode()
	t.nodes[t.header] = node{kind: curve.Leaf, parent: Nil, left: Nil, right: Nil}
	return t
}

func (t *Tree) allocNode() NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	t.alloc.Set(uint(id))
	return id
}

func (t *Tree) leafPayload(moduleIdx int, rotated bool) Payload {
	m := t.modules[moduleIdx]
	if t.scalar {
		w, h := m.Width, m.Height
		if rotated {
			w, h = h, w
		}
		return ScalarPayload{W: w, H: h}
	}
	return VectorPayload{Curve: curve.LeafCurve(m)}
}

func (t *Tree) newLeaf(moduleIdx int, rotated bool) NodeID {
	id := t.allocNode()
	t.nodes[id] = node{
		kind:      curve.Leaf,
		parent:    Nil,
		left:      Nil,
		right:     Nil,
		size:      1,
		moduleIdx: moduleIdx,
		rotated:   rotated,
		payload:   t.leafPayload(moduleIdx, rotated),
	}
	return id
}

func (t *Tree) newInternal(kind curve.Combine, left, right NodeID) NodeID {
	id := t.allocNode()
	lp := t.nodes[left].payload
	rp := t.nodes[right].payload
	t.nodes[id] = node{
		kind:    kind,
		parent:  Nil,
		left:    left,
		right:   right,
		size:    1 + t.nodes[left].size + t.nodes[right].size,
		payload: lp.Recompute(lp, rp, kind),
	}
	t.nodes[left].parent = id
	t.nodes[right].parent = id
	return id
}

// Header returns the sentinel node standing in as the root's parent.
func (t *Tree) Header() NodeID { return t.header }

// Root returns the tree's root, or Nil for an empty tree.
func (t *Tree) Root() NodeID { return t.nodes[t.header].left }

// IsScalar reports whether t is the scalar-payload variant.
func (t *Tree) IsScalar() bool { return t.scalar }

// Modules returns the module set t was built over.
func (t *Tree) Modules() []module.Module { return t.modules }

// Kind returns id's combine type (Leaf for a leaf node).
func (t *Tree) Kind(id NodeID) curve.Combine { return t.nodes[id].kind }

// IsLeaf reports whether id is a leaf (a module).
func (t *Tree) IsLeaf(id NodeID) bool { return t.nodes[id].kind == curve.Leaf }

// Left returns id's left child (Nil for a leaf).
func (t *Tree) Left(id NodeID) NodeID { return t.nodes[id].left }

// Right returns id's right child (Nil for a leaf).
func (t *Tree) Right(id NodeID) NodeID { return t.nodes[id].right }

// Parent returns id's parent, or Header() if id is the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Size returns the number of nodes (leaves and operators) in id's subtree.
func (t *Tree) Size(id NodeID) int { return t.nodes[id].size }

// ModuleIndex returns the module index a leaf node represents.
func (t *Tree) ModuleIndex(id NodeID) int { return t.nodes[id].moduleIdx }

// Rotated reports a scalar-tree leaf's orientation bit.
func (t *Tree) Rotated(id NodeID) bool { return t.nodes[id].rotated }

// Payload returns id's current payload.
func (t *Tree) Payload(id NodeID) Payload { return t.nodes[id].payload }

// Leaves returns every leaf node id in the pool, in pool order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	for i, ok := t.alloc.NextSet(0); ok; i, ok = t.alloc.NextSet(i + 1) {
		id := NodeID(i)
		if id != t.header && t.nodes[id].kind == curve.Leaf {
			out = append(out, id)
		}
	}
	return out
}

// Operators returns every internal node id in the pool, in pool order.
func (t *Tree) Operators() []NodeID {
	var out []NodeID
	for i, ok := t.alloc.NextSet(0); ok; i, ok = t.alloc.NextSet(i + 1) {
		id := NodeID(i)
		if id != t.header && t.nodes[id].kind != curve.Leaf {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns a deep copy of t's node pool. Payload values are never
// mutated in place by moves (Recompute always allocates), so sharing the
// underlying curve.Curve backing arrays between t and its clone is safe.
func (t *Tree) Clone() *Tree {
	return &Tree{
		nodes:   append([]node(nil), t.nodes...),
		alloc:   t.alloc.Clone(),
		header:  t.header,
		modules: t.modules,
		scalar:  t.scalar,
	}
}

// propagate recomputes payload and size for id and every ancestor up to (but
// not including) the header. Leaves are skipped (their payload is set
// directly by the move that touched them).
func (t *Tree) propagate(id NodeID) {
	for id != t.header {
		n := &t.nodes[id]
		if n.kind != curve.Leaf {
			left := t.nodes[n.left].payload
			right := t.nodes[n.right].payload
			n.payload = n.payload.Recompute(left, right, n.kind)
			n.size = 1 + t.nodes[n.left].size + t.nodes[n.right].size
		}
		id = n.parent
	}
}
