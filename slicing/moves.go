package slicing

import "github.com/floorsa/floorsa/curve"

// M1 swaps two leaves' module assignments in place, rewiring nothing but
// the two nodes' own fields, then propagates the change up both ancestor
// paths. Always valid for two distinct leaf nodes; returns false (no state
// change) if a or b is not a leaf, or a == b.
func (t *Tree) M1(a, b NodeID) bool {
	if a == b || a == t.header || b == t.header {
		return false
	}
	na, nb := &t.nodes[a], &t.nodes[b]
	if na.kind != curve.Leaf || nb.kind != curve.Leaf {
		return false
	}
	na.moduleIdx, nb.moduleIdx = nb.moduleIdx, na.moduleIdx
	na.rotated, nb.rotated = nb.rotated, na.rotated
	na.payload = t.leafPayload(na.moduleIdx, na.rotated)
	nb.payload = t.leafPayload(nb.moduleIdx, nb.rotated)
	t.propagate(a)
	t.propagate(b)
	return true
}

// M2 inverts the combine type of every node on the path from v to the
// root, then recomputes payloads bottom-up along that same path. Valid
// whenever v is an internal node; returns false for a leaf or the header.
func (t *Tree) M2(v NodeID) bool {
	if v == t.header || t.nodes[v].kind == curve.Leaf {
		return false
	}
	for id := v; id != t.header; id = t.nodes[id].parent {
		t.nodes[id].kind = t.nodes[id].kind.Invert()
	}
	t.propagate(v)
	return true
}

// M4 toggles a scalar-tree leaf's rotation bit. Undefined (returns false)
// on a vectorized tree, where each leaf's curve already spans every
// admissible orientation.
func (t *Tree) M4(leaf NodeID) bool {
	if !t.scalar || leaf == t.header {
		return false
	}
	n := &t.nodes[leaf]
	if n.kind != curve.Leaf {
		return false
	}
	n.rotated = !n.rotated
	n.payload = t.leafPayload(n.moduleIdx, n.rotated)
	t.propagate(leaf)
	return true
}

// M3 swaps the adjacent post-order pair (i, j), where j = Next(i) and
// exactly one of i, j is a leaf. It dispatches to the leaf-then-operator or
// operator-then-leaf rotation and reports whether the move was legal; an
// illegal request leaves the tree unchanged.
func (t *Tree) M3(i, j NodeID) bool {
	if i == t.header || j == t.header || t.Next(i) != j {
		return false
	}
	iLeaf := t.nodes[i].kind == curve.Leaf
	jLeaf := t.nodes[j].kind == curve.Leaf
	switch {
	case iLeaf && !jLeaf:
		return t.m3LeafThenOperator(i, j)
	case !iLeaf && jLeaf:
		return t.m3OperatorThenLeaf(i, j)
	default:
		return false
	}
}

// m3LeafThenOperator handles i = leaf v, j = operator p, where v == p.right.
// Per §4.1, p need not be v's immediate parent's right slot directly under
// its own parent: the rule is that p is the right child of *some* ancestor
// ca, reached by climbing parent links from p while each step stays on the
// left (ca's direct case, "case b", is the special case where that climb is
// zero steps, i.e. p itself is g.right). Beyond that shape:
//
//   - the climb must find such a ca before running off the top of the tree;
//   - the post-swap operator-count-before(i+2) must stay below half of i+2
//     (§4.1, §8 property 7), preserving the normalized-expression balance.
//
// The rotation: v takes p's old slot under p's old parent; p moves down to
// become ca's new left child, combining ca's old left child with its own
// old left child. Grounded on the original source's swap_leaf_operator
// ancestor walk (case a: multi-level, case b: direct siblings).
func (t *Tree) m3LeafThenOperator(v, p NodeID) bool {
	if t.nodes[p].right != v {
		return false
	}
	pOldParent := t.nodes[p].parent
	if pOldParent == t.header {
		return false
	}

	pre := p
	ca := pOldParent
	for ca != t.header && pre == t.nodes[ca].left {
		pre = ca
		ca = t.nodes[ca].parent
	}
	if ca == t.header {
		return false
	}

	pos := t.postorderPosition(v)
	before := t.operatorCountBefore(pos)
	if !(2*(before+1) < pos+2) {
		return false
	}

	sib := t.nodes[ca].left
	oldPLeft := t.nodes[p].left

	if t.nodes[pOldParent].left == p {
		t.nodes[pOldParent].left = v
	} else {
		t.nodes[pOldParent].right = v
	}
	t.nodes[v].parent = pOldParent

	t.nodes[p].right = oldPLeft
	t.nodes[p].left = sib
	t.nodes[oldPLeft].parent = p
	t.nodes[sib].parent = p

	t.nodes[ca].left = p
	t.nodes[p].parent = ca

	t.propagate(pOldParent)
	t.propagate(p)
	return true
}

// m3OperatorThenLeaf handles i = operator q, j = leaf w, where q is the left
// child of its own parent g (guaranteed by Next(q) == w, since a right-child
// operator's post-order successor is always its own parent, never a leaf).
// w's immediate parent p2 may be g itself ("case b", direct siblings) or a
// deeper descendant reached by a left-only chain down from g's right child
// ("case a", mirroring the ancestor walk in m3LeafThenOperator); w is then
// necessarily p2's left child. Always valid once that shape holds — no
// extra balance precondition, unlike the leaf-then-operator direction.
// Grounded on the original source's swap_operator_leaf.
func (t *Tree) m3OperatorThenLeaf(q, w NodeID) bool {
	g := t.nodes[q].parent
	if g == t.header || t.nodes[g].left != q {
		return false
	}
	p2 := t.nodes[w].parent
	if p2 != g && t.nodes[p2].left != w {
		return false
	}

	a := t.nodes[q].left
	b := t.nodes[q].right

	t.nodes[g].left = a
	t.nodes[a].parent = g

	t.nodes[q].left = b
	t.nodes[q].right = w
	t.nodes[w].parent = q

	if p2 != g {
		t.nodes[p2].left = q
	} else {
		t.nodes[p2].right = q
	}
	t.nodes[q].parent = p2

	t.propagate(q)
	return true
}
