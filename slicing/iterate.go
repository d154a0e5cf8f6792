package slicing

import "github.com/floorsa/floorsa/curve"

// First returns the leftmost leaf of t, the first node in post-order.
// Returns Header() for an empty tree.
func (t *Tree) First() NodeID {
	root := t.Root()
	if root == Nil {
		return t.header
	}
	return t.deepestLeft(root)
}

func (t *Tree) deepestLeft(id NodeID) NodeID {
	for t.nodes[id].kind != curve.Leaf {
		id = t.nodes[id].left
	}
	return id
}

// Next returns the post-order successor of id: the deepest-left descendant
// of the parent's right child when id is its parent's left child, else the
// parent itself. Next of the root (the last node in post-order) is
// Header(), the one-past-end sentinel.
func (t *Tree) Next(id NodeID) NodeID {
	p := t.nodes[id].parent
	if p == t.header {
		return t.header
	}
	if id == t.nodes[p].left {
		return t.deepestLeft(t.nodes[p].right)
	}
	return p
}

// Prev returns the post-order predecessor of id. Prev(Header()) is the
// root (post-order's last node, mirroring Next's end sentinel). For an
// internal node it is always that node's right child (post-order visits a
// subtree's root last, so the right child's whole subtree finishes
// immediately before it). For a leaf it ascends while the leaf is a left
// child, returning the first ancestor it reaches as a right child's
// sibling, or Header() if the leaf is post-order's first node.
func (t *Tree) Prev(id NodeID) NodeID {
	if id == t.header {
		root := t.Root()
		if root == Nil {
			return t.header
		}
		return root
	}
	if t.nodes[id].kind != curve.Leaf {
		return t.nodes[id].right
	}
	cur := id
	for {
		p := t.nodes[cur].parent
		if p == t.header {
			return t.header
		}
		if cur == t.nodes[p].right {
			return t.nodes[p].left
		}
		cur = p
	}
}

// Postorder materializes the full post-order node sequence. O(n); intended
// for move proposal and the M3 validity check, not hot inner loops.
func (t *Tree) Postorder() []NodeID {
	root := t.Root()
	if root == Nil {
		return nil
	}
	out := make([]NodeID, 0, t.nodes[root].size*2-1)
	for id := t.First(); id != t.header; id = t.Next(id) {
		out = append(out, id)
	}
	return out
}

func (t *Tree) postorderPosition(target NodeID) int {
	pos := 0
	for id := t.First(); id != t.header; id = t.Next(id) {
		if id == target {
			return pos
		}
		pos++
	}
	return -1
}

func (t *Tree) operatorCountBefore(pos int) int {
	c := 0
	id := t.First()
	for i := 0; i < pos; i++ {
		if t.nodes[id].kind != curve.Leaf {
			c++
		}
		id = t.Next(id)
	}
	return c
}
