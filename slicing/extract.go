package slicing

import (
	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/layout"
)

// ExtractScalar walks a scalar tree and returns the concrete placement it
// encodes: each H node places its right child beside its left child's
// width, each V node places its right child above its left child's height.
func ExtractScalar(t *Tree) (layout.Layout, error) {
	if !t.scalar {
		return layout.Layout{}, ErrNotScalarTree
	}
	out := layout.New(len(t.modules))
	root := t.Root()
	if root == Nil {
		return out, nil
	}
	extractScalarRec(t, root, 0, 0, out)
	return out, nil
}

func extractScalarRec(t *Tree, id NodeID, x, y int32, out layout.Layout) {
	n := &t.nodes[id]
	if n.kind == curve.Leaf {
		p := n.payload.(ScalarPayload)
		out.Set(n.moduleIdx, x, y, p.W, p.H)
		return
	}
	leftPayload := t.nodes[n.left].payload.(ScalarPayload)
	extractScalarRec(t, n.left, x, y, out)
	if n.kind == curve.H {
		extractScalarRec(t, n.right, x+leftPayload.W, y, out)
	} else {
		extractScalarRec(t, n.right, x, y+leftPayload.H, out)
	}
}

// ExtractVector walks a vectorized tree and returns the placement realizing
// the given root shape: at each internal node it uses curve.FindSplit to
// recover which child shapes combine to the parent's chosen point, then
// recurses with those child points.
func ExtractVector(t *Tree, target curve.Point) (layout.Layout, error) {
	if t.scalar {
		return layout.Layout{}, ErrNotVectorTree
	}
	out := layout.New(len(t.modules))
	root := t.Root()
	if root == Nil {
		return out, nil
	}
	if err := extractVectorRec(t, root, 0, 0, target, out); err != nil {
		return layout.Layout{}, err
	}
	return out, nil
}

func extractVectorRec(t *Tree, id NodeID, x, y int32, target curve.Point, out layout.Layout) error {
	n := &t.nodes[id]
	if n.kind == curve.Leaf {
		out.Set(n.moduleIdx, x, y, target.W, target.H)
		return nil
	}
	leftCurve := t.nodes[n.left].payload.(VectorPayload).Curve
	rightCurve := t.nodes[n.right].payload.(VectorPayload).Curve
	lp, rp, _, _, ok := curve.FindSplit(n.kind, leftCurve, rightCurve, target)
	if !ok {
		return ErrSplitNotFound
	}
	if err := extractVectorRec(t, n.left, x, y, lp, out); err != nil {
		return err
	}
	if n.kind == curve.H {
		return extractVectorRec(t, n.right, x+lp.W, y, rp, out)
	}
	return extractVectorRec(t, n.right, x, y+lp.H, rp, out)
}
