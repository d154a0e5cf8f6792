package slicing

import (
	"math/rand"

	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/module"
)

// Token is one symbol of a Polish-expression token stream: either a leaf
// (an index into the module slice) or an operator (H or V).
type Token struct {
	Operator bool
	Op       curve.Combine
	Leaf     int
}

// LeafToken builds an operand token for module index i.
func LeafToken(i int) Token { return Token{Leaf: i} }

// OpToken builds an operator token of the given combine type.
func OpToken(op curve.Combine) Token { return Token{Operator: true, Op: op} }

// NewScalarFromPolish folds a Polish-expression token stream into a scalar
// slicing tree (§4.1). The fold does not itself check or enforce
// normalization: a non-normalized token stream produces a non-normalized
// tree, matching the token stream's own structure. A malformed stream (bad
// leaf index, too few operands, leftover subtrees) returns an error.
func NewScalarFromPolish(modules []module.Module, tokens []Token) (*Tree, error) {
	return newFromPolish(modules, tokens, true)
}

// NewVectorFromPolish is NewScalarFromPolish for the vectorized variant.
func NewVectorFromPolish(modules []module.Module, tokens []Token) (*Tree, error) {
	return newFromPolish(modules, tokens, false)
}

func newFromPolish(modules []module.Module, tokens []Token, scalar bool) (*Tree, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	t := newTree(modules, scalar)
	stack := make([]NodeID, 0, len(modules))
	for _, tok := range tokens {
		if !tok.Operator {
			if tok.Leaf < 0 || tok.Leaf >= len(modules) {
				return nil, ErrLeafIndexOutOfRange
			}
			stack = append(stack, t.newLeaf(tok.Leaf, false))
			continue
		}
		if len(stack) < 2 {
			return nil, ErrTooFewOperands
		}
		upper := stack[len(stack)-1]
		lower := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, t.newInternal(tok.Op, lower, upper))
	}
	if len(stack) != 1 {
		return nil, ErrTrailingOperands
	}
	t.attachRoot(stack[0])
	return t, nil
}

// ToPolish serializes t back into a Polish-expression token stream by a
// post-order walk: each leaf emits its module index, each internal node
// emits its combine type once both children have been emitted (§8 property
// 9 — constructing from this stream with NewScalarFromPolish/
// NewVectorFromPolish reproduces t's structure and payload). An empty tree
// serializes to nil.
func (t *Tree) ToPolish() []Token {
	root := t.Root()
	if root == Nil {
		return nil
	}
	out := make([]Token, 0, 2*t.nodes[root].size-1)
	for id := t.First(); id != t.header; id = t.Next(id) {
		if t.nodes[id].kind == curve.Leaf {
			out = append(out, LeafToken(t.nodes[id].moduleIdx))
		} else {
			out = append(out, OpToken(t.nodes[id].kind))
		}
	}
	return out
}

func (t *Tree) attachRoot(root NodeID) {
	t.nodes[t.header].left = root
	t.nodes[root].parent = t.header
}

// NewScalarRandom builds a uniformly-random normalized scalar slicing tree
// over modules, per §4.1: n leaves in a random permutation, then n-1
// operator nodes attached one at a time by picking a random pool position k
// as the left child and the pool's last entry as the right child, choosing
// the combine type as the right child's inverted type when it is internal
// (preserving normalization) or a uniformly random H/V when it is a leaf.
func NewScalarRandom(modules []module.Module, rng *rand.Rand) (*Tree, error) {
	return newRandom(modules, rng, true)
}

// NewVectorRandom is NewScalarRandom for the vectorized variant.
func NewVectorRandom(modules []module.Module, rng *rand.Rand) (*Tree, error) {
	return newRandom(modules, rng, false)
}

func newRandom(modules []module.Module, rng *rand.Rand, scalar bool) (*Tree, error) {
	n := len(modules)
	if n == 0 {
		return nil, ErrNoModules
	}
	t := newTree(modules, scalar)
	order := rng.Perm(n)
	pool := make([]NodeID, n)
	for i, idx := range order {
		pool[i] = t.newLeaf(idx, false)
	}
	for len(pool) > 1 {
		last := len(pool) - 1
		k := rng.Intn(last)
		leftChild := pool[k]
		rightChild := pool[last]

		var op curve.Combine
		if t.nodes[rightChild].kind != curve.Leaf {
			op = t.nodes[rightChild].kind.Invert()
		} else if rng.Intn(2) == 0 {
			op = curve.H
		} else {
			op = curve.V
		}

		id := t.newInternal(op, leftChild, rightChild)
		next := make([]NodeID, 0, len(pool)-1)
		for i, nid := range pool {
			if i == k || i == last {
				continue
			}
			next = append(next, nid)
		}
		pool = append(next, id)
	}
	t.attachRoot(pool[0])
	return t, nil
}
