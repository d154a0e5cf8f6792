package seqpair

// Operator enumerates the four reversible sequence-pair moves (§4.2).
type Operator int

const (
	OpRotate Operator = iota
	OpSwap
	OpReverse
	OpRotateSeq
)

func (op Operator) String() string {
	switch op {
	case OpRotate:
		return "rotate"
	case OpSwap:
		return "swap"
	case OpReverse:
		return "reverse"
	case OpRotateSeq:
		return "rotate-seq"
	default:
		return "unknown"
	}
}

// Move records enough of an applied operator's parameters to roll it back
// with a single follow-up call — a memoized one-shot undo, cheaper than a
// full state snapshot (§4.3's move-proposal contract for sequence pairs).
type Move struct {
	Op   Operator
	Axis Axis
	I, J int // swap(i,j); reverse/rotate-seq range [i,j)
	K    int // rotate(k)
}

// Rotate swaps widths[k] and heights[k] and toggles module k's orientation
// bit. Its own inverse: applying Rotate(k) again undoes it.
func (s *State) Rotate(k int) Move {
	s.Widths[k], s.Heights[k] = s.Heights[k], s.Widths[k]
	s.Orient[k] = !s.Orient[k]
	return Move{Op: OpRotate, K: k}
}

// Swap exchanges positions i and j in the permutation(s) selected by axis.
// Its own inverse.
func (s *State) Swap(axis Axis, i, j int) Move {
	s.applyToAxis(axis, func(perm []int) { perm[i], perm[j] = perm[j], perm[i] })
	return Move{Op: OpSwap, Axis: axis, I: i, J: j}
}

// Reverse reverses the segment [i, j) in the permutation(s) selected by
// axis. Its own inverse.
func (s *State) Reverse(axis Axis, i, j int) Move {
	s.applyToAxis(axis, func(perm []int) { reverseRange(perm[i:j]) })
	return Move{Op: OpReverse, Axis: axis, I: i, J: j}
}

// RotateSeq rotates the segment [i, j) one step left in the permutation(s)
// selected by axis. Its inverse is rotating that same segment left by
// j-i-1 steps (equivalently, one step right).
func (s *State) RotateSeq(axis Axis, i, j int) Move {
	s.applyToAxis(axis, func(perm []int) { rotateLeft(perm[i:j], 1) })
	return Move{Op: OpRotateSeq, Axis: axis, I: i, J: j}
}

// Rollback undoes m, the most recently applied Move. It is invalidated by
// any intervening operator application, shuffle, or reconstruction.
func (s *State) Rollback(m Move) {
	switch m.Op {
	case OpRotate:
		s.Rotate(m.K)
	case OpSwap:
		s.Swap(m.Axis, m.I, m.J)
	case OpReverse:
		s.Reverse(m.Axis, m.I, m.J)
	case OpRotateSeq:
		n := m.J - m.I
		if n > 1 {
			s.applyToAxis(m.Axis, func(perm []int) { rotateLeft(perm[m.I:m.J], n-1) })
		}
	}
}

func (s *State) applyToAxis(axis Axis, f func(perm []int)) {
	switch axis {
	case AxisX:
		f(s.GammaPlus)
	case AxisY:
		f(s.GammaMinus)
	case AxisXY:
		f(s.GammaPlus)
		f(s.GammaMinus)
	}
}

func reverseRange(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// rotateLeft rotates s left by k positions (k is taken mod len(s)).
func rotateLeft(s []int, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	tmp := append([]int(nil), s[:k]...)
	copy(s, s[k:])
	copy(s[n-k:], tmp)
}
