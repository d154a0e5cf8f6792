package seqpair

import "sort"

// orderedMap is a sorted-slice stand-in for the balanced ordered map the
// LCS evaluator wants (§4.2, §9 Open Question O1: Go's standard library has
// no balanced tree map). Insert and erase are O(n) here rather than
// O(log n) — acceptable at the module counts this exercise targets; see
// DESIGN.md for the trade-off.
type orderedMap struct {
	entries []pqEntry
}

type pqEntry struct {
	key   int
	value int64
}

func newOrderedMap() *orderedMap {
	return &orderedMap{entries: []pqEntry{{key: -1, value: 0}}}
}

// predecessorValue returns the value of the largest-key entry with key < p.
func (m *orderedMap) predecessorValue(p int) int64 {
	idx := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= p })
	return m.entries[idx-1].value
}

// insertAndPurge inserts (or overwrites) (p, value), then erases every
// subsequent entry (strictly greater key) whose value is dominated
// (<= value) by the new entry.
func (m *orderedMap) insertAndPurge(p int, value int64) {
	idx := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key >= p })
	if idx < len(m.entries) && m.entries[idx].key == p {
		m.entries[idx].value = value
	} else {
		m.entries = append(m.entries, pqEntry{})
		copy(m.entries[idx+1:], m.entries[idx:])
		m.entries[idx] = pqEntry{key: p, value: value}
	}
	j := idx + 1
	for j < len(m.entries) && m.entries[j].value <= value {
		j++
	}
	m.entries = append(m.entries[:idx+1], m.entries[j:]...)
}

func (m *orderedMap) maxValue() int64 {
	var best int64
	for _, e := range m.entries {
		if e.value > best {
			best = e.value
		}
	}
	return best
}

// EvaluateLCS computes the same coordinates and bounding box as
// EvaluateDAG via the dominated-suffix-purge technique (§4.2): one pass
// over γ₊ for x, one pass over the reverse of γ₊ for y, each against
// positions in γ₋.
func EvaluateLCS(gammaPlus, gammaMinus []int, widths, heights []int32) (xs, ys []int32, w, h int32) {
	n := len(gammaPlus)
	posMinus := make([]int, n)
	for idx, m := range gammaMinus {
		posMinus[m] = idx
	}

	xCoords, xDim := evaluatePass(gammaPlus, posMinus, widths)

	reversed := make([]int, n)
	for i, m := range gammaPlus {
		reversed[n-1-i] = m
	}
	yCoords, yDim := evaluatePass(reversed, posMinus, heights)

	xs = make([]int32, n)
	ys = make([]int32, n)
	for m := 0; m < n; m++ {
		xs[m] = int32(xCoords[m])
		ys[m] = int32(yCoords[m])
	}
	return xs, ys, int32(xDim), int32(yDim)
}

func evaluatePass(order []int, posMinus []int, length []int32) (coords []int64, dim int64) {
	om := newOrderedMap()
	coords = make([]int64, len(order))
	for _, b := range order {
		p := posMinus[b]
		prevVal := om.predecessorValue(p)
		coords[b] = prevVal
		om.insertAndPurge(p, prevVal+int64(length[b]))
	}
	return coords, om.maxValue()
}
