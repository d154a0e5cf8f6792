package seqpair

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/floorsa/floorsa/module"
)

// Sentinel errors for state construction and validation.
var (
	ErrEmptyModules  = errors.New("seqpair: module set is empty")
	ErrLengthMismatch = errors.New("seqpair: gamma_plus, gamma_minus, widths and heights must share one length")
	ErrNotPermutation = errors.New("seqpair: gamma_plus or gamma_minus is not a permutation of 0..n-1")
)

// Axis selects which permutation(s) an operator acts on.
type Axis int

const (
	AxisX  Axis = iota // γ₊ only
	AxisY              // γ₋ only
	AxisXY             // both
)

// State is the mutable sequence-pair representation: two permutations of
// module indices plus each module's current (possibly rotated) footprint.
type State struct {
	GammaPlus  []int
	GammaMinus []int
	Widths     []int32
	Heights    []int32
	Orient     []bool // true if module k is currently rotated from its base orientation
}

// New builds the initial state: both permutations as the identity order,
// widths/heights taken directly from modules, no module rotated.
func New(modules []module.Module) (*State, error) {
	n := len(modules)
	if n == 0 {
		return nil, ErrEmptyModules
	}
	s := &State{
		GammaPlus:  make([]int, n),
		GammaMinus: make([]int, n),
		Widths:     make([]int32, n),
		Heights:    make([]int32, n),
		Orient:     make([]bool, n),
	}
	for i, m := range modules {
		s.GammaPlus[i] = i
		s.GammaMinus[i] = i
		s.Widths[i] = m.Width
		s.Heights[i] = m.Height
	}
	return s, nil
}

// Len returns the number of modules in the state.
func (s *State) Len() int { return len(s.GammaPlus) }

// Validate checks the two permutations have matching length with the
// footprint slices, and that each is genuinely a permutation of 0..n-1 (no
// duplicate or missing index) — checked with a bitset rather than a map to
// avoid a hash allocation per validation call.
func (s *State) Validate() error {
	n := len(s.GammaPlus)
	if len(s.GammaMinus) != n || len(s.Widths) != n || len(s.Heights) != n || len(s.Orient) != n {
		return ErrLengthMismatch
	}
	for _, perm := range [][]int{s.GammaPlus, s.GammaMinus} {
		seen := bitset.New(uint(n))
		for _, v := range perm {
			if v < 0 || v >= n || seen.Test(uint(v)) {
				return ErrNotPermutation
			}
			seen.Set(uint(v))
		}
	}
	return nil
}

// Clone returns a deep copy of s, used for best-so-far snapshotting.
func (s *State) Clone() *State {
	return &State{
		GammaPlus:  append([]int(nil), s.GammaPlus...),
		GammaMinus: append([]int(nil), s.GammaMinus...),
		Widths:     append([]int32(nil), s.Widths...),
		Heights:    append([]int32(nil), s.Heights...),
		Orient:     append([]bool(nil), s.Orient...),
	}
}

// CopyFrom overwrites s in place with src's contents (same length), reusing
// s's backing arrays — used when restoring the best snapshot without a
// fresh allocation.
func (s *State) CopyFrom(src *State) {
	copy(s.GammaPlus, src.GammaPlus)
	copy(s.GammaMinus, src.GammaMinus)
	copy(s.Widths, src.Widths)
	copy(s.Heights, src.Heights)
	copy(s.Orient, src.Orient)
}
