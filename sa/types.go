package sa

import "math/rand"

// Representation is a mutable combinatorial floorplan state the driver can
// anneal over: propose a random neighborhood move, report its own cost,
// roll the most recent move back, and snapshot/restore itself (§4.3's
// "generic Representation trait" contract). TreeRepresentation and
// SeqPairRepresentation are the two concrete implementations.
type Representation interface {
	// Propose applies one random move in place and returns an undo token.
	// ok is false if no legal move could be found after a bounded number
	// of reject-and-redraw attempts (e.g. a single-module tree has no
	// M1/M2/M3 candidate); the representation is left unchanged.
	Propose(rng *rand.Rand) (undo any, ok bool)

	// Cost returns the representation's current cost.
	Cost() float64

	// Rollback undoes the most recently applied Propose. Only valid
	// immediately after the Propose call that produced undo.
	Rollback(undo any)

	// Clone returns a deep, independent copy.
	Clone() Representation

	// CopyFrom overwrites the receiver's state with src's (src must share
	// the receiver's concrete type), used to restore a snapshot in place.
	CopyFrom(src Representation)
}

// TempFormula selects which of §4.3's two temperature-bootstrap formulas
// applies to a Representation.
type TempFormula int

const (
	// FormulaTreeMeanAbsDelta is -mean(|delta|) / ln(p_init), for tree
	// variants.
	FormulaTreeMeanAbsDelta TempFormula = iota
	// FormulaSeqPairStdDev is stddev(costs) / ln(1/p_init), for the
	// sequence-pair variant.
	FormulaSeqPairStdDev
)

// Options configures a Run (§4.3's driver parameters). The zero value is
// not meaningful; use DefaultTreeOptions or DefaultSeqPairOptions and
// override individual fields.
type Options struct {
	Formula          TempFormula
	PInit            float64 // initial acceptance probability used by the bootstrap formula
	BootstrapSamples int     // K: 100 for tree variants, 64 for sequence-pair
	RepsPerT         int     // reps_per_T: moves attempted at each temperature
	CoolingRatio     float64 // multiplies T after each temperature step, in (0,1)
	RestartRatio     float64 // restart-to-best trigger threshold
	PStop            float64 // stop when the temperature's acceptance rate falls below this
	TFloor           float64 // stop when T falls below this regardless of acceptance rate
}

// DefaultTreeOptions returns the §4.3 defaults for the scalar/vectorized
// slicing-tree variants.
func DefaultTreeOptions() Options {
	return Options{
		Formula:          FormulaTreeMeanAbsDelta,
		PInit:            0.9,
		BootstrapSamples: 100,
		RepsPerT:         400,
		CoolingRatio:     0.92,
		RestartRatio:     1.05,
		PStop:            0.02,
		TFloor:           1e-3,
	}
}

// DefaultSeqPairOptions returns the §4.3 defaults for the sequence-pair
// variant.
func DefaultSeqPairOptions() Options {
	return Options{
		Formula:          FormulaSeqPairStdDev,
		PInit:            0.9,
		BootstrapSamples: 64,
		RepsPerT:         400,
		CoolingRatio:     0.92,
		RestartRatio:     1.05,
		PStop:            0.02,
		TFloor:           1e-3,
	}
}

// Result is the outcome of a Run: the best representation found and a
// cost trace (§4.7's cost-history supplement).
type Result struct {
	Best     Representation
	BestCost float64
	History  []float64 // per-temperature-step best cost, only populated when WithHistory is passed
}

type runConfig struct {
	collectHistory bool
}

// RunOption configures an individual Run call beyond Options.
type RunOption func(*runConfig)

// WithHistory enables recording BestCost after every temperature step into
// the returned Result's History (§4.7: cost-history logging).
func WithHistory() RunOption {
	return func(c *runConfig) { c.collectHistory = true }
}

func newRunConfig(opts []RunOption) runConfig {
	var c runConfig
	for _, o := range opts {
		o(&c)
	}
	return c
}
