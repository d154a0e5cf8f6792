package sa

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// bootstrap implements §4.3's temperature-bootstrap step: K independent
// single-move trials starting from the same initial state (never chained),
// recording either |cost delta| (tree formula) or the trial's absolute
// cost (sequence-pair formula). The lowest-cost trial seen — which may
// simply be the initial state, if no trial improved on it — is adopted as
// both the initial "best" snapshot and the new current state.
func bootstrap(rep Representation, rng *rand.Rand, opts Options) (t0 float64, best Representation, bestCost float64) {
	base := rep.Clone()
	bestCost = rep.Cost()
	best = rep.Clone()

	deltas := make([]float64, 0, opts.BootstrapSamples)
	costs := make([]float64, 0, opts.BootstrapSamples)
	for i := 0; i < opts.BootstrapSamples; i++ {
		trial := base.Clone()
		before := trial.Cost()
		if _, ok := trial.Propose(rng); !ok {
			continue
		}
		after := trial.Cost()
		deltas = append(deltas, math.Abs(after-before))
		costs = append(costs, after)
		if after < bestCost {
			bestCost = after
			best = trial
		}
	}

	switch opts.Formula {
	case FormulaSeqPairStdDev:
		sd := stat.StdDev(costs, nil)
		t0 = sd / math.Log(1/opts.PInit)
	default:
		meanAbs := stat.Mean(deltas, nil)
		t0 = -meanAbs / math.Log(opts.PInit)
	}
	if t0 <= 0 || math.IsNaN(t0) {
		// Every trial was rejected or produced a zero delta (e.g. a
		// single-module instance): fall back to a small positive floor so
		// the main loop still runs instead of dividing by zero downstream.
		t0 = opts.TFloor
	}

	rep.CopyFrom(best)
	return t0, best, bestCost
}

// Run executes one full anneal of rep per §4.3: bootstrap the starting
// temperature, then repeat the reps_per_T/cool/restart-to-best loop until
// the acceptance rate drops below p_stop or T drops below t_floor. rep is
// mutated in place and ends the call holding the best state found.
func Run(rep Representation, opts Options, rng *rand.Rand, runOpts ...RunOption) *Result {
	cfg := newRunConfig(runOpts)

	t0, bestRep, bestCost := bootstrap(rep, rng, opts)
	t := t0
	currentCost := rep.Cost()

	var history []float64
	for {
		var (
			accepts  int
			sumCosts float64
		)
		for step := 0; step < opts.RepsPerT; step++ {
			undo, ok := rep.Propose(rng)
			if !ok {
				sumCosts += currentCost
				continue
			}
			newCost := rep.Cost()
			accept := newCost < currentCost || rng.Float64() < math.Exp((currentCost-newCost)/t)
			if accept {
				accepts++
				currentCost = newCost
				if newCost < bestCost {
					bestCost = newCost
					bestRep = rep.Clone()
				}
			} else {
				rep.Rollback(undo)
			}
			sumCosts += currentCost
		}

		if cfg.collectHistory {
			history = append(history, bestCost)
		}

		if bestCost > 0 && opts.RestartRatio*bestCost < sumCosts/float64(opts.RepsPerT) {
			rep.CopyFrom(bestRep)
			currentCost = bestCost
		}

		t *= opts.CoolingRatio
		acceptRate := float64(accepts) / float64(opts.RepsPerT)
		if acceptRate < opts.PStop || t < opts.TFloor {
			break
		}
	}

	rep.CopyFrom(bestRep)
	return &Result{Best: bestRep, BestCost: bestCost, History: history}
}

// RunUntilStable implements §4.3's outer loop for tree variants: rerun Run
// from a fresh representation (produced by newRep) until stable_rounds
// consecutive outer iterations report the identical best cost. Returns the
// best Result seen across every round.
func RunUntilStable(newRep func() Representation, opts Options, rng *rand.Rand, stableRounds int, runOpts ...RunOption) *Result {
	var (
		overall  *Result
		lastCost float64
		streak   int
	)
	for streak < stableRounds {
		res := Run(newRep(), opts, rng, runOpts...)
		if streak > 0 && res.BestCost == lastCost {
			streak++
		} else {
			streak = 1
		}
		lastCost = res.BestCost
		if overall == nil || res.BestCost < overall.BestCost {
			overall = res
		}
	}
	return overall
}
