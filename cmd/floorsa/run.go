package main

import (
	"fmt"
	"math/rand"

	"github.com/floorsa/floorsa/curve"
	"github.com/floorsa/floorsa/layout"
	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/sa"
	"github.com/floorsa/floorsa/seqpair"
	"github.com/floorsa/floorsa/slicing"
)

// runFloorplan dispatches on cfg.method (§4.5, §6) and returns the best
// layout found and its reported cost (for the post-optimization validation
// pass).
func runFloorplan(cfg *config, modules []module.Module, nets []module.Net) (layout.Layout, float64, error) {
	switch cfg.method {
	case "polish":
		return runTree(cfg, modules, nets, true)
	case "polish-curve":
		return runTree(cfg, modules, nets, false)
	case "lcs":
		return runSeqPair(cfg, modules, nets, seqpair.EvaluateLCS)
	case "dag":
		return runSeqPair(cfg, modules, nets, seqpair.EvaluateDAG)
	default:
		return layout.Layout{}, 0, fmt.Errorf("%w: %q", errUnknownMethod, cfg.method)
	}
}

func runTree(cfg *config, modules []module.Module, nets []module.Net, scalar bool) (layout.Layout, float64, error) {
	opts := sa.DefaultTreeOptions()
	if cfg.optPath != "" {
		var err error
		opts, err = readOptionsFile(cfg.optPath, opts)
		if err != nil {
			return layout.Layout{}, 0, err
		}
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	newRep := func() sa.Representation {
		var tree *slicing.Tree
		var err error
		if scalar {
			tree, err = slicing.NewScalarRandom(modules, rng)
		} else {
			tree, err = slicing.NewVectorRandom(modules, rng)
		}
		if err != nil {
			panic(err) // construction inputs were already validated by module.Validate
		}
		return sa.NewTreeRepresentation(tree)
	}

	res := sa.RunUntilStable(newRep, opts, rng, cfg.rounds)
	best := res.Best.(*sa.TreeRepresentation).Tree

	if scalar {
		l, err := slicing.ExtractScalar(best)
		return l, res.BestCost, err
	}
	root := best.Payload(best.Root()).(slicing.VectorPayload)
	minPoint := curve.MinAreaPoint(root.Curve)
	l, err := slicing.ExtractVector(best, minPoint)
	return l, res.BestCost, err
}

func runSeqPair(cfg *config, modules []module.Module, nets []module.Net, evaluator sa.Evaluator) (layout.Layout, float64, error) {
	opts := sa.DefaultSeqPairOptions()
	if cfg.optPath != "" {
		var err error
		opts, err = readOptionsFile(cfg.optPath, opts)
		if err != nil {
			return layout.Layout{}, 0, err
		}
	}

	state, err := seqpair.New(modules)
	if err != nil {
		return layout.Layout{}, 0, err
	}
	rep := sa.NewSeqPairRepresentation(state, nets, cfg.alpha, evaluator, nil)

	rng := rand.New(rand.NewSource(cfg.seed))
	res := sa.Run(rep, opts, rng)
	best := res.Best.(*sa.SeqPairRepresentation)

	xs, ys, _, _ := evaluator(best.State.GammaPlus, best.State.GammaMinus, best.State.Widths, best.State.Heights)
	l := layout.New(best.State.Len())
	for i := 0; i < best.State.Len(); i++ {
		l.Set(i, xs[i], ys[i], best.State.Widths[i], best.State.Heights[i])
	}
	return l, res.BestCost, nil
}
