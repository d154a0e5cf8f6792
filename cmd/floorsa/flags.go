package main

import (
	"errors"
	"flag"
	"fmt"
)

// config holds every CLI-derived setting (§6). Long and short spellings
// of each flag are registered against the same variable, following the
// teacher's register-then-apply functional-options idiom translated to
// flag.FlagSet.
type config struct {
	input   string
	output  string
	method  string
	rounds  int
	optPath string
	verbose int
	alpha   float64
	seed    int64
	help    bool
}

var errUnknownMethod = errors.New("floorsa: unrecognized --method value")

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("floorsa", flag.ContinueOnError)
	cfg := &config{}

	register := func(val any, long, short, def, usage string) {
		switch v := val.(type) {
		case *string:
			fs.StringVar(v, long, def, usage)
			fs.StringVar(v, short, def, usage)
		}
	}
	register(&cfg.input, "input", "i", "", "input YAL file path (default: stdin)")
	register(&cfg.output, "output", "o", "", "output file path (default: stdout)")
	register(&cfg.method, "method", "m", "polish-curve", "representation: polish|polish-curve|lcs|dag")

	fs.IntVar(&cfg.rounds, "rounds", 10, "stability rounds for tree methods")
	fs.IntVar(&cfg.rounds, "r", 10, "stability rounds for tree methods")
	register(&cfg.optPath, "option", "O", "", "path to a 5-line numeric SA options file")
	fs.IntVar(&cfg.verbose, "verbose", 0, "verbosity level (0-2)")
	fs.IntVar(&cfg.verbose, "v", 0, "verbosity level (0-2)")
	fs.Float64Var(&cfg.alpha, "alpha", 0.5, "area/wirelength weight for the sequence-pair cost (alpha in [0,1])")
	fs.Int64Var(&cfg.seed, "seed", 1, "deterministic RNG seed")
	fs.BoolVar(&cfg.help, "help", false, "show usage")
	fs.BoolVar(&cfg.help, "h", false, "show usage")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.help {
		return cfg, nil
	}

	switch cfg.method {
	case "polish", "polish-curve", "lcs", "dag":
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMethod, cfg.method)
	}
	if cfg.rounds <= 0 {
		cfg.rounds = 10
	}
	return cfg, nil
}

func usage() string {
	return `floorsa — VLSI macro-cell floorplanning via simulated annealing

Usage: floorsa [options]

  --input, -i path       input YAL file (default: stdin)
  --output, -o path      output file (default: stdout)
  --method, -m name      polish | polish-curve | lcs | dag (default: polish-curve)
  --rounds, -r int       stability rounds for tree methods (default: 10)
  --option, -O path      5-line numeric SA options file
  --verbose, -v int      verbosity level 0-2 (default: 0)
  --alpha float          area/wirelength weight for sequence-pair cost (default: 0.5)
  --seed int             deterministic RNG seed (default: 1)
  --help, -h             show this message
`
}
