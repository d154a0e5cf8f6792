// Command floorsa reads a YAL macro-cell description, anneals a placement
// with one of four representations, verifies it, and prints per-module
// (x, y, w, h) lines (§6).
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/floorsa/floorsa/layout"
	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/verify"
	"github.com/floorsa/floorsa/yal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if cfg.help {
		fmt.Fprint(stdout, usage())
		return 0
	}

	in, closeIn, err := openInput(cfg.input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeIn()

	modules, nets, err := yal.Parse(in)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := module.Validate(modules, nets); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	l, cost, err := runFloorplan(cfg, modules, nets)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	validatePlacement(l, nets, cfg.alpha, cost, cfg.method, stderr)

	out, closeOut, err := openOutput(cfg.output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeOut()

	for i := 0; i < l.Len(); i++ {
		fmt.Fprintf(out, "%d %d %d %d\n", l.X[i], l.Y[i], l.Width[i], l.Height[i])
	}
	return 0
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("floorsa: opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("floorsa: opening output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// validatePlacement implements §7's post-optimization validation pass: it
// never changes the produced output, only warns on stderr.
func validatePlacement(l layout.Layout, nets []module.Net, alpha, reportedCost float64, method string, stderr io.Writer) {
	area := float64(l.Area())
	wl := layout.Wirelength(l, nets)
	recomputed := alpha*area + (1-alpha)*wl
	if method == "polish" || method == "polish-curve" {
		recomputed = area
	}
	if recomputed != 0 {
		if rel := math.Abs(recomputed/reportedCost - 1); rel >= 1e-5 {
			fmt.Fprintf(stderr, "floorsa: warning: recomputed cost %.6f differs from reported cost %.6f (relative error %.2e)\n", recomputed, reportedCost, rel)
		}
	}
	rects := verify.RectsFromLayout(l)
	if ok, i, j := verify.Overlaps(rects); ok {
		fmt.Fprintf(stderr, "floorsa: warning: modules %d and %d overlap in the produced placement\n", i, j)
	}
}
