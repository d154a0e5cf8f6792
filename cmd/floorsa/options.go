package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/floorsa/floorsa/sa"
)

// readOptionsFile parses the 5-line numeric SA options file (§6): p_init,
// reps_per_T, cooling_ratio, restart_ratio, p_stop, in that fixed order,
// overlaid onto base. Configuration errors leave base untouched (§7's
// strong exception guarantee).
func readOptionsFile(path string, base sa.Options) (sa.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return sa.Options{}, fmt.Errorf("floorsa: opening options file: %w", err)
	}
	defer f.Close()

	var values []float64
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return sa.Options{}, fmt.Errorf("floorsa: options file: %w", err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return sa.Options{}, fmt.Errorf("floorsa: reading options file: %w", err)
	}
	if len(values) != 5 {
		return sa.Options{}, fmt.Errorf("floorsa: options file must have exactly 5 numeric tokens, got %d", len(values))
	}

	pInit, repsPerT, cooling, restart, pStop := values[0], values[1], values[2], values[3], values[4]
	if !(pInit > 0 && pInit < 1) {
		return sa.Options{}, fmt.Errorf("floorsa: p_init must be in (0,1), got %v", pInit)
	}
	if repsPerT < 1 {
		return sa.Options{}, fmt.Errorf("floorsa: reps_per_T must be >= 1, got %v", repsPerT)
	}
	if !(cooling > 0 && cooling < 1) {
		return sa.Options{}, fmt.Errorf("floorsa: cooling_ratio must be in (0,1), got %v", cooling)
	}
	if restart <= 1 {
		return sa.Options{}, fmt.Errorf("floorsa: restart_ratio must be > 1, got %v", restart)
	}
	if !(pStop > 0 && pStop <= 1) {
		return sa.Options{}, fmt.Errorf("floorsa: p_stop must be in (0,1], got %v", pStop)
	}

	out := base
	out.PInit = pInit
	out.RepsPerT = int(repsPerT)
	out.CoolingRatio = cooling
	out.RestartRatio = restart
	out.PStop = pStop
	return out, nil
}
