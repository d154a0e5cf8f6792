// Package floorsa implements a VLSI macro-cell floorplanner driven by
// simulated annealing over two combinatorial representations.
//
// Two representations are explored, each paired with its own SA driver:
//
//   - Normalized Polish expressions (slicing trees), in scalar and
//     shape-curve (vectorized) flavors, package slicing.
//   - Sequence-pairs, with a DAG-longest-path evaluator and an LCS
//     evaluator, package seqpair.
//
// Supporting packages: module (the module/net data model), curve (shape
// curves and their H/V composition), layout (placement storage and
// wirelength queries), sa (the generic SA driver), verify (overlap
// detection), and yal (the YAL input-format parser). cmd/floorsa is the
// command-line front end.
//
// The optimizer is offline, single-shot, and single-threaded: see
// SPEC_FULL.md for the full component breakdown.
package floorsa
