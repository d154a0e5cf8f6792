// Package sa implements the simulated-annealing driver (SPEC_FULL.md
// §4.3): a single engine generic over any Representation — a mutable
// floorplan state that can propose a random neighborhood move, report its
// own cost, roll a move back, and snapshot/restore itself. Two concrete
// Representations adapt the slicing-tree and sequence-pair packages to
// this contract; the driver itself knows nothing about trees or
// permutations.
//
// Temperature bootstrap, the accept/reject/rollback main loop, restart-to-
// best, and (for tree variants) the outer stability loop all live here,
// mirroring the shape of a dispatcher-over-representations local-search
// engine: one control loop, several pluggable move proposers.
package sa
