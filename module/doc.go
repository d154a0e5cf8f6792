// Package module defines the immutable per-run data model shared by every
// floorplanning representation: modules (rectangular macro-cells), their
// pins, and the net-list connecting them.
//
// Nothing in this package mutates after construction. Slicing trees,
// sequence-pairs, and the SA driver all hold a read-only *Module slice for
// the lifetime of a run; only the orientation bit and the chosen shape
// (tracked by the representation, not by Module) change during search.
package module
