// Package layout stores a finished placement — per-module (x, y, width,
// height) — and answers bounding-box and net-wirelength queries over it
// (SPEC_FULL.md §3, §4.4). It is produced by slicing-tree floorplan
// extraction or by a sequence-pair evaluator, and consumed by cost
// functions, the verify package, and CLI output formatting.
package layout
