// Package curve implements the shape curve: the piecewise-staircase Pareto
// frontier of admissible (width, height) shapes for a slicing-tree subtree,
// and the two binary compositions (H, V) used to combine child curves into a
// parent's curve (SPEC_FULL.md §3, §4.1).
//
// A curve is strictly monotone: widths strictly increase while heights
// strictly decrease along the point sequence, and no point dominates
// another. Leaf curves come from a single module (one point if square, two
// points if freely rotatable, or the module's explicit discrete Shapes
// list — SPEC_FULL.md §4.7).
package curve
