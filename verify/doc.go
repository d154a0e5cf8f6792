// Package verify checks a finished placement's one hard physical invariant:
// no two modules' rectangles overlap (§2, §8 property 5). Two evaluators
// are provided — a direct O(n^2) pairwise sweep, and an R-tree-accelerated
// query for larger instances — cross-checked against each other by a
// property test rather than trusted on their own.
package verify
