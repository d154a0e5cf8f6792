// Package seqpair implements the sequence-pair representation (SPEC_FULL.md
// §3, §4.2): a pair of permutations (γ₊, γ₋) over module indices, each
// module's current (possibly rotated) width and height, four reversible
// operators driven by a weighted ChangeDistribution, and two independent
// coordinate evaluators — a DAG longest-path evaluator and an LCS-style
// evaluator whose ordered map is a sorted slice (O(log n) search, O(n)
// insert/erase shifting, so O(n^2) in the worst case; see DESIGN.md's Open
// Question on Go's lack of a balanced ordered map) — that must agree on
// every input.
package seqpair
