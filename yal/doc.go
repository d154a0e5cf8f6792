// Package yal reads the YAL macro-cell description format (§6, §4.5): a
// textual MODULE/TYPE/DIMENSIONS/IOLIST/[NETWORK] grammar. Parse turns a
// YAL document into a placeable []module.Module (one entry per NETWORK
// instance of the PARENT module) plus the []module.Net inferred from
// instances sharing a signal name.
//
// The lexer and parser are hand-rolled recursive-descent over a flat
// token stream — no parser-generator or combinator library is used (see
// DESIGN.md): the grammar is small and entirely line/token oriented, the
// same shape as the format's own original hand-written C++ scanner.
package yal
