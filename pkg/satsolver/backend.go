package satsolver

import "github.com/go-air/gini/z"

// backend is the capability set the engine needs from an incremental SAT
// solver: variable allocation, clause addition, assumption-based solving,
// model read-out and unsat-core extraction. Per the design note on
// replacing inheritance from a concrete solver class, any back-end
// implementing this interface can be plugged in at construction time; the
// rest of this package and the engine never depend on a concrete solver
// type. Only a go-air/gini-backed implementation is provided here (see
// giniBackend in gini.go) — see DESIGN.md for why the PicoSAT-class
// alternative mentioned in the spec was not also wired.
type backend interface {
	// Lit allocates a fresh solver variable and returns its positive
	// literal.
	Lit() z.Lit
	// Add appends a literal to the clause currently being built; a
	// call with z.LitNull terminates and commits the clause.
	Add(m z.Lit)
	// Assume replaces the assumption vector for the next Solve call.
	Assume(ms ...z.Lit)
	// Solve runs the solver under the current assumptions, returning
	// 1 (satisfiable), -1 (unsatisfiable) or 0 (unknown).
	Solve() int
	// Value reports the truth value assigned to m by the most recent
	// satisfiable Solve.
	Value(m z.Lit) bool
	// Why returns the subset of the current assumptions that were
	// sufficient to derive UNSAT on the most recent unsatisfiable
	// Solve, in the polarity they were assumed.
	Why(dst []z.Lit) []z.Lit
}
