// Package transition describes the contract the circuit builder
// (out of core scope, spec §1) must satisfy for the CAR engine to run
// against it: primed/unprimed variable mappings, initial-state
// constraints, transition CNF, and the bad-state literal.
package transition

import "github.com/opencar/car/pkg/litsat"

// System is the transition-system adapter of spec §4.4/§6. The engine
// never constructs one itself; it is handed a System built by an external
// collaborator (a circuit parser, a test fixture, or circuitfile.Load).
type System interface {
	// NumInputs returns I, the number of input variables [1..I].
	NumInputs() int
	// NumLatches returns L, the number of latch variables [I+1..I+L].
	NumLatches() int
	// NumAux returns the number of auxiliary variables beyond inputs
	// and latches (spec §3).
	NumAux() int
	// InitCube returns the initial-state cube over latches.
	InitCube() litsat.Cube
	// BadLit returns the bad-state literal.
	BadLit() litsat.Lit
	// TransitionClauses returns the CNF clauses of T, the transition
	// relation.
	TransitionClauses() []litsat.Clause
	// Prime maps an unprimed latch literal to its primed counterpart.
	Prime(l litsat.Lit) litsat.Lit
	// MaxVar returns the highest variable index used anywhere in the
	// system, including primed latches. The engine allocates its own
	// auxiliary variables (frame-element activation literals) starting
	// strictly above this, so it never needs to know the system's
	// internal priming scheme to stay collision-free.
	MaxVar() litsat.Var
}
