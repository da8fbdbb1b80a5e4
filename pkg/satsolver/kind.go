package satsolver

// Kind tags a Solve call with the role it plays in the engine, purely for
// statistics: the solver itself treats every query identically.
type Kind string

const (
	// KindMain queries the main transition solver: does a T-transition
	// from some predecessor reach the frontier state while respecting
	// the active frame?
	KindMain Kind = "main"
	// KindInvariant tests inductive containment between consecutive
	// frames (F[i] subset of F[i+1]) to detect the propagation fixed
	// point.
	KindInvariant Kind = "invariant"
	// KindStart queries the initial-state solver, both to test
	// intersection with the initial states and to seed forward search.
	KindStart Kind = "start"
	// KindDead queries the dead-state solver to determine whether a
	// frontier state has any T-consistent successor/predecessor at all.
	KindDead Kind = "dead"
	// KindPartial extracts a partial (ternary-simulation-reduced)
	// predecessor/successor state from a satisfying model.
	KindPartial Kind = "partial"
	// KindMUC is used during recursive-halving unsat-core minimisation.
	KindMUC Kind = "muc"
	// KindPropagate queries the propagation solver when pushing a
	// clause from F[i] towards F[i+1].
	KindPropagate Kind = "propagate"
)
