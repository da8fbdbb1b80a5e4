// Package engine implements the CAR search engine (spec §4.4): the
// orchestrator that drives the main, invariant, start, dead and propagate
// solvers against the O-sequence and the reached-state tree to decide
// whether a transition system can reach its bad states.
package engine

import (
	"github.com/opencar/car/pkg/frame"
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
	"github.com/opencar/car/pkg/state"
	"github.com/opencar/car/pkg/stats"
	"github.com/opencar/car/pkg/transition"
)

// Direction selects which end of the transition relation the search
// explores from. It is fixed for the lifetime of an Engine (spec §4.4).
type Direction int

const (
	// Forward explores successors of the initial states: F[0] is the
	// initial-state predicate, and the B-tree grows toward the bad
	// states.
	Forward Direction = iota
	// Backward explores predecessors of the bad states: F[0] is the
	// bad-state predicate, and the B-tree grows toward the initial
	// states.
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Config controls how an Engine is constructed. The zero Config runs a
// forward search with no statistics sink and every optional heuristic
// enabled.
type Config struct {
	Direction Direction
	Sink      stats.Sink
	// DisableDeadStatePruning turns off the dead_solver check before a
	// frontier state is expanded (spec §4.4 "Dead-state pruning"). Default
	// enabled.
	DisableDeadStatePruning bool
	// DisablePartialStates turns off the ternary-simulation-style
	// generalisation of a newly discovered state's latch assignment
	// (spec §9 "Partial-state extraction"). Default enabled.
	DisablePartialStates bool
}

// Engine holds the data structures spec §4.4 names, the O-sequence F and
// the reached tree B, and five long-lived solvers (main, start, dead, bad,
// propagate). The invariant solver is not held here: frameContained builds
// a fresh one for each fixed-point check.
type Engine struct {
	sys transition.System
	dir Direction
	cfg Config

	ctx *state.Context
	F   *frame.Sequence
	B   *frame.Reached

	mainSolver      *satsolver.Solver
	startSolver     *satsolver.Solver
	deadSolver      *satsolver.Solver
	badSolver       *satsolver.Solver
	propagateSolver *satsolver.Solver

	nextAuxVar litsat.Var

	// farVarIndex maps a farVar-mapped (primed) latch variable back to
	// its latch index, used to translate an unsat core's literals back
	// into canonical unprimed latch literals when generalising a
	// blocking clause (spec §4.4 step 3).
	farVarIndex map[litsat.Var]int

	// sink is kept so propagate's fixed-point check can build a fresh,
	// single-use invariant solver on demand.
	sink stats.Sink
}

// New builds an Engine over sys. It loads the transition relation into the
// main, dead and propagate solvers and the bad-state literal into the
// partial-state solver once, up front; none of these ever change for the
// lifetime of the search.
func New(sys transition.System, cfg Config) *Engine {
	sink := cfg.Sink
	if sink == nil {
		sink = stats.Noop{}
	}

	e := &Engine{
		sys:             sys,
		dir:             cfg.Direction,
		cfg:             cfg,
		ctx:             state.NewContext(sys.NumInputs(), sys.NumLatches()),
		mainSolver:      satsolver.New(sink),
		startSolver:     satsolver.New(sink),
		deadSolver:      satsolver.New(sink),
		badSolver:       satsolver.New(sink),
		propagateSolver: satsolver.New(sink),
		nextAuxVar:      sys.MaxVar() + 1,
		sink:            sink,
	}
	e.farVarIndex = make(map[litsat.Var]int, sys.NumLatches())
	for idx := 0; idx < sys.NumLatches(); idx++ {
		e.farVarIndex[e.farVar(idx)] = idx
	}

	for _, cl := range sys.TransitionClauses() {
		e.mainSolver.AddClause(cl)
		e.deadSolver.AddClause(cl)
		e.propagateSolver.AddClause(cl)
	}
	e.startSolver.AddCube(sys.InitCube())
	e.badSolver.AddUnit(sys.BadLit())

	root := e.newRootState()
	e.B = frame.NewReached(root)
	e.F = frame.NewSequence(frame.New())
	e.F.Extend()
	e.seedStartingFrame()

	return e
}

// seedStartingFrame wires the starting condition (the init cube forward,
// the bad literal backward) into F[0] as ordinary blocking elements, one
// per literal, so assumeFrame(solver, 0) actually constrains the level-1
// blocking query instead of finding F[0] empty (spec §4.4: "F[0] is the
// starting condition"). Blocking the negation of each starting literal
// has the same effect as requiring the literal itself, going through the
// same Frame.Add/wireMain machinery every other frame element uses.
func (e *Engine) seedStartingFrame() {
	var cu litsat.Cube
	if e.dir == Forward {
		cu = e.sys.InitCube()
	} else {
		cu = litsat.Cube{e.sys.BadLit()}
	}
	for _, l := range cu {
		e.addToFrame(0, litsat.Cube{l.Not()})
	}
}

// newRootState builds the B-tree root from the starting condition: the
// initial-state cube for a forward search, the bad-state literal for a
// backward one (spec §4.4: "F[0] is the starting condition").
func (e *Engine) newRootState() *state.State {
	var cu litsat.Cube
	if e.dir == Forward {
		cu = e.sys.InitCube()
	} else {
		cu = litsat.Cube{e.sys.BadLit()}
	}
	root := state.NewRoot(e.ctx, e.denseFromCube(cu))
	root.Init = e.consistentWithInitDense(root.Latches)
	return root
}

// denseFromCube expands a sparse latch cube into the dense, don't-care
// filled representation state.State stores (spec §4.3 LatchAssignment).
func (e *Engine) denseFromCube(cu litsat.Cube) state.LatchAssignment {
	dense := make(state.LatchAssignment, e.sys.NumLatches())
	for i := range dense {
		dense[i] = litsat.Null
	}
	for _, l := range cu {
		idx := int(l.Var()) - e.sys.NumInputs() - 1
		if idx < 0 || idx >= len(dense) {
			continue
		}
		dense[idx] = l
	}
	return dense
}

// allocActVar returns a fresh variable disjoint from every variable the
// system or a previously allocated activation literal could ever use.
func (e *Engine) allocActVar() litsat.Var {
	v := e.nextAuxVar
	e.nextAuxVar++
	return v
}

// unprimedLatchVar returns the canonical unprimed variable for latch
// index idx (0-based).
func (e *Engine) unprimedLatchVar(idx int) litsat.Var {
	return litsat.Var(e.sys.NumInputs() + 1 + idx)
}

// primedIf returns the primed form of l when usePrime is set, else l
// unchanged.
func (e *Engine) primedIf(l litsat.Lit, usePrime bool) litsat.Lit {
	if usePrime {
		return e.sys.Prime(l)
	}
	return l
}

// nearSide maps a latch literal onto the side of T that represents a
// frontier state's own successors/predecessors in a dead-state check
// (spec §4.4 "Dead-state pruning"): forward asks whether s has a
// successor (s unprimed, near), backward asks whether s has a
// predecessor (s primed, near).
func (e *Engine) nearSide(l litsat.Lit) litsat.Lit {
	return e.primedIf(l, e.dir == Backward)
}
