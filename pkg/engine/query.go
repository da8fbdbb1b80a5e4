package engine

import (
	"github.com/opencar/car/pkg/frame"
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
	"github.com/opencar/car/pkg/state"
)

// addToFrame is the engine's single insertion point into F: it always
// routes through Frame.Add so the de-duplication/subsumption bookkeeping
// stays correct, then wires any genuinely new element's activation
// literal into the main and propagate solvers (spec §4.2/§4.4).
func (e *Engine) addToFrame(level int, cu litsat.Cube) *frame.Element {
	el := e.F.At(level).Add(cu)
	if el.ActVar == 0 {
		el.ActVar = e.allocActVar()
		e.wireMain(el)
		e.wirePropagate(el)
	}
	el.AddLevel(level)
	return el
}

// wireMain asserts (¬act ∨ clause) into mainSolver. Like propagation,
// blocking is direction-independent: F[level]'s clauses always constrain
// the plain unprimed slot of T, the frontier state s always being
// assumed through its primed image instead (spec §4.4 step 2).
func (e *Engine) wireMain(el *frame.Element) {
	e.mainSolver.AddClause(e.guardedClause(el, identityLit))
}

// wirePropagate asserts (¬act ∨ clause) into propagateSolver. Propagation
// is direction-independent: F[i]'s clauses always constrain the plain
// unprimed predecessor slot of T (spec §4.4 "Propagation").
func (e *Engine) wirePropagate(el *frame.Element) {
	e.propagateSolver.AddClause(e.guardedClause(el, identityLit))
}

func identityLit(l litsat.Lit) litsat.Lit { return l }

func (e *Engine) guardedClause(el *frame.Element, side func(litsat.Lit) litsat.Lit) litsat.Clause {
	clause := el.Cube.Negate()
	out := make(litsat.Clause, 0, len(clause)+1)
	out = append(out, litsat.Of(el.ActVar, false))
	for _, l := range clause {
		out = append(out, side(l))
	}
	return out
}

// assumeFrame assumes the activation literal of every element currently
// in F[level] (the "currently active clauses of F[frame_level-1]"
// phrase of spec §4.4 step 2). At level 0 these are the starting-condition
// elements seedStartingFrame placed in F[0].
func (e *Engine) assumeFrame(solver *satsolver.Solver, level int) {
	if level < 0 || level >= e.F.Len() {
		return
	}
	for _, el := range e.F.At(level).Elements() {
		solver.Assume(litsat.Of(el.ActVar, true))
	}
}

// assumeLatchesSide assumes every non-don't-care literal of latches,
// mapped through side.
func (e *Engine) assumeLatchesSide(solver *satsolver.Solver, latches state.LatchAssignment, side func(litsat.Lit) litsat.Lit) {
	for _, l := range latches {
		if l == litsat.Null {
			continue
		}
		solver.Assume(side(l))
	}
}

// extractLatchesSide reads, for every latch index, the model value on the
// given side and returns it translated back into canonical unprimed form.
func (e *Engine) extractLatchesSide(model map[litsat.Var]bool, side func(int) litsat.Var) state.LatchAssignment {
	out := make(state.LatchAssignment, e.sys.NumLatches())
	for idx := range out {
		v := side(idx)
		positive, ok := model[v]
		if !ok {
			out[idx] = litsat.Null
			continue
		}
		out[idx] = litsat.Of(e.unprimedLatchVar(idx), positive)
	}
	return out
}

// farVar is the variable-level counterpart of the primed mapping tryBlock
// assumes the frontier state s through: always the primed variable,
// regardless of direction, matching wireMain/tryBlock's direction-
// independent convention. Used by translateFarCore to recognise which
// unsat-core literals name s's own variables.
func (e *Engine) farVar(idx int) litsat.Var {
	uv := e.unprimedLatchVar(idx)
	return e.sys.Prime(litsat.Of(uv, true)).Var()
}

// modelMap builds a var->polarity lookup from a solver's full model cube.
func modelMap(model litsat.Cube) map[litsat.Var]bool {
	m := make(map[litsat.Var]bool, len(model))
	for _, l := range model {
		m[l.Var()] = l.IsPos()
	}
	return m
}

// extractInputs reads every input variable's value out of the model,
// unconditionally (inputs have no primed/unprimed distinction).
func (e *Engine) extractInputs(model map[litsat.Var]bool) litsat.Cube {
	var out litsat.Cube
	for i := 1; i <= e.sys.NumInputs(); i++ {
		v := litsat.Var(i)
		positive, ok := model[v]
		if !ok {
			continue
		}
		out = append(out, litsat.Of(v, positive))
	}
	return out
}

// consistentWithInitDense reports whether a LatchAssignment (don't-care
// entries skipped) is consistent with the initial-state cube held by
// startSolver. It works on the assignment alone, so it can be used before a
// State object exists yet.
func (e *Engine) consistentWithInitDense(latches state.LatchAssignment) bool {
	e.startSolver.ClearAssumptions()
	for _, l := range latches {
		if l != litsat.Null {
			e.startSolver.Assume(l)
		}
	}
	return e.startSolver.Solve(satsolver.KindStart) == satsolver.Sat
}

// consistentWithBadDense mirrors consistentWithInitDense against the
// permanent bad-literal unit in badSolver.
func (e *Engine) consistentWithBadDense(latches state.LatchAssignment) bool {
	e.badSolver.ClearAssumptions()
	for _, l := range latches {
		if l != litsat.Null {
			e.badSolver.Assume(l)
		}
	}
	return e.badSolver.Solve(satsolver.KindStart) == satsolver.Sat
}

// oppositeConsistentDense checks a freshly extracted latch assignment
// against the endpoint F[0] does NOT already represent: init for a
// backward search (whose F[0] is the bad cube), bad for a forward search
// (whose F[0] is the init cube). A true result means the search has
// connected both endpoints — spec §4.4 "Counterexample extraction".
func (e *Engine) oppositeConsistentDense(latches state.LatchAssignment) bool {
	if e.dir == Backward {
		return e.consistentWithInitDense(latches)
	}
	return e.consistentWithBadDense(latches)
}

// generalize minimises the main solver's most recent unsat core and
// translates it back into a canonical unprimed blocking cube (spec §4.4
// step 3, "Generalisation"). Activation literals in the core name frame
// elements, not state literals, and are dropped; what remains is the
// witness actually responsible for the UNSAT result.
func (e *Engine) generalize() (litsat.Cube, error) {
	core := e.mainSolver.Core()
	if len(core) == 0 {
		return nil, ErrInvariantViolation{"empty unsat core in blocking query"}
	}
	muc := e.mainSolver.MinimiseCore(core)
	cube := e.translateFarCore(muc)
	if len(cube) == 0 {
		return nil, ErrInvariantViolation{"unsat core for blocking query carried no state literal"}
	}
	return cube, nil
}

// translateFarCore keeps only the literals of core that name a farVar
// (primed) latch variable, rewriting each back to its canonical unprimed
// form.
func (e *Engine) translateFarCore(core litsat.Cube) litsat.Cube {
	var out litsat.Cube
	for _, l := range core {
		idx, ok := e.farVarIndex[l.Var()]
		if !ok {
			continue
		}
		out = append(out, litsat.Of(e.unprimedLatchVar(idx), l.IsPos()))
	}
	return out
}

// partialize generalises a freshly extracted latch assignment by
// dropping any latch whose value isn't needed to keep the assignment
// distinguishable from the opposite endpoint (spec §9 "Partial-state
// extraction"): a ternary-simulation substitute that keeps states broad
// so they block more of the search space. A dropped bit is only kept
// dropped while the assignment still does not (spuriously) become
// consistent with the endpoint the search hasn't reached yet; if
// dropping a bit would make it falsely claim that, the bit is restored.
func (e *Engine) partialize(latches state.LatchAssignment) state.LatchAssignment {
	if e.cfg.DisablePartialStates {
		return latches
	}
	out := latches.Clone()
	for idx, l := range out {
		if l == litsat.Null {
			continue
		}
		out[idx] = litsat.Null
		if e.oppositeConsistentDense(out) {
			out[idx] = l
		}
	}
	return out
}
