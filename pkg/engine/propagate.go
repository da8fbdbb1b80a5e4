package engine

import (
	"github.com/opencar/car/pkg/frame"
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
)

// propagate runs one full pass of spec §4.4's "Propagation" step over every
// frame from F[1] up to F[len(F)-2], pushing each non-propagated element as
// far forward as a T-query allows, then checking the newly adjacent frame
// pair for the inductive fixed point. It returns a non-nil *Result the
// moment a fixed point is confirmed, and nil if none is found this pass.
func (e *Engine) propagate() (*Result, error) {
	for i := 1; i <= e.F.Len()-2; i++ {
		frameI := e.F.At(i)
		for _, el := range frameI.Elements() {
			if el.Propagated() {
				continue
			}
			ok, err := e.tryPropagate(el, i)
			if err != nil {
				return nil, err
			}
			if ok {
				e.addToFrame(i+1, el.Cube)
				el.SetPropagated(true)
			}
		}

		contained, err := e.frameContained(i, i+1)
		if err != nil {
			return nil, err
		}
		if contained {
			return e.buildSafe(i), nil
		}
	}
	return nil, nil
}

// tryPropagate asks propagate_solver whether F[i] together with T can still
// reach a state violating el's clause one step later; UNSAT means el can be
// pushed to F[i+1] unchanged (spec §4.4 "Propagation").
func (e *Engine) tryPropagate(el *frame.Element, i int) (bool, error) {
	e.propagateSolver.ClearAssumptions()
	e.assumeFrame(e.propagateSolver, i)
	for _, l := range el.Cube {
		e.propagateSolver.Assume(e.sys.Prime(l))
	}
	outcome := e.propagateSolver.Solve(satsolver.KindPropagate)
	if outcome == satsolver.Unknown {
		return false, satsolver.ErrUnknown{Kind: satsolver.KindPropagate}
	}
	return outcome == satsolver.Unsat, nil
}

// frameContained reports whether every element of F[i] is already implied
// by F[j] (spec §4.4 "propagation fixed point", spec §8 invariant about
// O-sequence monotonicity). A fast structural check, an identical element
// already in F[j] found via Frame.GetIndexes, is tried first; anything it
// can't confirm falls back to a genuine SAT query
// against a fresh solver loaded with F[j]'s clauses as plain, unguarded
// assertions.
func (e *Engine) frameContained(i, j int) (bool, error) {
	fi := e.F.At(i)
	if fi.Len() == 0 {
		return false, nil
	}
	fj := e.F.At(j)

	inv := satsolver.New(e.sink)
	for _, el := range fj.Elements() {
		inv.AddClause(el.Cube.Negate())
	}

	for _, el := range fi.Elements() {
		same := false
		for _, p := range fj.GetIndexes(el.Cube) {
			if len(fj.At(p).Cube) == len(el.Cube) {
				same = true
				break
			}
		}
		if same {
			continue
		}
		inv.ClearAssumptions()
		inv.AssumeCube(el.Cube)
		outcome := inv.Solve(satsolver.KindInvariant)
		if outcome == satsolver.Unknown {
			return false, satsolver.ErrUnknown{Kind: satsolver.KindInvariant}
		}
		if outcome != satsolver.Unsat {
			return false, nil
		}
	}
	return true, nil
}

// buildSafe reports the property holds, with F[i]'s clauses as the
// discovered inductive invariant (spec §4.4, §6 "Outputs from the core").
func (e *Engine) buildSafe(i int) *Result {
	fi := e.F.At(i)
	invariant := make([]litsat.Clause, 0, fi.Len())
	for _, el := range fi.Elements() {
		invariant = append(invariant, el.Cube.Negate())
	}
	return &Result{
		Safe:            true,
		Invariant:       invariant,
		FixedPointIndex: i,
		Dump:            e.dumpFrames(),
	}
}
