package engine

import (
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
	"github.com/opencar/car/pkg/state"
)

// checkDead queries dead_solver to decide whether s has any T-consistent
// successor (forward) or predecessor (backward) at all (spec §4.4
// "Dead-state pruning"). A state found dead is marked and its negation is
// asserted permanently into dead_solver so the result is remembered across
// the rest of the search, matching the source's State::set_dead bookkeeping.
func (e *Engine) checkDead(s *state.State) (bool, error) {
	if e.cfg.DisableDeadStatePruning {
		return false, nil
	}
	if s.Dead {
		return true, nil
	}

	e.deadSolver.ClearAssumptions()
	e.assumeLatchesSide(e.deadSolver, s.Latches, e.nearSide)
	outcome := e.deadSolver.Solve(satsolver.KindDead)
	if outcome == satsolver.Unknown {
		return false, satsolver.ErrUnknown{Kind: satsolver.KindDead}
	}
	if outcome != satsolver.Unsat {
		return false, nil
	}

	s.Dead = true
	if !s.AddedToDeadSolver {
		e.deadSolver.AddClause(e.negatedNearClause(s.Latches))
		s.AddedToDeadSolver = true
	}
	return true, nil
}

// negatedNearClause builds the clause ruling out latches's assigned
// literals on the near side, for permanent assertion into dead_solver.
func (e *Engine) negatedNearClause(latches state.LatchAssignment) litsat.Clause {
	var cl litsat.Clause
	for _, l := range latches {
		if l == litsat.Null {
			continue
		}
		cl = append(cl, e.nearSide(l).Not())
	}
	return cl
}
