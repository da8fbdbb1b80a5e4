package satsolver

import "github.com/opencar/car/pkg/litsat"

// MinimiseCore implements the recursive-halving unsat-core minimisation of
// spec §4.5, ported from the source's CARSolver::get_mus. Given a core
// that is known to be UNSAT when assumed (e.g. the output of Core()), it
// returns a locally minimal subset: still UNSAT, but removing any single
// literal would make it SAT.
//
// An open question in the source (a commented-out drop-one-literal
// alternative) is left unresolved there; this package picks halving and
// does not also implement drop-one, so cores returned here should not be
// assumed identical, element-for-element, to a drop-one-based MUC.
func (s *Solver) MinimiseCore(core litsat.Cube) litsat.Cube {
	if len(core) == 0 {
		return nil
	}

	worklist := []litsat.Cube{core}
	var result litsat.Cube

	for len(worklist) > 0 {
		c := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if len(c) == 0 {
			continue
		}
		if len(c) == 1 {
			result = append(result, c[0])
			continue
		}

		mid := len(c) / 2
		c1, c2 := c[:mid], c[mid:]

		if s.solveSubset(c1, worklist) == Unsat {
			newCore := s.Core()
			worklist = refilter(worklist, newCore)
			worklist = append(worklist, refilter([]litsat.Cube{c}, newCore)...)
			continue
		}
		if s.solveSubset(c2, worklist) == Unsat {
			newCore := s.Core()
			worklist = refilter(worklist, newCore)
			worklist = append(worklist, refilter([]litsat.Cube{c}, newCore)...)
			continue
		}

		worklist = append(worklist, c1, c2)
	}

	return result
}

// solveSubset solves with candidate plus every literal still on the
// worklist assumed, the way the source's CARSolver::SAT merges mus with
// the outstanding muses before calling solve_assumption.
func (s *Solver) solveSubset(candidate litsat.Cube, worklist []litsat.Cube) Outcome {
	s.ClearAssumptions()
	s.AssumeCube(candidate)
	for _, c := range worklist {
		s.AssumeCube(c)
	}
	return s.Solve(KindMUC)
}

// refilter keeps, from each worklist entry, only the literals that are
// still present in core — mirroring CARSolver::remove_from, which drops
// anything the latest unsat core proved unnecessary.
func refilter(worklist []litsat.Cube, core litsat.Cube) []litsat.Cube {
	if len(worklist) == 0 {
		return worklist
	}
	set := core.AsSet()
	out := make([]litsat.Cube, len(worklist))
	for i, c := range worklist {
		var kept litsat.Cube
		for _, l := range c {
			if _, ok := set[l]; ok {
				kept = append(kept, l)
			}
		}
		out[i] = kept
	}
	return out
}
