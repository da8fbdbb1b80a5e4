package engine

import (
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
	"github.com/opencar/car/pkg/state"
)

// obligation is a single (state, frame_level) pair awaiting a blocking
// query, the unit of work spec §4.4's outer loop schedules.
type obligation struct {
	s     *state.State
	level int
}

// Run drives the CAR search to a verdict (spec §4.4). It returns a non-nil
// error only for an internal invariant violation or an UNKNOWN solver
// result; a well-formed circuit always yields a Result. Exactly one OnEnd
// event is reported on the configured sink before Run returns, on every
// path including a terminal error (spec §7, "ensures any statistics
// accumulator sees a well-formed end event").
func (e *Engine) Run() (*Result, error) {
	defer e.sink.OnEnd()
	return e.run()
}

// run drives the outer loop of spec §4.4: an increasing depth bound k,
// one frame extension per iteration, and an inner obligation queue
// re-seeded at {root, k} every time. An obligation blocked at some level
// is never requeued at a higher level against the same k; it is only
// revisited, at a lower level, the next time k grows and the queue is
// reseeded from the root. This is what lets a SAFE instance terminate:
// an obligation that bottoms out at level 0 without ever reaching the
// starting condition is blocked outright rather than retried forever.
func (e *Engine) run() (*Result, error) {
	root := e.B.Level(0)[0]
	if e.oppositeConsistentDense(root.Latches) {
		return e.buildUnsafe(root), nil
	}

	for k := 1; ; k++ {
		if res, err := e.ensureFrame(k); err != nil {
			return nil, err
		} else if res != nil {
			return res, nil
		}

		queue := []obligation{{root, k}}
		for len(queue) > 0 {
			ob := queue[0]
			queue = queue[1:]

			if ob.s.Dead {
				continue
			}

			dead, err := e.checkDead(ob.s)
			if err != nil {
				return nil, err
			}
			if dead {
				continue
			}

			if ob.level == 0 {
				// No F[-1] exists to query against: a state that survives
				// down to level 0 without ever matching the starting
				// condition is, at this k, a dead end — block it and move
				// on (spec §4.4 step 2, the level-0 base case).
				e.addToFrame(1, nonNullCube(ob.s.Latches))
				continue
			}

			outcome, err := e.tryBlock(ob.s, ob.level)
			if err != nil {
				return nil, err
			}

			switch outcome {
			case satsolver.Unsat:
				cube, err := e.generalize()
				if err != nil {
					return nil, err
				}
				e.addToFrame(ob.level, cube)

			case satsolver.Sat:
				child, unsafe, err := e.extractChild(ob.s)
				if err != nil {
					return nil, err
				}
				e.B.Append(child)
				if unsafe {
					if e.dir == Forward {
						return e.buildUnsafe(root), nil
					}
					return e.buildUnsafe(child), nil
				}
				queue = append(queue, obligation{child, ob.level - 1})

			default:
				return nil, satsolver.ErrUnknown{Kind: satsolver.KindMain}
			}
		}
	}
}

// nonNullCube drops the don't-care entries of a latch assignment, turning
// it into the sparse cube form addToFrame expects.
func nonNullCube(latches state.LatchAssignment) litsat.Cube {
	var cu litsat.Cube
	for _, l := range latches {
		if l != litsat.Null {
			cu = append(cu, l)
		}
	}
	return cu
}

// ensureFrame extends F up to and including level, running a propagation
// pass after every extension (spec §4.4 step 5, "Frame extension"). It
// returns a non-nil Result the moment propagation confirms a fixed point.
func (e *Engine) ensureFrame(level int) (*Result, error) {
	for e.F.Len() <= level {
		e.F.Extend()
		res, err := e.propagate()
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// tryBlock asks main_solver whether some T-predecessor of s survives the
// currently active clauses of F[level-1] (spec §4.4 step 2). SAT means s
// has a witness at this level; UNSAT means s is already blocked and the
// witness must be generalised into a new clause. s is always assumed
// through its primed image, direction-independent like wireMain/
// wirePropagate: forward and backward both solve for an unprimed
// predecessor of the primed s.
func (e *Engine) tryBlock(s *state.State, level int) (satsolver.Outcome, error) {
	e.mainSolver.ClearAssumptions()
	e.assumeLatchesSide(e.mainSolver, s.Latches, e.sys.Prime)
	e.assumeFrame(e.mainSolver, level-1)
	outcome := e.mainSolver.Solve(satsolver.KindMain)
	if outcome == satsolver.Unknown {
		return outcome, satsolver.ErrUnknown{Kind: satsolver.KindMain}
	}
	return outcome, nil
}

// extractChild builds the state witnessed by the most recent SAT outcome
// of tryBlock, generalises its latch assignment, and reports whether it
// closes the search (spec §4.4 "Counterexample extraction").
func (e *Engine) extractChild(s *state.State) (*state.State, bool, error) {
	model := modelMap(e.mainSolver.Model())

	dense := e.extractLatchesSide(model, e.unprimedLatchVar)
	inputs := e.extractInputs(model)

	childInit := e.consistentWithInitDense(dense)
	dense = e.partialize(dense)
	unsafe := e.oppositeConsistentDense(dense)

	last := unsafe && e.dir == Backward
	child := state.New(e.ctx, s, inputs, dense, e.dir == Forward, last)
	child.Init = childInit

	// state.New links a new forward state back to its parent (Next = s);
	// PrintEvidence's forward branch instead walks the chain from the
	// root downward, so the engine also links the parent forward to its
	// child here.
	if e.dir == Forward {
		s.Next = child
	}

	return child, unsafe, nil
}
