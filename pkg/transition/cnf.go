package transition

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/opencar/car/pkg/litsat"
)

// ErrMalformed reports a problem with the circuit description itself,
// detected by the adapter before the engine ever runs (spec §7,
// InputMalformed — "not produced by the core").
type ErrMalformed struct {
	Reason string
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("malformed transition system: %s", e.Reason)
}

// CNFSystem is a plain in-memory System: everything the core needs, held
// as already-built CNF. It is what circuitfile.Load and engine tests
// construct directly, standing in for whatever real AIGER-to-CNF
// construction a full toolchain would perform (out of scope per spec §1).
type CNFSystem struct {
	numInputs   int
	numLatches  int
	numAux      int
	primeOffset int

	init    litsat.Cube
	bad     litsat.Lit
	clauses []litsat.Clause
	maxVar  litsat.Var
}

// New validates and constructs a CNFSystem. primeOffset is added to a
// latch variable's index to obtain its primed counterpart, per the fixed
// offset mapping spec §3 describes; it must place every primed variable
// strictly beyond the highest variable used anywhere else in clauses, init
// or bad.
func New(numInputs, numLatches, numAux, primeOffset int, init litsat.Cube, bad litsat.Lit, clauses []litsat.Clause) (*CNFSystem, error) {
	var errs []error
	if numInputs < 0 {
		errs = append(errs, ErrMalformed{"numInputs must be non-negative"})
	}
	if numLatches < 0 {
		errs = append(errs, ErrMalformed{"numLatches must be non-negative"})
	}
	if numAux < 0 {
		errs = append(errs, ErrMalformed{"numAux must be non-negative"})
	}
	if bad == litsat.Null {
		errs = append(errs, ErrMalformed{"bad-state literal must be non-zero"})
	}
	if !init.Consistent() {
		errs = append(errs, ErrMalformed{"initial-state cube is inconsistent"})
	}
	for _, l := range init {
		idx := int(l.Var()) - numInputs - 1
		if idx < 0 || idx >= numLatches {
			errs = append(errs, ErrMalformed{fmt.Sprintf("initial-state literal %v is not a latch literal", l)})
		}
	}
	if primeOffset <= numInputs+numLatches+numAux {
		errs = append(errs, ErrMalformed{"primeOffset must place primed latches beyond every other variable"})
	}
	if agg := utilerrors.NewAggregate(errs); agg != nil {
		return nil, agg
	}

	maxVar := litsat.Var(numInputs + numLatches + primeOffset)
	if v := bad.Var(); v > maxVar {
		maxVar = v
	}
	for _, cl := range clauses {
		for _, l := range cl {
			if v := l.Var(); v > maxVar {
				maxVar = v
			}
		}
	}

	return &CNFSystem{
		numInputs:   numInputs,
		numLatches:  numLatches,
		numAux:      numAux,
		primeOffset: primeOffset,
		init:        init.Clone(),
		bad:         bad,
		clauses:     clauses,
		maxVar:      maxVar,
	}, nil
}

func (s *CNFSystem) NumInputs() int  { return s.numInputs }
func (s *CNFSystem) NumLatches() int { return s.numLatches }
func (s *CNFSystem) NumAux() int     { return s.numAux }

func (s *CNFSystem) InitCube() litsat.Cube { return s.init.Clone() }

func (s *CNFSystem) BadLit() litsat.Lit { return s.bad }

func (s *CNFSystem) TransitionClauses() []litsat.Clause {
	out := make([]litsat.Clause, len(s.clauses))
	for i, c := range s.clauses {
		out[i] = c.Clone()
	}
	return out
}

// Prime maps an unprimed latch literal to its primed counterpart by
// adding the fixed offset to its variable, preserving polarity. It panics
// if l is not a latch literal: per spec §3 the mapping is only defined on
// latch literals, and a caller that violates this has an internal bug,
// not a recoverable condition.
func (s *CNFSystem) Prime(l litsat.Lit) litsat.Lit {
	idx := int(l.Var()) - s.numInputs - 1
	if idx < 0 || idx >= s.numLatches {
		panic(fmt.Sprintf("transition: Prime called on non-latch literal %v", l))
	}
	primedVar := litsat.Var(int(l.Var()) + s.primeOffset)
	return litsat.Of(primedVar, l.IsPos())
}

// MaxVar returns the highest variable index used by this system, including
// the primed latch range.
func (s *CNFSystem) MaxVar() litsat.Var { return s.maxVar }

var _ System = (*CNFSystem)(nil)
