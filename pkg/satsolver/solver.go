package satsolver

import (
	"time"

	"github.com/go-air/gini/z"

	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/stats"
)

// Outcome is the three-valued result of a Solve call.
type Outcome int8

const (
	Unknown Outcome = 0
	Sat     Outcome = 1
	Unsat   Outcome = -1
)

func fromGini(result int) Outcome {
	switch {
	case result > 0:
		return Sat
	case result < 0:
		return Unsat
	default:
		return Unknown
	}
}

// Solver is the uniform interface over an incremental SAT back-end
// described by spec §4.1: it owns the translation between the signed
// integer literals used throughout the engine (litsat.Lit) and whatever
// internal literal representation the back-end uses, plus
// assumption/clause/model bookkeeping.
//
// The same contract as go-air/gini's z.Lit is used on the wire (id_of /
// lit_of is a stable bijection for the lifetime of the Solver), so callers
// never see the back-end's own literal type.
type Solver struct {
	back    backend
	sink    stats.Sink
	litOf   map[litsat.Var]z.Lit
	idOf    map[z.Lit]litsat.Var // keyed by the positive form of the solver literal
	assumed []z.Lit
}

// New returns a Solver backed by go-air/gini. A nil sink disables
// statistics reporting.
func New(sink stats.Sink) *Solver {
	if sink == nil {
		sink = stats.Noop{}
	}
	return &Solver{
		back:  newGiniBackend(),
		sink:  sink,
		litOf: make(map[litsat.Var]z.Lit),
		idOf:  make(map[z.Lit]litsat.Var),
	}
}

// LitOf maps a signed-integer literal to the solver's internal literal,
// allocating a fresh solver variable the first time a given variable is
// seen. The mapping is stable: the same id always yields the same solver
// literal for the lifetime of s.
func (s *Solver) LitOf(l litsat.Lit) z.Lit {
	v := l.Var()
	m, ok := s.litOf[v]
	if !ok {
		m = s.back.Lit()
		s.litOf[v] = m
		s.idOf[m] = v
	}
	if l.IsPos() {
		return m
	}
	return m.Not()
}

// IDOf is the inverse of LitOf.
func (s *Solver) IDOf(m z.Lit) litsat.Lit {
	pos := m
	if !m.IsPos() {
		pos = m.Not()
	}
	v, ok := s.idOf[pos]
	if !ok {
		return litsat.Null
	}
	return litsat.Of(v, m.IsPos())
}

// AddClause asserts the disjunction cl. Like the source's CARSolver, a
// clause the back-end rejects (e.g. one that collapses to empty under the
// current variable set) fails silently: callers must not rely on a return
// value to detect that case.
func (s *Solver) AddClause(cl litsat.Clause) {
	for _, l := range cl {
		s.back.Add(s.LitOf(l))
	}
	s.back.Add(z.LitNull)
}

// AddUnit asserts the unit clause {l}.
func (s *Solver) AddUnit(l litsat.Lit) {
	s.AddClause(litsat.Clause{l})
}

// AddBinary asserts the clause {a, b}.
func (s *Solver) AddBinary(a, b litsat.Lit) {
	s.AddClause(litsat.Clause{a, b})
}

// AddTernary asserts the clause {a, b, c}.
func (s *Solver) AddTernary(a, b, c litsat.Lit) {
	s.AddClause(litsat.Clause{a, b, c})
}

// AddQuaternary asserts the clause {a, b, c, d}.
func (s *Solver) AddQuaternary(a, b, c, d litsat.Lit) {
	s.AddClause(litsat.Clause{a, b, c, d})
}

// AddCube asserts every literal of cu as its own unit clause. This is used
// to materialise a temporary assumption directly into the solver; callers
// must only do so when they control a solver instance (or backtracking
// scope) that will be discarded afterwards, since units cannot be
// retracted.
func (s *Solver) AddCube(cu litsat.Cube) {
	for _, l := range cu {
		s.AddUnit(l)
	}
}

// Assume adds l to the assumption vector used by the next Solve call.
func (s *Solver) Assume(l litsat.Lit) {
	s.assumed = append(s.assumed, s.LitOf(l))
}

// AssumeCube assumes every literal of cu.
func (s *Solver) AssumeCube(cu litsat.Cube) {
	for _, l := range cu {
		s.Assume(l)
	}
}

// ClearAssumptions empties the assumption vector. Back-ends do not
// remember assumptions across Solve calls, so callers must call this
// before building the next query.
func (s *Solver) ClearAssumptions() {
	s.assumed = s.assumed[:0]
}

// Solve runs the solver under the current assumptions. kind identifies the
// query purely for statistics. An Unknown outcome is always a fatal,
// unrecoverable condition per the engine's error model; callers should
// treat it by returning ErrUnknown rather than continuing the search.
func (s *Solver) Solve(kind Kind) Outcome {
	s.sink.OnSolveBegin(stats.Kind(kind))
	s.back.Assume(s.assumed...)
	start := time.Now()
	result := s.back.Solve()
	d := time.Since(start)
	outcome := fromGini(result)
	s.sink.OnSolveEnd(stats.Kind(kind), d, outcome == Sat)
	return outcome
}

// Model returns the full signed-integer assignment over every variable
// allocated so far. Valid only immediately after a Sat outcome.
func (s *Solver) Model() litsat.Cube {
	out := make(litsat.Cube, 0, len(s.litOf))
	for v, m := range s.litOf {
		out = append(out, litsat.Of(v, s.back.Value(m)))
	}
	return out
}

// Core returns the unsat core: the subset of the literals assumed for the
// most recent (unsatisfiable) Solve call that sufficed to derive UNSAT,
// each reported with the polarity it was assumed with.
func (s *Solver) Core() litsat.Cube {
	whys := s.back.Why(nil)
	out := make(litsat.Cube, 0, len(whys))
	for _, m := range whys {
		out = append(out, s.IDOf(m))
	}
	return out
}
