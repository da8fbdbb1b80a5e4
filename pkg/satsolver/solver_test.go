package satsolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/satsolver"
)

func lit(n int32) litsat.Lit { return litsat.Lit(n) }

// TestAddClauseThenSolve exercises spec §8's round-trip property: adding a
// clause and then assuming it yields SAT, and adding the negated unit of
// any literal in it then solving yields UNSAT.
func TestAddClauseThenSolve(t *testing.T) {
	s := satsolver.New(nil)
	s.AddClause(litsat.Clause{lit(1), lit(2)})

	s.ClearAssumptions()
	s.Assume(lit(1))
	require.Equal(t, satsolver.Sat, s.Solve(satsolver.KindMain))

	s.AddUnit(lit(-1))
	s.AddUnit(lit(-2))
	s.ClearAssumptions()
	require.Equal(t, satsolver.Unsat, s.Solve(satsolver.KindMain))
}

func TestLitOfIsStable(t *testing.T) {
	s := satsolver.New(nil)
	a := s.LitOf(lit(5))
	b := s.LitOf(lit(5))
	assert.Equal(t, a, b)

	negA := s.LitOf(lit(-5))
	assert.Equal(t, a.Not(), negA)
}

func TestModelRoundTripsThroughIDOf(t *testing.T) {
	s := satsolver.New(nil)
	s.AddUnit(lit(1))
	s.AddUnit(lit(-2))

	s.ClearAssumptions()
	require.Equal(t, satsolver.Sat, s.Solve(satsolver.KindMain))

	model := s.Model()
	found1, found2 := false, false
	for _, l := range model {
		if l.Var() == 1 {
			assert.True(t, l.IsPos())
			found1 = true
		}
		if l.Var() == 2 {
			assert.False(t, l.IsPos())
			found2 = true
		}
	}
	assert.True(t, found1)
	assert.True(t, found2)
}

// TestMinimiseCoreIsLocallyMinimal builds an UNSAT instance over
// assumptions {a,b,c,d} where only b and c conflict, and checks spec §8
// invariant 5: the result stays UNSAT, and dropping any single literal
// from it makes the remainder SAT.
func TestMinimiseCoreIsLocallyMinimal(t *testing.T) {
	s := satsolver.New(nil)
	a, b, c, d := lit(1), lit(2), lit(3), lit(4)
	// b and c cannot both hold; a and d are unconstrained.
	s.AddClause(litsat.Clause{b.Not(), c.Not()})

	assumeAll := func(lits ...litsat.Lit) satsolver.Outcome {
		s.ClearAssumptions()
		for _, l := range lits {
			s.Assume(l)
		}
		return s.Solve(satsolver.KindMain)
	}

	require.Equal(t, satsolver.Unsat, assumeAll(a, b, c, d))
	core := s.Core()
	require.NotEmpty(t, core)

	muc := s.MinimiseCore(core)
	require.NotEmpty(t, muc)

	require.Equal(t, satsolver.Unsat, assumeAll(muc...))

	for i := range muc {
		without := append(litsat.Cube(nil), muc[:i]...)
		without = append(without, muc[i+1:]...)
		outcome := assumeAll(without...)
		assert.Equal(t, satsolver.Sat, outcome, "dropping %v from the MUC should make it SAT", muc[i])
	}
}

func TestMinimiseCoreEmptyInput(t *testing.T) {
	s := satsolver.New(nil)
	assert.Nil(t, s.MinimiseCore(nil))
}
