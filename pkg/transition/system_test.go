package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/transition"
)

func lit(n int32) litsat.Lit { return litsat.Lit(n) }

func TestNewValidatesInconsistentInit(t *testing.T) {
	_, err := transition.New(0, 1, 0, 10, litsat.Cube{lit(1), lit(-1)}, lit(1), nil)
	require.Error(t, err)
}

func TestNewValidatesBadLiteral(t *testing.T) {
	_, err := transition.New(0, 1, 0, 10, nil, litsat.Null, nil)
	require.Error(t, err)
}

func TestNewValidatesPrimeOffsetOverlap(t *testing.T) {
	_, err := transition.New(0, 1, 0, 1, nil, lit(1), nil)
	require.Error(t, err)
}

func TestNewAggregatesMultipleErrors(t *testing.T) {
	_, err := transition.New(-1, -1, 0, 0, litsat.Cube{lit(1), lit(-1)}, litsat.Null, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numInputs")
}

func TestPrimeOffsetsLatchVariable(t *testing.T) {
	// 1 input, 1 latch (var 2), prime offset 10.
	sys, err := transition.New(1, 1, 0, 10, litsat.Cube{lit(-2)}, lit(2), nil)
	require.NoError(t, err)

	primed := sys.Prime(lit(2))
	assert.Equal(t, lit(12), primed)
	assert.True(t, primed.IsPos())

	primedNeg := sys.Prime(lit(-2))
	assert.Equal(t, lit(-12), primedNeg)
}

func TestPrimePanicsOnNonLatch(t *testing.T) {
	sys, err := transition.New(1, 1, 0, 10, nil, lit(2), nil)
	require.NoError(t, err)

	assert.Panics(t, func() { sys.Prime(lit(1)) })
}

func TestMaxVarAccountsForPrimedRange(t *testing.T) {
	sys, err := transition.New(1, 2, 0, 10, nil, lit(2), []litsat.Clause{{lit(1), lit(3)}})
	require.NoError(t, err)
	// numInputs(1) + numLatches(2) + primeOffset(10) = 13.
	assert.Equal(t, litsat.Var(13), sys.MaxVar())
}

func TestTransitionClausesAreDefensivelyCopied(t *testing.T) {
	cl := litsat.Clause{lit(1)}
	sys, err := transition.New(1, 1, 0, 10, nil, lit(2), []litsat.Clause{cl})
	require.NoError(t, err)

	got := sys.TransitionClauses()
	got[0][0] = lit(99)
	assert.Equal(t, lit(1), sys.TransitionClauses()[0][0])
}
