package circuitfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencar/car/pkg/circuitfile"
	"github.com/opencar/car/pkg/litsat"
)

// A 1-input, 1-latch system: T: l' = i; init -l; bad +l (spec §8 scenario 3).
const twoStepSystem = `
c a transition relation encoding l' = i via Tseitin-free biconditional
p car 1 1 0 10
i -2 0
b 2
-1 12 0
1 -12 0
`

func TestLoadParsesProblemAndDirectives(t *testing.T) {
	sys, err := circuitfile.Load(strings.NewReader(twoStepSystem))
	require.NoError(t, err)

	assert.Equal(t, 1, sys.NumInputs())
	assert.Equal(t, 1, sys.NumLatches())
	assert.Equal(t, litsat.Cube{litsat.Lit(-2)}, sys.InitCube())
	assert.Equal(t, litsat.Lit(2), sys.BadLit())
	assert.Len(t, sys.TransitionClauses(), 2)
}

func TestLoadMissingProblemLine(t *testing.T) {
	_, err := circuitfile.Load(strings.NewReader("i -2 0\nb 2\n"))
	require.Error(t, err)
	var syntaxErr circuitfile.ErrSyntax
	require.ErrorAs(t, err, &syntaxErr)
}

func TestLoadMissingBadLine(t *testing.T) {
	_, err := circuitfile.Load(strings.NewReader("p car 1 1 0 10\ni -2 0\n"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedProblemLine(t *testing.T) {
	_, err := circuitfile.Load(strings.NewReader("p car 1 1 0\nb 1\n"))
	require.Error(t, err)
}

func TestLoadIgnoresCommentsAndBlankLines(t *testing.T) {
	src := "c header\n\np car 0 1 0 5\nc another comment\ni 1 0\nb 1\n"
	sys, err := circuitfile.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 0, sys.NumInputs())
}
