package litsat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencar/car/pkg/litsat"
)

func TestClauseSubsumes(t *testing.T) {
	abc := litsat.Clause{lit(1), lit(2), lit(3)}
	ab := litsat.Clause{lit(1), lit(2)}

	assert.True(t, ab.Subsumes(abc), "{1,2} should subsume {1,2,3}")
	assert.False(t, abc.Subsumes(ab), "{1,2,3} should not subsume {1,2}")
	assert.True(t, ab.Subsumes(ab), "a clause subsumes itself")
}

func TestClauseSubsumesRequiresSharedLiterals(t *testing.T) {
	a := litsat.Clause{lit(1)}
	b := litsat.Clause{lit(-1), lit(2)}
	assert.False(t, a.Subsumes(b))
}
