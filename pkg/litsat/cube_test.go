package litsat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/opencar/car/pkg/litsat"
)

func lit(n int32) litsat.Lit { return litsat.Lit(n) }

func TestCubeConsistent(t *testing.T) {
	cases := []struct {
		name string
		cu   litsat.Cube
		want bool
	}{
		{"empty", nil, true},
		{"distinct vars", litsat.Cube{lit(1), lit(-2), lit(3)}, true},
		{"repeated same polarity", litsat.Cube{lit(1), lit(1)}, true},
		{"contradiction", litsat.Cube{lit(1), lit(-1)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.cu.Consistent())
		})
	}
}

func TestCubeNegateRoundTrips(t *testing.T) {
	cu := litsat.Cube{lit(1), lit(-2), lit(3)}
	cl := cu.Negate()
	if diff := cmp.Diff(litsat.Clause{lit(-1), lit(2), lit(-3)}, cl); diff != "" {
		t.Fatalf("Negate() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(cu, cl.Negate()); diff != "" {
		t.Fatalf("double negation mismatch (-want +got):\n%s", diff)
	}
}

func TestCubeContains(t *testing.T) {
	cu := litsat.Cube{lit(1), lit(-2)}
	assert.True(t, cu.Contains(lit(1)))
	assert.False(t, cu.Contains(lit(2)))
	assert.True(t, cu.Contains(lit(-2)))
}

func TestCubeCloneIsIndependent(t *testing.T) {
	cu := litsat.Cube{lit(1), lit(2)}
	clone := cu.Clone()
	clone[0] = lit(99)
	assert.Equal(t, lit(1), cu[0])
}
