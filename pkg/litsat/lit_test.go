package litsat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencar/car/pkg/litsat"
)

func TestLitPolarity(t *testing.T) {
	pos := litsat.Of(3, true)
	neg := litsat.Of(3, false)

	assert.Equal(t, litsat.Var(3), pos.Var())
	assert.Equal(t, litsat.Var(3), neg.Var())
	assert.True(t, pos.IsPos())
	assert.False(t, neg.IsPos())
	assert.Equal(t, neg, pos.Not())
	assert.Equal(t, pos, neg.Not())
}

func TestLitString(t *testing.T) {
	assert.Equal(t, "3", litsat.Of(3, true).String())
	assert.Equal(t, "-3", litsat.Of(3, false).String())
}

func TestNullIsNotAValidLiteral(t *testing.T) {
	assert.Equal(t, litsat.Lit(0), litsat.Null)
}
