package state_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/state"
)

// A 1-input, 1-latch system: latch variable is 2 (I=1, latch index 0).
func newCtx() *state.Context { return state.NewContext(1, 1) }

func TestNewRootHasNoLinks(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(2, true)})

	assert.Nil(t, root.Pre)
	assert.Nil(t, root.Next)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 1, root.ID)
}

func TestStateIDsAreUniqueAndIncreasing(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Null})
	a := state.New(ctx, root, nil, state.LatchAssignment{litsat.Null}, true, false)
	b := state.New(ctx, root, nil, state.LatchAssignment{litsat.Null}, true, false)

	assert.Less(t, root.ID, a.ID)
	assert.Less(t, a.ID, b.ID)
}

func TestNewForwardSetsNextExactlyOneLink(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Null})
	child := state.New(ctx, root, litsat.Cube{litsat.Of(1, true)}, state.LatchAssignment{litsat.Of(2, true)}, true, false)

	assert.Same(t, root, child.Next)
	assert.Nil(t, child.Pre)
	assert.Equal(t, root.Depth+1, child.Depth)
}

func TestNewBackwardSetsPreExactlyOneLink(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Null})
	child := state.New(ctx, root, litsat.Cube{litsat.Of(1, true)}, state.LatchAssignment{litsat.Of(2, true)}, false, false)

	assert.Same(t, root, child.Pre)
	assert.Nil(t, child.Next)
}

func TestNewBackwardLastStoresLastInputs(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Null})
	inputs := litsat.Cube{litsat.Of(1, true)}
	tip := state.New(ctx, root, inputs, state.LatchAssignment{litsat.Of(2, true)}, false, true)

	assert.Equal(t, inputs, tip.LastInputs)
	assert.Empty(t, tip.Inputs)
}

func TestCopyResetsDeadMarks(t *testing.T) {
	ctx := newCtx()
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(2, true)})
	root.Dead = true
	root.AddedToDeadSolver = true

	cp := root.Copy()
	assert.False(t, cp.Dead)
	assert.False(t, cp.AddedToDeadSolver)
	assert.NotEqual(t, root.ID, cp.ID)
}

func TestImplyAndIntersect(t *testing.T) {
	ctx := newCtx()
	s := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(2, true)})

	assert.True(t, s.Imply(litsat.Cube{litsat.Of(2, true)}))
	assert.False(t, s.Imply(litsat.Cube{litsat.Of(2, false)}))

	got := s.Intersect(litsat.Cube{litsat.Of(2, true), litsat.Of(2, false)})
	require.Len(t, got, 1)
	assert.Equal(t, litsat.Of(2, true), got[0])
}

func TestLatchesStringUsesDontCare(t *testing.T) {
	ctx := state.NewContext(0, 3)
	s := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(1, true), litsat.Null, litsat.Of(3, false)})
	assert.Equal(t, "1x0", s.LatchesString())
}

func TestPrintEvidenceForward(t *testing.T) {
	ctx := state.NewContext(1, 1)
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(2, false)})
	child := state.New(ctx, root, litsat.Cube{litsat.Of(1, true)}, state.LatchAssignment{litsat.Of(2, true)}, true, false)
	root.Next = child

	var b strings.Builder
	root.PrintEvidence(true, &b)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "0", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "1", lines[2])
}

func TestPrintEvidenceImmediateForward(t *testing.T) {
	ctx := state.NewContext(0, 1)
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(1, true)})

	var b strings.Builder
	root.PrintEvidence(true, &b)
	assert.Equal(t, "1\n\n", b.String())
}
