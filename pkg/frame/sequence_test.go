package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencar/car/pkg/frame"
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/state"
)

func TestSequenceExtend(t *testing.T) {
	seq := frame.NewSequence(frame.New())
	assert.Equal(t, 1, seq.Len())

	seq.Extend()
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, 0, seq.At(1).Len())
}

func TestReachedAppendOrdersFIFO(t *testing.T) {
	ctx := state.NewContext(1, 1)
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Of(2, true)})
	r := frame.NewReached(root)

	first := state.New(ctx, root, nil, state.LatchAssignment{litsat.Null}, true, false)
	second := state.New(ctx, root, nil, state.LatchAssignment{litsat.Null}, true, false)
	r.Append(first)
	r.Append(second)

	lvl := r.Level(1)
	if assert.Len(t, lvl, 2) {
		assert.Same(t, first, lvl[0])
		assert.Same(t, second, lvl[1])
	}
	assert.Equal(t, 1, r.MaxDepth())
}

func TestReachedLevelOutOfRange(t *testing.T) {
	ctx := state.NewContext(1, 1)
	root := state.NewRoot(ctx, state.LatchAssignment{litsat.Null})
	r := frame.NewReached(root)

	assert.Nil(t, r.Level(-1))
	assert.Nil(t, r.Level(5))
}
