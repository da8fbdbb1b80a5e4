package frame

import "github.com/opencar/car/pkg/state"

// Sequence is the O-sequence F[0]..F[k] (spec §3). F[0] represents either
// the initial states (forward search) or the bad states (backward
// search); every later frame over-approximates states reachable in more
// steps from that starting condition.
type Sequence struct {
	frames []*Frame
}

// NewSequence returns a Sequence containing a single starting frame,
// populated by the caller with the initial/bad-state blocking clauses.
func NewSequence(start *Frame) *Sequence {
	return &Sequence{frames: []*Frame{start}}
}

// Len returns the number of frames, including F[0].
func (s *Sequence) Len() int { return len(s.frames) }

// At returns F[i].
func (s *Sequence) At(i int) *Frame { return s.frames[i] }

// Extend appends a new, empty frame and returns it — used when the
// engine's frame_level exceeds the current sequence length (spec §4.4
// step 5).
func (s *Sequence) Extend() *Frame {
	f := New()
	s.frames = append(s.frames, f)
	return f
}

// Frames returns the underlying frame slice. The caller must not mutate
// it directly; use Extend and Frame.Add instead.
func (s *Sequence) Frames() []*Frame { return s.frames }

// Reached is the B-sequence: the tree of explored states, indexed by
// depth (spec §3).
type Reached struct {
	levels [][]*state.State
}

// NewReached returns a Reached tree containing only root at depth 0.
func NewReached(root *state.State) *Reached {
	return &Reached{levels: [][]*state.State{{root}}}
}

// Append records s at its Depth, extending the tree with empty levels if
// necessary.
func (r *Reached) Append(s *state.State) {
	for len(r.levels) <= s.Depth {
		r.levels = append(r.levels, nil)
	}
	r.levels[s.Depth] = append(r.levels[s.Depth], s)
}

// Level returns every state at the given depth, in the FIFO insertion
// order the engine's breadth-first frontier selection relies on.
func (r *Reached) Level(depth int) []*state.State {
	if depth < 0 || depth >= len(r.levels) {
		return nil
	}
	return r.levels[depth]
}

// MaxDepth returns the deepest level currently populated.
func (r *Reached) MaxDepth() int { return len(r.levels) - 1 }
