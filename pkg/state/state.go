package state

import (
	"fmt"
	"io"

	"github.com/opencar/car/pkg/litsat"
)

// LatchAssignment is a dense, per-latch assignment: index i holds the
// literal for latch i (1-based variable I+i+1, positive or negative), or
// litsat.Null if that latch is a don't-care. This mirrors the source's
// State::s_ ("contains all latches, but if the value of latch l is not
// cared, assign it to -1") with 0 standing in for the sentinel, matching
// litsat.Null.
type LatchAssignment []litsat.Lit

// State is a node of the search tree (spec §3/§4.3).
type State struct {
	ctx *Context

	ID    int
	Depth int

	Latches    LatchAssignment
	Inputs     litsat.Cube
	LastInputs litsat.Cube

	Pre  *State
	Next *State

	Init              bool
	Dead              bool
	AddedToDeadSolver bool

	WorkLevel int
	WorkCount int

	Nexts       litsat.Cube
	HasNexts    bool
	AssumePrefix litsat.Cube
}

// NewRoot returns a root state: no parent, depth 0, carrying latches as
// its assignment.
func NewRoot(ctx *Context, latches LatchAssignment) *State {
	return &State{
		ctx:     ctx,
		ID:      ctx.allocID(),
		Depth:   0,
		Latches: latches,
	}
}

// New returns a state reached from s via inputs, with the given latch
// assignment. If forward, the new state is a successor of s (Next = s);
// otherwise a predecessor (Pre = s). When last is true and the search is
// backward, inputs are stored as LastInputs (the terminal trace's own
// witness) rather than Inputs.
func New(ctx *Context, s *State, inputs litsat.Cube, latches LatchAssignment, forward, last bool) *State {
	ns := &State{
		ctx:     ctx,
		ID:      ctx.allocID(),
		Latches: latches,
	}
	if forward {
		ns.Next = s
	} else {
		ns.Pre = s
		if last {
			ns.LastInputs = inputs
		}
	}
	if forward || !last {
		ns.Inputs = inputs
	}
	if s == nil {
		ns.Depth = 0
	} else {
		ns.Depth = s.Depth + 1
	}
	return ns
}

// Copy returns a shallow copy of s with Dead and AddedToDeadSolver reset,
// matching the source's State(State*) copy constructor.
func (s *State) Copy() *State {
	cp := *s
	cp.ID = s.ctx.allocID()
	cp.Dead = false
	cp.AddedToDeadSolver = false
	return &cp
}

// latchIndex maps a latch literal to its position in a LatchAssignment:
// index = |l| - numInputs - 1, asserted non-negative (spec §4.3).
func (s *State) latchIndex(l litsat.Lit) int {
	idx := int(l.Var()) - s.ctx.NumInputs - 1
	if idx < 0 {
		panic(fmt.Sprintf("litsat: literal %v is not a latch literal for %d inputs", l, s.ctx.NumInputs))
	}
	return idx
}

// Imply reports whether every literal of cu — all latch literals — matches
// s's latch assignment at the corresponding index.
func (s *State) Imply(cu litsat.Cube) bool {
	for _, l := range cu {
		idx := s.latchIndex(l)
		if idx >= len(s.Latches) || s.Latches[idx] != l {
			return false
		}
	}
	return true
}

// Intersect returns the sub-cube of cu whose literals match s's latch
// assignment.
func (s *State) Intersect(cu litsat.Cube) litsat.Cube {
	var res litsat.Cube
	for _, l := range cu {
		idx := s.latchIndex(l)
		if idx < len(s.Latches) && s.Latches[idx] == l {
			res = append(res, l)
		}
	}
	return res
}

// InputsString renders Inputs as a fixed-width '0'/'1' string, one
// character per literal in order.
func (s *State) InputsString() string {
	return cubeBits(s.Inputs)
}

// LastInputsString renders LastInputs the same way.
func (s *State) LastInputsString() string {
	return cubeBits(s.LastInputs)
}

func cubeBits(cu litsat.Cube) string {
	buf := make([]byte, len(cu))
	for i, l := range cu {
		if l.IsPos() {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// LatchesString renders the dense latch assignment as one character per
// latch, in latch order: '1'/'0' for an assigned latch, 'x' for a
// don't-care one (spec §4.3).
func (s *State) LatchesString() string {
	buf := make([]byte, s.ctx.NumLatches)
	for i := range buf {
		if i >= len(s.Latches) || s.Latches[i] == litsat.Null {
			buf[i] = 'x'
			continue
		}
		if s.Latches[i].IsPos() {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// PrintEvidence writes the counterexample trace rooted at/terminating at
// s: initial latches followed by input vectors in chronological order.
// Forward traces walk Next links from the root (s is the root), following
// only links that lead one level deeper. Backward traces start at the tip
// (s is the tip, the state found consistent with the initial states): its
// latches, its LastInputs, then the Inputs of each state met walking Pre
// links toward the root, the root itself contributing no line.
func (s *State) PrintEvidence(forward bool, w io.Writer) {
	if forward {
		nx := s
		fmt.Fprintln(w, nx.LatchesString())
		fmt.Fprintln(w, nx.InputsString())
		for nx.Next != nil && nx.Next.Depth > nx.Depth {
			nx = nx.Next
			fmt.Fprintln(w, nx.InputsString())
		}
		return
	}

	fmt.Fprintln(w, s.LatchesString())
	fmt.Fprintln(w, s.LastInputsString())
	for nx := s.Pre; nx != nil && nx.Pre != nil; nx = nx.Pre {
		fmt.Fprintln(w, nx.InputsString())
	}
}
