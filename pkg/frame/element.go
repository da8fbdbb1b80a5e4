// Package frame implements the O-sequence (spec §3/§4.2): an indexed list
// of Frames, each a de-duplicating, subsumption-aware set of blocking
// clauses, plus the reached-state tree (the B-sequence).
package frame

import (
	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/state"
)

// Element is a single blocking clause living in one or more frames. It
// owns the cube describing the negated witness the clause blocks, whether
// it has already been propagated to the next frame, the set of frame
// levels it currently belongs to, and the states whose SAT assumption
// prefix references it — ported from the source's FrameElement.
type Element struct {
	Cube       litsat.Cube
	ActVar     litsat.Var
	propagated bool
	levels     map[int]struct{}
	states     []*state.State
}

// NewElement returns an Element over cu, not yet propagated and not yet a
// member of any frame level. ActVar is left zero; the engine assigns one
// lazily the first time the element must be wired into a solver.
func NewElement(cu litsat.Cube) *Element {
	return &Element{Cube: cu, levels: make(map[int]struct{})}
}

// Propagated reports whether this element has already been pushed to the
// next frame.
func (e *Element) Propagated() bool { return e.propagated }

// SetPropagated updates the propagated flag.
func (e *Element) SetPropagated(v bool) { e.propagated = v }

// AddLevel records that e now belongs to frame level.
func (e *Element) AddLevel(level int) { e.levels[level] = struct{}{} }

// RemoveLevel records that e no longer belongs to frame level.
func (e *Element) RemoveLevel(level int) { delete(e.levels, level) }

// InLevel reports whether e currently belongs to frame level.
func (e *Element) InLevel(level int) bool {
	_, ok := e.levels[level]
	return ok
}

// AddState records that s's assumption prefix references e.
func (e *Element) AddState(s *state.State) {
	e.states = append(e.states, s)
}

// States returns every state whose assumption prefix references e.
func (e *Element) States() []*state.State { return e.states }
