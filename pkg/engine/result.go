package engine

import (
	"fmt"
	"strings"

	"github.com/opencar/car/pkg/litsat"
)

// Result is the engine's terminal verdict (spec §6 "Outputs from the
// core"). Exactly one of Safe's two branches is meaningful: when Safe is
// true, Invariant/FixedPointIndex/Dump describe the proof; when false,
// Trace holds the counterexample.
type Result struct {
	Safe bool

	// Invariant is the inductive invariant discovered at FixedPointIndex:
	// the clauses of F[FixedPointIndex], which F[FixedPointIndex+1]
	// already contains (spec §4.4 propagation fixed point).
	Invariant       []litsat.Clause
	FixedPointIndex int
	// Dump is a human-readable rendering of the whole O-sequence at the
	// point the verdict was reached (spec §6).
	Dump string

	// Trace is the counterexample: the initial latch assignment followed
	// by one input vector per line, in chronological order (spec §6).
	Trace string
}

// dumpFrames renders every frame of F as one line per element, each
// element as its blocking clause in DIMACS-style signed integers, for the
// Dump field of a SAFE Result (spec §6).
func (e *Engine) dumpFrames() string {
	var b strings.Builder
	for i, f := range e.F.Frames() {
		fmt.Fprintf(&b, "F[%d]:\n", i)
		for _, el := range f.Elements() {
			fmt.Fprintf(&b, "  %s\n", clauseString(el.Cube.Negate()))
		}
	}
	return b.String()
}

func clauseString(cl litsat.Clause) string {
	parts := make([]string, len(cl))
	for i, l := range cl {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
