package engine

import (
	"strings"

	"github.com/opencar/car/pkg/state"
)

// buildUnsafe renders tip's counterexample trace and returns the terminal
// UNSAFE Result (spec §6 "Outputs from the core"). tip must already carry
// the chain of Pre/Next links back to the root built by Engine.Run.
func (e *Engine) buildUnsafe(tip *state.State) *Result {
	var b strings.Builder
	tip.PrintEvidence(e.dir == Forward, &b)
	return &Result{
		Safe:  false,
		Trace: b.String(),
		Dump:  e.dumpFrames(),
	}
}
