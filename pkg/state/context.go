// Package state implements the search-tree node described by spec §3/§4.3:
// a State carries a (possibly partial) latch assignment, the input witness
// that led to it, parent/child links, depth, and the auxiliary marks the
// engine's dead-state pruning and work-scheduling heuristics need.
package state

// Context is the engine-owned replacement for the source's static
// num_inputs_/num_latches_/id_counter_ members (spec §9, "Global
// counters"): every State is constructed through a Context so that
// multiple engines — and therefore multiple independent searches — can run
// in the same process without interfering with one another's id spaces.
type Context struct {
	NumInputs  int
	NumLatches int

	nextID int
}

// NewContext returns a Context for a transition system with the given
// number of input and latch variables. State ids it allocates start at 1
// and increase monotonically.
func NewContext(numInputs, numLatches int) *Context {
	return &Context{NumInputs: numInputs, NumLatches: numLatches, nextID: 1}
}

func (c *Context) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}
