package satsolver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniBackend adapts *gini.Gini to the backend interface. This is the only
// shipped backend: go-air/gini is the incremental SAT engine
// operator-lifecycle-manager's own solver package wraps
// (pkg/controller/registry/resolver/solver/lit_mapping.go), and its
// Assume/Solve/Value/Why shape is exactly the capability set this
// package's backend interface needs.
type giniBackend struct {
	g *gini.Gini
}

func newGiniBackend() *giniBackend {
	return &giniBackend{g: gini.New()}
}

func (b *giniBackend) Lit() z.Lit            { return b.g.Lit() }
func (b *giniBackend) Add(m z.Lit)           { b.g.Add(m) }
func (b *giniBackend) Assume(ms ...z.Lit)    { b.g.Assume(ms...) }
func (b *giniBackend) Solve() int            { return b.g.Solve() }
func (b *giniBackend) Value(m z.Lit) bool    { return b.g.Value(m) }
func (b *giniBackend) Why(dst []z.Lit) []z.Lit {
	return b.g.Why(dst)
}

var _ backend = (*giniBackend)(nil)
