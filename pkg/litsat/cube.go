package litsat

// Cube is an ordered sequence of literals interpreted as a conjunction. It
// is used to describe partial assignments, states, and counter-models.
// A well-formed Cube is consistent: it contains neither a literal nor its
// negation.
type Cube []Lit

// Consistent reports whether cu contains no literal alongside its negation.
func (cu Cube) Consistent() bool {
	seen := make(map[Var]bool, len(cu))
	for _, l := range cu {
		if neg, ok := seen[l.Var()]; ok {
			if neg != !l.IsPos() {
				return false
			}
			continue
		}
		seen[l.Var()] = !l.IsPos()
	}
	return true
}

// Clone returns an independent copy of cu.
func (cu Cube) Clone() Cube {
	out := make(Cube, len(cu))
	copy(out, cu)
	return out
}

// Negate returns the Clause obtained by negating every literal of cu — the
// blocking clause that rules out exactly the assignments satisfying cu.
func (cu Cube) Negate() Clause {
	out := make(Clause, len(cu))
	for i, l := range cu {
		out[i] = l.Not()
	}
	return out
}

// Contains reports whether cu contains the literal l.
func (cu Cube) Contains(l Lit) bool {
	for _, m := range cu {
		if m == l {
			return true
		}
	}
	return false
}

// AsSet returns cu's literals as a set, used by subsumption and
// intersection tests that don't care about order.
func (cu Cube) AsSet() map[Lit]struct{} {
	set := make(map[Lit]struct{}, len(cu))
	for _, l := range cu {
		set[l] = struct{}{}
	}
	return set
}
