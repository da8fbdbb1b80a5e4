// Package litsat provides the literal/cube/clause vocabulary shared by the
// frame, state and engine packages: lightweight value types for
// signed-integer literals and the ordered conjunctions/disjunctions built
// from them.
package litsat

import "fmt"

// Var is a variable index. Variable indices partition into inputs
// [1..I], latches [I+1..I+L], and auxiliaries [I+L+1..].
type Var uint32

// Lit is a non-zero signed integer literal: +v and -v denote the positive
// and negative polarity of variable v. The zero value is never a valid
// literal; Null identifies "no literal" where one is needed as a sentinel.
type Lit int32

// Null is the literal equivalent of a nil pointer: it never denotes a real
// variable and is returned by lookups that found nothing.
const Null Lit = 0

// Of builds the literal for variable v with the given polarity.
func Of(v Var, positive bool) Lit {
	if positive {
		return Lit(v)
	}
	return Lit(-int32(v))
}

// Var returns the variable underlying l, discarding polarity.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPos reports whether l has positive polarity.
func (l Lit) IsPos() bool {
	return l > 0
}

// Not returns the negation of l.
func (l Lit) Not() Lit {
	return -l
}

// String renders l in conventional DIMACS form.
func (l Lit) String() string {
	return fmt.Sprintf("%d", int32(l))
}
