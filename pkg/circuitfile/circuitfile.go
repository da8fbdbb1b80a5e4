// Package circuitfile reads the textual transition-system format the
// engine's tests and cmd/car use in place of real AIGER-to-CNF
// construction (out of core scope, spec §1). The format borrows DIMACS
// CNF's line-oriented, whitespace-separated, zero-terminated-clause
// conventions, extended with the handful of extra header fields a
// transition.System needs beyond a bare SAT problem.
//
// Grammar, one directive per line:
//
//	c <comment text>                 -- ignored, may appear anywhere
//	p car <I> <L> <A> <primeOffset>  -- problem line, must appear first
//	i <lit> <lit> ... 0              -- initial-state cube
//	b <lit>                          -- bad-state literal
//	<lit> <lit> ... 0                -- one transition clause
package circuitfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opencar/car/pkg/litsat"
	"github.com/opencar/car/pkg/transition"
)

// ErrSyntax reports a line that doesn't conform to the grammar.
type ErrSyntax struct {
	Line   int
	Reason string
}

func (e ErrSyntax) Error() string {
	return fmt.Sprintf("circuitfile: line %d: %s", e.Line, e.Reason)
}

// Load reads a transition system from r and returns a ready-to-use
// transition.CNFSystem. Validation beyond the grammar itself (e.g. a
// latch index out of range) is delegated to transition.New.
func Load(r io.Reader) (*transition.CNFSystem, error) {
	var (
		haveProblem                          bool
		numInputs, numLatches, numAux, prime int
		init                                 litsat.Cube
		haveBad                               bool
		bad                                   litsat.Lit
		clauses                               []litsat.Clause
		clause                                litsat.Clause
	)

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if haveProblem {
				return nil, ErrSyntax{lineNo, "multiple problem lines"}
			}
			if len(fields) != 6 || fields[1] != "car" {
				return nil, ErrSyntax{lineNo, "problem line must read \"p car I L A primeOffset\""}
			}
			var err error
			if numInputs, err = strconv.Atoi(fields[2]); err != nil {
				return nil, ErrSyntax{lineNo, "malformed input count"}
			}
			if numLatches, err = strconv.Atoi(fields[3]); err != nil {
				return nil, ErrSyntax{lineNo, "malformed latch count"}
			}
			if numAux, err = strconv.Atoi(fields[4]); err != nil {
				return nil, ErrSyntax{lineNo, "malformed aux count"}
			}
			if prime, err = strconv.Atoi(fields[5]); err != nil {
				return nil, ErrSyntax{lineNo, "malformed prime offset"}
			}
			haveProblem = true

		case "i":
			if !haveProblem {
				return nil, ErrSyntax{lineNo, "init line appears before problem line"}
			}
			lits, err := parseTerminatedInts(fields[1:])
			if err != nil {
				return nil, ErrSyntax{lineNo, err.Error()}
			}
			for _, n := range lits {
				init = append(init, litFromInt(n))
			}

		case "b":
			if !haveProblem {
				return nil, ErrSyntax{lineNo, "bad line appears before problem line"}
			}
			if haveBad {
				return nil, ErrSyntax{lineNo, "multiple bad lines"}
			}
			if len(fields) != 2 {
				return nil, ErrSyntax{lineNo, "bad line must read \"b <lit>\""}
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n == 0 {
				return nil, ErrSyntax{lineNo, "malformed bad literal"}
			}
			bad = litFromInt(n)
			haveBad = true

		default:
			if !haveProblem {
				return nil, ErrSyntax{lineNo, "clause appears before problem line"}
			}
			for _, field := range fields {
				n, err := strconv.Atoi(field)
				if err != nil {
					return nil, ErrSyntax{lineNo, fmt.Sprintf("invalid literal %q", field)}
				}
				if n == 0 {
					clauses = append(clauses, clause)
					clause = nil
					continue
				}
				clause = append(clause, litFromInt(n))
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}
	if !haveProblem {
		return nil, ErrSyntax{lineNo, "missing problem line"}
	}
	if !haveBad {
		return nil, ErrSyntax{lineNo, "missing bad line"}
	}

	return transition.New(numInputs, numLatches, numAux, prime, init, bad, clauses)
}

func litFromInt(n int) litsat.Lit {
	if n < 0 {
		return litsat.Of(litsat.Var(-n), false)
	}
	return litsat.Of(litsat.Var(n), true)
}

func parseTerminatedInts(fields []string) ([]int, error) {
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("cube must be terminated with 0")
	}
	out := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
