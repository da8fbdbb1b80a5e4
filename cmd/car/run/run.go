// Package run implements the car CLI's "run" subcommand: load a
// circuitfile, drive the engine to a verdict, and render SAFE/UNSAFE per
// spec §6.
package run

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opencar/car/pkg/circuitfile"
	"github.com/opencar/car/pkg/engine"
	"github.com/opencar/car/pkg/stats"
)

// Exit codes per spec §6 "CLI surface": 0 SAFE, 1 UNSAFE, >=2 internal
// failure (SAT UNKNOWN, assertion, parse error).
const (
	ExitSafe            = 0
	ExitUnsafe          = 1
	ExitInternalFailure = 2
)

// NewCmd returns the "run" subcommand.
func NewCmd() *cobra.Command {
	var (
		backward  bool
		noDead    bool
		noPartial bool
		metrics   bool
		dumpSys   bool
	)

	cmd := &cobra.Command{
		Use:   "run <circuitfile>",
		Short: "decide whether a circuit's bad states are reachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runFile(args[0], backward, noDead, noPartial, metrics, dumpSys)
			if err != nil {
				log.WithError(err).Error("car run failed")
			}
			os.Exit(code)
			return nil
		},
	}

	cmd.Flags().BoolVar(&backward, "backward", true, "search backward from the bad states (default); --backward=false searches forward from the initial states")
	cmd.Flags().BoolVar(&noDead, "no-dead-pruning", false, "disable dead-state pruning")
	cmd.Flags().BoolVar(&noPartial, "no-partial-states", false, "disable partial-state generalisation")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "report solve statistics via logrus instead of discarding them")
	cmd.Flags().BoolVar(&dumpSys, "dump-system", false, "pretty-print the parsed transition system to stderr before solving")

	return cmd
}

func runFile(path string, backward, noDead, noPartial, metrics, dumpSys bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return ExitInternalFailure, err
	}
	defer f.Close()

	sys, err := circuitfile.Load(f)
	if err != nil {
		return ExitInternalFailure, err
	}

	if dumpSys {
		// grounded on cespare/saturday's use of pretty.Println to dump
		// solver-internal state while debugging a DIMACS run
		pretty.Println(sys)
	}

	var sink stats.Sink
	if metrics {
		sink = stats.NewLoggingSink(log.StandardLogger())
	}

	dir := engine.Forward
	if backward {
		dir = engine.Backward
	}

	e := engine.New(sys, engine.Config{
		Direction:               dir,
		Sink:                    sink,
		DisableDeadStatePruning: noDead,
		DisablePartialStates:    noPartial,
	})

	result, err := e.Run()
	if err != nil {
		return ExitInternalFailure, err
	}

	if result.Safe {
		fmt.Printf("SAFE (fixed point at F[%d])\n", result.FixedPointIndex)
		fmt.Print(result.Dump)
		return ExitSafe, nil
	}

	fmt.Println("UNSAFE")
	fmt.Print(result.Trace)
	return ExitUnsafe, nil
}
