// Command car is the thin command-line driver around the CAR engine (spec
// §1 "Out of scope" / §6 "CLI surface"). It parses a circuitfile, runs the
// engine, and maps the verdict onto the exit-code convention spec §6
// describes: 0 for SAFE, 1 for UNSAFE, >=2 for an internal failure.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opencar/car/cmd/car/run"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "car",
		Short: "car",
		Long:  `car decides safety properties of finite-state sequential circuits by Complementary Approximate Reachability.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(run.NewCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(run.ExitInternalFailure)
	}
}
