package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slicesim/slicesim/sim"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Validate a scenario file and print a deployment summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := sim.LoadScenarioSpec(args[0])
		if err != nil {
			logrus.Fatalf("Scenario invalid: %v", err)
		}

		fmt.Printf("Scenario OK: %d stations, %d slices, %d UEs, %d ticks\n",
			len(spec.Stations), len(spec.Slices), spec.UEs.Count, spec.Ticks)
		for _, sl := range spec.Slices {
			fmt.Printf("  slice %d: %s priority=%.2f capacity=%.1f MHz\n",
				sl.ID, sl.Class, sl.Priority, sl.CapacityMHz)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
