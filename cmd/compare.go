package cmd

import (
	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd compares the best paths of several drivetrains.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the best paths of several drivetrains.",
	Long: `Compare every configured drivetrain against the first one.

Drivetrains come from the 'drivetrains' list of the config file, followed by
the one given with --fronts and --rears. For each drivetrain it shows:
- Easiest and hardest gain ratio, and their deltas against the first drivetrain
- Range multiple and best path size
- Mean and largest step
- Path gears inside the --range gain ratio window

Examples:
  # Compare the drivetrains of the config file
  gearpath compare --config bikes.yaml

  # Add a candidate drivetrain to the configured ones
  gearpath compare --fronts 32,48 --rears 10,12,14,16,18,21,24,28,33 --label candidate

  # Focus on climbing gears
  gearpath compare --range 1,2.5`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot compare drivetrains", err)
		}
	},
}
