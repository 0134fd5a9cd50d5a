package cmd

import (
	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/spf13/cobra"
)

// pathCmd prints the best shifting path of each drivetrain.
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the best shifting path through a drivetrain.",
	Long: `Select the ordered, non-redundant subset of gears with the most even steps.

The path starts on the smallest chainring and shifts to each larger one once.
Gears less than --threshold percent harder than the previous one are skipped.

Strategies:
- greedy: picks the best shift position one chainring at a time (fast)
- exhaustive: scores every valid path, bounded by --max-paths

Examples:
  # Best path of a 2x11 road drivetrain
  gearpath path --fronts 34,50 --rears 11,12,13,14,15,17,19,21,24,28

  # Minimize the largest step instead of the step spread
  gearpath path --fronts 30,46 --rears 11,13,15,17,19,22,25,28,32,36 --objective max

  # Include the redundant gears
  gearpath path --fronts 22,32,44 --rears 11,13,15,17,20,23,26,30,34 --all

  # Export the path to Parquet
  gearpath path --fronts 30,46 --rears 11,13,15,17,19,22,25,28,32,36 --output parquet --output-file path.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePath(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot compute best path", err)
		}
	},
}
