package cmd

import (
	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/spf13/cobra"
)

// gearsCmd prints the full gear matrix of each drivetrain.
var gearsCmd = &cobra.Command{
	Use:   "gears",
	Short: "Show every gear of a drivetrain, marking the best path.",
	Long: `Compute every chainring, hub and cog combination of each drivetrain.

Each row is one chainring (and hub ratio) across the cassette, with:
- Gain ratio of every gear
- Step from the previous cog
- Speed at each cadence
- A marker on the gears of the best path

Examples:
  # 2x10 gravel drivetrain on 700x48 tires
  gearpath gears --fronts 30,46 --rears 11,13,15,17,19,22,25,28,32,36 --bsd 584 --tire 48

  # Speeds at three cadences in mph
  gearpath gears --fronts 34,50 --rears 11,12,13,14,15,17,19,21,24,28 --rpm 80,90,100 --units imperial

  # Every drivetrain of the config file as JSON
  gearpath gears --config .gearpath.yaml --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGears(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot compute gears", err)
		}
	},
}
