package cmd

import (
	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all gear metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display formulas and definitions for all gear metrics and objectives",
	Long: `Show the definitions and formulas behind every number gearpath prints.

Covers:
- Gear ratio, gain ratio, gear inches, development and speed
- The objectives a best path can minimize, marking the active one
- The search strategies and the distinct step threshold
- The step labels used in path tables

No drivetrain is required. This is purely informational.

Examples:
  # Show the definitions
  gearpath metrics

  # Units and objective follow the flags
  gearpath metrics --units imperial --objective max`,
	PreRunE: optionalDrivetrainSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
