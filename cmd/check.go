package cmd

import (
	"errors"
	"os"

	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce step limits on best paths (fails on violations)",
	Long: `Check the best path of every drivetrain against a step policy.

Fails with a non-zero exit code when a best path has:
- A step above --max-step percent (default 20)
- Fewer than --min-gears gears (disabled by default)

Use cases:
- Validate a catalog of builds before publishing it
- Guard a drivetrain setup in CI
- Reject setups with a jarring front shift

Examples:
  # Default policy
  gearpath check --fronts 30,46 --rears 11,13,15,17,19,22,25,28,32,36

  # Strict policy for a road catalog
  gearpath check --config catalog.yaml --max-step 12 --min-gears 14`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := core.ExecuteCheck(rootCtx, cfg, writer)
		if errors.Is(err, core.ErrCheckFailed) {
			// The violations are already written.
			os.Exit(1)
		}
		if err != nil {
			contract.LogFatal("Step check failed", err)
		}
	},
}
