// Package cmd defines the command-line interface for gearpath.
package cmd

import (
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gearsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("fronts", "", "Chainring teeth, e.g. '30,46'")
	rootCmd.PersistentFlags().String("rears", "", "Cog teeth, e.g. '11,13,15,17,19,22,25,28,32,36'")
	rootCmd.PersistentFlags().String("hubs", "", "Internal hub ratios, e.g. '0.75,1,1.33'")
	rootCmd.PersistentFlags().String("label", "", "Display name of the drivetrain given by flags")
	rootCmd.PersistentFlags().Float64("bsd", schema.DefaultBSDMM, "Rim bead seat diameter in mm")
	rootCmd.PersistentFlags().Float64("tire", schema.DefaultTireWidthMM, "Tire width in mm")
	rootCmd.PersistentFlags().Float64("wheel-radius", 0, "Wheel radius in mm (overrides --bsd and --tire)")
	rootCmd.PersistentFlags().Float64("crank", schema.DefaultCrankLengthMM, "Crank length in mm")
	rootCmd.PersistentFlags().String("strategy", string(schema.GreedyStrategy), "Search strategy: greedy or exhaustive")
	rootCmd.PersistentFlags().String("objective", string(schema.StdDevObjective), "Objective minimized by the best path: stddev or sum or max")
	rootCmd.PersistentFlags().Float64("threshold", schema.DefaultThresholdPercent, "Minimum step between path gears in percent")
	rootCmd.PersistentFlags().Int("max-paths", contract.DefaultMaxPaths, "Largest number of candidate paths scored by the exhaustive search")
	rootCmd.PersistentFlags().String("rpm", "85,95", "Cadences for speed columns, comma separated")
	rootCmd.PersistentFlags().String("units", string(schema.MetricUnits), "Units: metric or imperial")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of pathCmd to Viper
	pathCmd.Flags().Bool("all", false, "Append the gears left out of the best path")
	if err := viper.BindPFlags(pathCmd.Flags()); err != nil {
		contract.LogFatal("Error binding path flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("range", "", "Gain ratio window as 'low,high' (default 1,4)")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Float64("max-step", schema.DefaultMaxStepPercent, "Largest allowed step between path gears in percent")
	checkCmd.Flags().Int("min-gears", 0, "Smallest allowed best path size (0 disables)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}
}
