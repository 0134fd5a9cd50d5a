package contract

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/huangsam/gearpath/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 3
	MaxCadences      = 4
	MaxDrivetrains   = 16

	// DefaultMaxPaths bounds the exhaustive search per drivetrain.
	DefaultMaxPaths = 1 << 20
)

// ErrNoDrivetrain is returned when neither flags nor the config file describe a drivetrain.
var ErrNoDrivetrain = errors.New("no drivetrain configured")

// mmPerMeter converts the millimetre inputs to meters.
const mmPerMeter = 1000.0

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// DrivetrainConfig is a validated drivetrain definition. Lengths are in meters.
type DrivetrainConfig struct {
	ID               string
	Label            string
	Fronts           []int
	Rears            []int
	HubRatios        []float64
	BeadSeatDiameter float64
	TireWidth        float64
	WheelRadius      float64 // Overrides BeadSeatDiameter and TireWidth when positive
	CrankLength      float64
}

// Name returns the label, the ID, or a chainring/cassette summary.
func (d DrivetrainConfig) Name() string {
	switch {
	case d.Label != "":
		return d.Label
	case d.ID != "":
		return d.ID
	}
	return schema.FormatInts(d.Fronts) + " x " + schema.FormatInts(d.Rears)
}

// Config holds the runtime configuration for every command.
// This struct remains the "final, validated" config.
type Config struct {
	Drivetrains []DrivetrainConfig

	Strategy  schema.SearchStrategy
	Objective schema.ObjectiveName
	Threshold float64 // Minimum relative step between path gears, e.g. 0.05
	MaxPaths  int

	RPMs  []float64
	Units schema.Units

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int  // Terminal width override (0 = auto-detect)
	UseColors  bool // Enable colored labels in table output

	ShowAll bool // Append the gears left out of the best path

	RangeLow  float64 // Gain ratio window of the compare command
	RangeHigh float64

	MaxStep  float64 // Largest relative step allowed by the check command
	MinGears int     // Smallest best path allowed by the check command, 0 disables
}

// DrivetrainRawInput holds one drivetrain entry of the YAML config file.
// Geometry fields are pointers so that missing values fall back to the top-level flags.
type DrivetrainRawInput struct {
	ID          string    `mapstructure:"id"`
	Label       string    `mapstructure:"label"`
	Fronts      []int     `mapstructure:"fronts"`
	Rears       []int     `mapstructure:"rears"`
	Hubs        []float64 `mapstructure:"hubs"`
	BSD         *float64  `mapstructure:"bsd"`
	Tire        *float64  `mapstructure:"tire"`
	WheelRadius *float64  `mapstructure:"wheel-radius"`
	Crank       *float64  `mapstructure:"crank"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Drivetrain fields from rootCmd.PersistentFlags() ---
	Fronts      string  `mapstructure:"fronts"`
	Rears       string  `mapstructure:"rears"`
	Hubs        string  `mapstructure:"hubs"`
	Label       string  `mapstructure:"label"`
	BSD         float64 `mapstructure:"bsd"`
	Tire        float64 `mapstructure:"tire"`
	WheelRadius float64 `mapstructure:"wheel-radius"`
	Crank       float64 `mapstructure:"crank"`

	// --- Selection fields from rootCmd.PersistentFlags() ---
	Strategy  string  `mapstructure:"strategy"`
	Objective string  `mapstructure:"objective"`
	Threshold float64 `mapstructure:"threshold"`
	MaxPaths  int     `mapstructure:"max-paths"`

	// --- Presentation fields from rootCmd.PersistentFlags() ---
	RPM        string `mapstructure:"rpm"`
	Units      string `mapstructure:"units"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from pathCmd.Flags() ---
	All bool `mapstructure:"all"`

	// --- Fields from compareCmd.Flags() ---
	Range string `mapstructure:"range"`

	// --- Fields from checkCmd.Flags() ---
	MaxStep  float64 `mapstructure:"max-step"`
	MinGears int     `mapstructure:"min-gears"`

	// --- Drivetrains from config file ---
	Drivetrains []DrivetrainRawInput `mapstructure:"drivetrains"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.RPMs = slices.Clone(c.RPMs)
	if c.Drivetrains != nil {
		clone.Drivetrains = make([]DrivetrainConfig, len(c.Drivetrains))
		for i, d := range c.Drivetrains {
			d.Fronts = slices.Clone(d.Fronts)
			d.Rears = slices.Clone(d.Rears)
			d.HubRatios = slices.Clone(d.HubRatios)
			clone.Drivetrains[i] = d
		}
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processCadences(cfg, input); err != nil {
		return err
	}
	if err := processComparisonRange(cfg, input); err != nil {
		return err
	}
	if err := processCheckPolicy(cfg, input); err != nil {
		return err
	}
	if err := processDrivetrains(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the presentation fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.ShowAll = input.All

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using parquet output")
	}

	// --- 4. Units Validation ---
	cfg.Units = schema.Units(strings.ToLower(input.Units))
	if cfg.Units == "" {
		cfg.Units = schema.MetricUnits
	}
	if _, ok := schema.ValidUnits[cfg.Units]; !ok {
		return fmt.Errorf("invalid units '%s'. must be metric, imperial", input.Units)
	}

	return nil
}

// processSelection validates the path selection policy.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	cfg.Strategy = schema.SearchStrategy(strings.ToLower(input.Strategy))
	if cfg.Strategy == "" {
		cfg.Strategy = schema.GreedyStrategy
	}
	if _, ok := schema.ValidStrategies[cfg.Strategy]; !ok {
		return fmt.Errorf("invalid strategy '%s'. must be greedy, exhaustive", input.Strategy)
	}

	cfg.Objective = schema.ObjectiveName(strings.ToLower(input.Objective))
	if cfg.Objective == "" {
		cfg.Objective = schema.StdDevObjective
	}
	if _, ok := schema.ValidObjectives[cfg.Objective]; !ok {
		return fmt.Errorf("invalid objective '%s'. must be stddev, sum, max", input.Objective)
	}

	threshold, err := percentToFraction("threshold", input.Threshold)
	if err != nil {
		return err
	}
	cfg.Threshold = threshold

	if input.MaxPaths < 0 {
		return fmt.Errorf("max-paths cannot be negative (received %d)", input.MaxPaths)
	}
	cfg.MaxPaths = input.MaxPaths
	if cfg.MaxPaths == 0 {
		cfg.MaxPaths = DefaultMaxPaths
	}
	return nil
}

// processCadences parses the cadence list used for speed columns.
func processCadences(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.RPM) == "" {
		cfg.RPMs = slices.Clone(schema.DefaultRPMs)
		return nil
	}
	rpms, err := ParseFloatList(input.RPM)
	if err != nil {
		return fmt.Errorf("invalid --rpm value: %w", err)
	}
	if len(rpms) > MaxCadences {
		return fmt.Errorf("at most %d cadences are supported (received %d)", MaxCadences, len(rpms))
	}
	for _, rpm := range rpms {
		if rpm <= 0 || math.IsInf(rpm, 0) || math.IsNaN(rpm) {
			return fmt.Errorf("cadence must be positive (received %v)", rpm)
		}
	}
	cfg.RPMs = rpms
	return nil
}

// processComparisonRange parses the gain ratio window of the compare command.
func processComparisonRange(cfg *Config, input *ConfigRawInput) error {
	cfg.RangeLow, cfg.RangeHigh = schema.DefaultRangeLow, schema.DefaultRangeHigh
	if strings.TrimSpace(input.Range) == "" {
		return nil
	}
	low, high, err := ParseRange(input.Range)
	if err != nil {
		return fmt.Errorf("invalid --range value: %w", err)
	}
	cfg.RangeLow, cfg.RangeHigh = low, high
	return nil
}

// processCheckPolicy validates the limits of the check command.
func processCheckPolicy(cfg *Config, input *ConfigRawInput) error {
	maxStep := input.MaxStep
	if maxStep == 0 {
		maxStep = schema.DefaultMaxStepPercent
	}
	step, err := percentToFraction("max-step", maxStep)
	if err != nil {
		return err
	}
	cfg.MaxStep = step

	if input.MinGears < 0 {
		return fmt.Errorf("min-gears cannot be negative (received %d)", input.MinGears)
	}
	cfg.MinGears = input.MinGears
	return nil
}

// processDrivetrains merges the config file drivetrains with the one given by flags.
func processDrivetrains(cfg *Config, input *ConfigRawInput) error {
	cfg.Drivetrains = nil

	for i, raw := range input.Drivetrains {
		d, err := ProcessDrivetrainRawInput(raw, input)
		if err != nil {
			return fmt.Errorf("drivetrain #%d: %w", i+1, err)
		}
		if d.ID == "" {
			d.ID = fmt.Sprintf("drivetrain-%d", i+1)
		}
		cfg.Drivetrains = append(cfg.Drivetrains, d)
	}

	if strings.TrimSpace(input.Fronts) != "" || strings.TrimSpace(input.Rears) != "" {
		d, err := ProcessDrivetrainFlags(input)
		if err != nil {
			return err
		}
		cfg.Drivetrains = append(cfg.Drivetrains, d)
	}

	if len(cfg.Drivetrains) == 0 {
		return fmt.Errorf("%w: pass --fronts and --rears or define drivetrains in .gearpath.yaml", ErrNoDrivetrain)
	}
	if len(cfg.Drivetrains) > MaxDrivetrains {
		return fmt.Errorf("at most %d drivetrains are supported (received %d)", MaxDrivetrains, len(cfg.Drivetrains))
	}
	return nil
}

// ProcessDrivetrainFlags builds the drivetrain described by the top-level flags.
func ProcessDrivetrainFlags(input *ConfigRawInput) (DrivetrainConfig, error) {
	fronts, err := ParseIntList(input.Fronts)
	if err != nil {
		return DrivetrainConfig{}, fmt.Errorf("invalid --fronts value: %w", err)
	}
	rears, err := ParseIntList(input.Rears)
	if err != nil {
		return DrivetrainConfig{}, fmt.Errorf("invalid --rears value: %w", err)
	}
	var hubs []float64
	if strings.TrimSpace(input.Hubs) != "" {
		if hubs, err = ParseFloatList(input.Hubs); err != nil {
			return DrivetrainConfig{}, fmt.Errorf("invalid --hubs value: %w", err)
		}
	}
	return ProcessDrivetrainRawInput(DrivetrainRawInput{
		ID:     "cli",
		Label:  input.Label,
		Fronts: fronts,
		Rears:  rears,
		Hubs:   hubs,
	}, input)
}

// ProcessDrivetrainRawInput validates one drivetrain entry, filling missing geometry from defaults.
// All lengths are given in millimetres and converted to meters.
func ProcessDrivetrainRawInput(raw DrivetrainRawInput, defaults *ConfigRawInput) (DrivetrainConfig, error) {
	if len(raw.Fronts) == 0 {
		return DrivetrainConfig{}, fmt.Errorf("at least one chainring is required")
	}
	if len(raw.Rears) == 0 {
		return DrivetrainConfig{}, fmt.Errorf("at least one cog is required")
	}

	bsd := pick(raw.BSD, defaults.BSD)
	tire := pick(raw.Tire, defaults.Tire)
	wheelRadius := pick(raw.WheelRadius, defaults.WheelRadius)
	crank := pick(raw.Crank, defaults.Crank)

	lengths := []struct {
		name  string
		value float64
	}{{"bsd", bsd}, {"tire", tire}, {"wheel-radius", wheelRadius}, {"crank", crank}}
	for _, l := range lengths {
		if l.value < 0 || math.IsNaN(l.value) || math.IsInf(l.value, 0) {
			return DrivetrainConfig{}, fmt.Errorf("%s must be a non-negative length in mm (received %v)", l.name, l.value)
		}
	}
	if crank == 0 {
		return DrivetrainConfig{}, fmt.Errorf("crank length is required")
	}
	if wheelRadius == 0 && bsd == 0 {
		return DrivetrainConfig{}, fmt.Errorf("either wheel-radius or bsd is required")
	}

	return DrivetrainConfig{
		ID:               raw.ID,
		Label:            raw.Label,
		Fronts:           slices.Clone(raw.Fronts),
		Rears:            slices.Clone(raw.Rears),
		HubRatios:        slices.Clone(raw.Hubs),
		BeadSeatDiameter: bsd / mmPerMeter,
		TireWidth:        tire / mmPerMeter,
		WheelRadius:      wheelRadius / mmPerMeter,
		CrankLength:      crank / mmPerMeter,
	}, nil
}

// RevalidateSelection re-validates the selection fields of a cloned config, e.g. from MCP tool arguments.
func RevalidateSelection(cfg *Config, strategy, objective string, thresholdPercent float64) error {
	input := &ConfigRawInput{
		Strategy:  strategy,
		Objective: objective,
		Threshold: thresholdPercent,
		MaxPaths:  cfg.MaxPaths,
	}
	if input.Strategy == "" {
		input.Strategy = string(cfg.Strategy)
	}
	if input.Objective == "" {
		input.Objective = string(cfg.Objective)
	}
	if input.Threshold == 0 {
		input.Threshold = cfg.Threshold * 100
	}
	return processSelection(cfg, input)
}

// RevalidateDrivetrain replaces the drivetrains of a cloned config with a single one built from strings.
func RevalidateDrivetrain(cfg *Config, fronts, rears, hubs string, geometry *ConfigRawInput) error {
	geometry.Fronts, geometry.Rears, geometry.Hubs = fronts, rears, hubs
	d, err := ProcessDrivetrainFlags(geometry)
	if err != nil {
		return err
	}
	cfg.Drivetrains = []DrivetrainConfig{d}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// percentToFraction validates a percent in (0, 100) and returns it as a fraction.
// A zero percent yields the default threshold.
func percentToFraction(name string, percent float64) (float64, error) {
	if percent == 0 {
		percent = schema.DefaultThresholdPercent
	}
	if percent < 0 || percent >= 100 || math.IsNaN(percent) {
		return 0, fmt.Errorf("%s must be between 0 and 100 percent (received %v)", name, percent)
	}
	return percent / 100, nil
}

// pick returns *override when set, otherwise fallback.
func pick(override *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	return fallback
}
