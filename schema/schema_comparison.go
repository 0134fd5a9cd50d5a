package schema

// ComparisonDetail holds one drivetrain's figures and its deltas against the baseline drivetrain.
type ComparisonDetail struct {
	Drivetrain    DrivetrainInfo `json:"drivetrain"`
	Easiest       float64        `json:"easiest"`        // Lowest gain ratio
	Hardest       float64        `json:"hardest"`        // Highest gain ratio
	RangeMultiple float64        `json:"range_multiple"` // Hardest over easiest
	PathSize      int            `json:"path_size"`      // Number of gears in the best path
	MeanStep      float64        `json:"mean_step"`
	MaxStep       float64        `json:"max_step"`
	StdDevStep    float64        `json:"stddev_step"`
	InRange       []string       `json:"in_range"`      // Best-path gear labels inside the gain ratio window
	DeltaEasiest  float64        `json:"delta_easiest"` // Easiest minus the baseline's easiest (negative means lower climbing gear)
	DeltaHardest  float64        `json:"delta_hardest"` // Hardest minus the baseline's hardest (positive means taller top gear)
}

// ComparisonSummary has the standout drivetrains of a comparison.
type ComparisonSummary struct {
	Baseline  string `json:"baseline"`
	Widest    string `json:"widest"`     // Largest range multiple
	Smoothest string `json:"smoothest"`  // Lowest step standard deviation
	MostGears string `json:"most_gears"` // Longest best path
}

// ComparisonResult holds the comparison details and summary.
type ComparisonResult struct {
	RangeLow  float64            `json:"range_low"`
	RangeHigh float64            `json:"range_high"`
	Details   []ComparisonDetail `json:"details"`
	Summary   ComparisonSummary  `json:"summary"`
}
