// Package schema has the result models and constants shared by all parts of gearpath.
package schema

// DrivetrainInfo describes the drivetrain a result was computed for.
type DrivetrainInfo struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title"`
	Fronts      []int          `json:"fronts"`
	Rears       []int          `json:"rears"`
	HubRatios   []float64      `json:"hub_ratios"`
	WheelRadius float64        `json:"wheel_radius_m"` // Meters
	CrankLength float64        `json:"crank_length_m"` // Meters
	Size        int            `json:"size"`           // Total number of gears
	Strategy    SearchStrategy `json:"strategy"`
	Objective   ObjectiveName  `json:"objective"`
	Threshold   float64        `json:"threshold"` // Minimum relative step between path gears
}

// SpeedAtCadence is the ground speed of a gear at one cadence.
type SpeedAtCadence struct {
	RPM   float64 `json:"rpm"`
	Speed float64 `json:"speed"` // km/h or mph depending on units
}

// GearResult is the presentation of a single gear.
type GearResult struct {
	Label       string  `json:"label"`
	Front       int     `json:"front"`
	Rear        int     `json:"rear"`
	HubRatio    float64 `json:"hub_ratio"`
	FrontPos    int     `json:"front_pos"`
	HubRatioPos int     `json:"hub_ratio_pos"`
	RearPos     int     `json:"rear_pos"`

	GearRatio   float64          `json:"gear_ratio"`
	GainRatio   float64          `json:"gain_ratio"`
	GearInches  float64          `json:"gear_inches"`
	Development float64          `json:"development"` // Meters or feet per crank revolution
	Speeds      []SpeedAtCadence `json:"speeds"`

	StepFromPrevious float64 `json:"step_from_previous"` // Relative step from the previous gear in the listing, 0 for the first
	InBestPath       bool    `json:"in_best_path"`
}

// ChainringRow is one row of the gear matrix: a chainring and hub ratio across every cog.
type ChainringRow struct {
	Front    int          `json:"front"`
	HubRatio float64      `json:"hub_ratio"`
	Gears    []GearResult `json:"gears"`
}

// GearsResult holds the full gear matrix of a drivetrain.
type GearsResult struct {
	Drivetrain DrivetrainInfo `json:"drivetrain"`
	Units      Units          `json:"units"`
	RPMs       []float64      `json:"rpms"`
	Rows       []ChainringRow `json:"rows"`
}

// PathSummary has the step statistics of a best path.
type PathSummary struct {
	Gears         int     `json:"gears"`
	Score         float64 `json:"score"` // Objective value of the path, lower is better
	MeanStep      float64 `json:"mean_step"`
	MinStep       float64 `json:"min_step"`
	MaxStep       float64 `json:"max_step"`
	StdDevStep    float64 `json:"stddev_step"`
	RangeMultiple float64 `json:"range_multiple"` // Hardest gain ratio over easiest
}

// PathResult holds the best path of a drivetrain and optionally the gears left out of it.
type PathResult struct {
	Drivetrain DrivetrainInfo `json:"drivetrain"`
	Units      Units          `json:"units"`
	RPMs       []float64      `json:"rpms"`
	Path       []GearResult   `json:"path"`
	Remaining  []GearResult   `json:"remaining,omitempty"`
	Summary    PathSummary    `json:"summary"`
}
