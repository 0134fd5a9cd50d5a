package schema

// CheckResult holds the results of a step policy check.
type CheckResult struct {
	Passed     bool           `json:"passed"`
	Checked    int            `json:"checked"`     // Number of drivetrains checked
	MaxStep    float64        `json:"max_step"`    // Largest allowed relative step
	MinGears   int            `json:"min_gears"`   // Smallest allowed best path size, 0 disables
	Failures   []CheckFailure `json:"failures"`    // Every violation found
	WorstSteps []CheckStep    `json:"worst_steps"` // Largest step of each drivetrain
}

// CheckStep is the largest step of one drivetrain's best path.
type CheckStep struct {
	Drivetrain string  `json:"drivetrain"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Step       float64 `json:"step"`
	PathSize   int     `json:"path_size"`
}

// CheckFailure represents a drivetrain that failed the policy check.
type CheckFailure struct {
	Drivetrain string  `json:"drivetrain"`
	Reason     string  `json:"reason"`
	Value      float64 `json:"value"`
	Limit      float64 `json:"limit"`
}

// Check failure reasons.
const (
	MaxStepReason  = "max_step"
	MinGearsReason = "min_gears"
)
