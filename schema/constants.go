package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SearchStrategy represents the best-path selection algorithm.
	SearchStrategy string

	// ObjectiveName represents the objective minimized by path selection.
	ObjectiveName string

	// Units represents the unit system used for speeds and distances.
	Units string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All search strategies supported.
const (
	GreedyStrategy     SearchStrategy = "greedy" // default
	ExhaustiveStrategy SearchStrategy = "exhaustive"
)

// All objectives supported.
const (
	StdDevObjective ObjectiveName = "stddev" // default
	SumObjective    ObjectiveName = "sum"
	MaxObjective    ObjectiveName = "max"
)

// All unit systems supported.
const (
	MetricUnits   Units = "metric" // default
	ImperialUnits Units = "imperial"
)

// Defaults shared by the CLI and the MCP server.
const (
	DefaultThresholdPercent = 5.0
	DefaultMaxStepPercent   = 20.0
	DefaultRangeLow         = 1.0
	DefaultRangeHigh        = 4.0
	DefaultCrankLengthMM    = 170.0
	DefaultBSDMM            = 622.0
	DefaultTireWidthMM      = 28.0
)

// DefaultRPMs are the cadences used for speed columns.
var DefaultRPMs = []float64{85, 95}

// AllObjectives returns a list of all supported objectives.
var AllObjectives = []ObjectiveName{StdDevObjective, SumObjective, MaxObjective}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStrategies lists all valid search strategies.
var ValidStrategies = map[SearchStrategy]struct{}{
	GreedyStrategy:     {},
	ExhaustiveStrategy: {},
}

// ValidObjectives lists all valid objectives.
var ValidObjectives = map[ObjectiveName]struct{}{
	StdDevObjective: {},
	SumObjective:    {},
	MaxObjective:    {},
}

// ValidUnits lists all valid unit systems.
var ValidUnits = map[Units]struct{}{
	MetricUnits:   {},
	ImperialUnits: {},
}
