package schema

// MetricDefinition describes one per-gear metric.
type MetricDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Formula     string `json:"formula"`
	Unit        string `json:"unit"`
}

// ObjectiveDefinition describes one path selection objective.
type ObjectiveDefinition struct {
	Name    ObjectiveName `json:"name"`
	Purpose string        `json:"purpose"`
	Formula string        `json:"formula"`
	Active  bool          `json:"active"`
}

// MetricsRenderModel contains all processed data needed for displaying metrics definitions.
type MetricsRenderModel struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Metrics     []MetricDefinition        `json:"metrics"`
	Objectives  []ObjectiveDefinition     `json:"objectives"`
	Strategies  map[SearchStrategy]string `json:"strategies"`
	Threshold   float64                   `json:"threshold"`
	StepLabels  map[string]string         `json:"step_labels"`
}
