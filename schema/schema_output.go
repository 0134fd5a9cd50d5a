package schema

// Step label thresholds, as relative steps between consecutive gears.
const (
	LargeStep  = 0.20
	WideStep   = 0.12
	SmoothStep = 0.05
)

// EnrichedGearResult adds presentation data to a GearResult.
type EnrichedGearResult struct {
	Position  int    `json:"position"`
	StepLabel string `json:"step_label"`
	GearResult
}

// GetPlainStepLabel returns a plain text label describing how big a step between two gears feels.
func GetPlainStepLabel(step float64) string {
	switch {
	case step >= LargeStep:
		return "Large"
	case step >= WideStep:
		return "Wide"
	case step > SmoothStep:
		return "Smooth"
	default:
		return "Tight"
	}
}

// EnrichGears adds position and step label to a list of gear results.
// The first gear has no previous gear and is labeled "Start".
func EnrichGears(gears []GearResult) []EnrichedGearResult {
	output := make([]EnrichedGearResult, len(gears))
	for i, g := range gears {
		label := "Start"
		if i > 0 {
			label = GetPlainStepLabel(g.StepFromPrevious)
		}
		output[i] = EnrichedGearResult{
			Position:   i + 1,
			StepLabel:  label,
			GearResult: g,
		}
	}
	return output
}
