package schema_test

import (
	"testing"

	"github.com/huangsam/gearpath/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainStepLabel(t *testing.T) {
	tests := []struct {
		name     string
		step     float64
		expected string
	}{
		{"Large Upper", 0.8, "Large"},
		{"Large Lower", 0.20, "Large"},
		{"Wide Upper", 0.199, "Wide"},
		{"Wide Lower", 0.12, "Wide"},
		{"Smooth Upper", 0.119, "Smooth"},
		{"Smooth Lower", 0.051, "Smooth"},
		{"Tight At Threshold", 0.05, "Tight"},
		{"Tight Zero", 0, "Tight"},
		{"Negative Step", -0.1, "Tight"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetPlainStepLabel(tt.step))
		})
	}
}

func TestEnrichGears(t *testing.T) {
	gears := []schema.GearResult{
		{Label: "30/36", StepFromPrevious: 0},
		{Label: "30/32", StepFromPrevious: 0.125},
		{Label: "30/28", StepFromPrevious: 0.0714},
	}

	enriched := schema.EnrichGears(gears)

	assert.Len(t, enriched, 3)

	assert.Equal(t, 1, enriched[0].Position)
	assert.Equal(t, "Start", enriched[0].StepLabel)
	assert.Equal(t, "30/36", enriched[0].Label)

	assert.Equal(t, 2, enriched[1].Position)
	assert.Equal(t, "Wide", enriched[1].StepLabel)

	assert.Equal(t, 3, enriched[2].Position)
	assert.Equal(t, "Smooth", enriched[2].StepLabel)
	assert.Equal(t, "30/28", enriched[2].Label)
}

func TestEnrichGearsEmpty(t *testing.T) {
	assert.Empty(t, schema.EnrichGears(nil))
}
