package core

import (
	"context"
	"testing"

	"github.com/huangsam/gearpath/internal/outwriter"
	"github.com/huangsam/gearpath/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorstStep(t *testing.T) {
	tests := []struct {
		name     string
		path     []schema.GearResult
		expected schema.CheckStep
	}{
		{
			name:     "empty path",
			expected: schema.CheckStep{Drivetrain: "test"},
		},
		{
			name:     "single gear",
			path:     []schema.GearResult{{Label: "30/36"}},
			expected: schema.CheckStep{Drivetrain: "test", PathSize: 1},
		},
		{
			name: "first largest step wins",
			path: []schema.GearResult{
				{Label: "a"},
				{Label: "b", StepFromPrevious: 0.1},
				{Label: "c", StepFromPrevious: 0.2},
				{Label: "d", StepFromPrevious: 0.2},
			},
			expected: schema.CheckStep{Drivetrain: "test", From: "b", To: "c", Step: 0.2, PathSize: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := schema.PathResult{Drivetrain: schema.DrivetrainInfo{Title: "test"}, Path: tt.path}
			assert.Equal(t, tt.expected, worstStep(p))
		})
	}
}

func TestCheckPath(t *testing.T) {
	p := schema.PathResult{
		Drivetrain: schema.DrivetrainInfo{Title: "test"},
		Path:       make([]schema.GearResult, 10),
		Summary:    schema.PathSummary{MaxStep: 0.18},
	}

	tests := []struct {
		name     string
		maxStep  float64
		minGears int
		reasons  []string
	}{
		{name: "passes", maxStep: 0.2, minGears: 10},
		{name: "step at limit passes", maxStep: 0.18},
		{name: "step too large", maxStep: 0.15, reasons: []string{schema.MaxStepReason}},
		{name: "too few gears", maxStep: 0.2, minGears: 11, reasons: []string{schema.MinGearsReason}},
		{name: "both", maxStep: 0.1, minGears: 12, reasons: []string{schema.MaxStepReason, schema.MinGearsReason}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := checkPath(p, tt.maxStep, tt.minGears)
			require.Len(t, failures, len(tt.reasons))
			for i, f := range failures {
				assert.Equal(t, tt.reasons[i], f.Reason)
				assert.Equal(t, "test", f.Drivetrain)
			}
		})
	}
}

func TestGetCheckResults(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		result, _, err := GetCheckResults(context.Background(), testConfig(gravelDrivetrain))
		require.NoError(t, err)
		assert.True(t, result.Passed)
		assert.Equal(t, 1, result.Checked)
		assert.NotNil(t, result.Failures)
		assert.Empty(t, result.Failures)

		require.Len(t, result.WorstSteps, 1)
		worst := result.WorstSteps[0]
		assert.Equal(t, "46/13", worst.From)
		assert.Equal(t, "46/11", worst.To)
		assert.InDelta(t, 2.0/11, worst.Step, 1e-9)
		assert.Equal(t, 13, worst.PathSize)
	})

	t.Run("fails", func(t *testing.T) {
		cfg := testConfig(gravelDrivetrain)
		cfg.MaxStep = 0.15
		cfg.MinGears = 14

		result, _, err := GetCheckResults(context.Background(), cfg)
		require.NoError(t, err)
		assert.False(t, result.Passed)
		require.Len(t, result.Failures, 2)
		assert.Equal(t, schema.MaxStepReason, result.Failures[0].Reason)
		assert.InDelta(t, 2.0/11, result.Failures[0].Value, 1e-9)
		assert.Equal(t, schema.MinGearsReason, result.Failures[1].Reason)
		assert.Equal(t, 13.0, result.Failures[1].Value)
		assert.Equal(t, 14.0, result.Failures[1].Limit)
	})
}

func TestExecuteCheck(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		cfg := testConfig(gravelDrivetrain)
		writer := &outwriter.MockResultWriter{}
		writer.On("WriteCheck", mock.AnythingOfType("schema.CheckResult"), cfg, mock.AnythingOfType("time.Duration")).Return(nil)

		require.NoError(t, ExecuteCheck(context.Background(), cfg, writer))
		writer.AssertExpectations(t)
	})

	t.Run("writes before failing", func(t *testing.T) {
		cfg := testConfig(gravelDrivetrain)
		cfg.MaxStep = 0.1
		writer := &outwriter.MockResultWriter{}
		writer.On("WriteCheck", mock.MatchedBy(func(r schema.CheckResult) bool {
			return !r.Passed && len(r.Failures) == 1
		}), cfg, mock.AnythingOfType("time.Duration")).Return(nil)

		assert.ErrorIs(t, ExecuteCheck(context.Background(), cfg, writer), ErrCheckFailed)
		writer.AssertExpectations(t)
	})
}
