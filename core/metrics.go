package core

import (
	"context"
	"fmt"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// BuildMetricsModel constructs the definitions shown by the metrics command.
// The active objective and threshold come from cfg.
func BuildMetricsModel(cfg *contract.Config) schema.MetricsRenderModel {
	metrics := []schema.MetricDefinition{
		{
			Name:        "Gear ratio",
			Description: "Wheel revolutions per crank revolution",
			Formula:     "front / rear * hub",
		},
		{
			Name:        "Gain ratio",
			Description: "Distance the bike travels per unit of distance the pedal travels",
			Formula:     "gear ratio * wheel radius / crank length",
		},
		{
			Name:        "Gear inches",
			Description: "Diameter of the equivalent direct-drive wheel",
			Formula:     "gear ratio * wheel diameter / 0.0254",
			Unit:        "in",
		},
		{
			Name:        "Development",
			Description: "Distance travelled per crank revolution",
			Formula:     "2π * crank length * gain ratio",
			Unit:        schema.DistanceUnit(cfg.Units),
		},
		{
			Name:        "Speed",
			Description: "Ground speed at a cadence",
			Formula:     "development * rpm * 60",
			Unit:        schema.SpeedUnit(cfg.Units),
		},
		{
			Name:        "Step",
			Description: "Relative jump from the previous gear",
			Formula:     "(gain - previous gain) / previous gain",
			Unit:        "%",
		},
	}

	objectives := []schema.ObjectiveDefinition{
		{
			Name:    schema.StdDevObjective,
			Purpose: "Evenly spaced gears",
			Formula: "population stddev(steps)",
		},
		{
			Name:    schema.SumObjective,
			Purpose: "Compact range with few large jumps",
			Formula: "sum(steps)",
		},
		{
			Name:    schema.MaxObjective,
			Purpose: "No single jump stands out",
			Formula: "max(steps)",
		},
	}
	for i := range objectives {
		objectives[i].Active = objectives[i].Name == cfg.Objective
	}

	return schema.MetricsRenderModel{
		Title:       "Gearpath Metrics",
		Description: "Every gear is measured by its gain ratio. The best path is the ordered, non-redundant subset of gears that minimizes the active objective.",
		Metrics:     metrics,
		Objectives:  objectives,
		Strategies: map[schema.SearchStrategy]string{
			schema.GreedyStrategy:     "Start from the easiest chainring and search only the shift position to each harder one",
			schema.ExhaustiveStrategy: fmt.Sprintf("Score every valid path, up to %d candidates per drivetrain", cfg.MaxPaths),
		},
		Threshold: cfg.Threshold,
		StepLabels: map[string]string{
			contract.TightValue:  fmt.Sprintf("step <= %.0f%%", schema.SmoothStep*100),
			contract.SmoothValue: fmt.Sprintf("%.0f%% < step < %.0f%%", schema.SmoothStep*100, schema.WideStep*100),
			contract.WideValue:   fmt.Sprintf("%.0f%% <= step < %.0f%%", schema.WideStep*100, schema.LargeStep*100),
			contract.LargeValue:  fmt.Sprintf("step >= %.0f%%", schema.LargeStep*100),
		},
	}
}

// ExecuteMetrics writes the metric and objective definitions.
// It serves as the main entry point for the 'metrics' command and needs no drivetrain.
func ExecuteMetrics(_ context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	return writer.WriteMetrics(BuildMetricsModel(cfg), cfg)
}
