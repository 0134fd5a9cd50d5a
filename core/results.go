package core

import (
	"fmt"

	"github.com/huangsam/gearpath/core/gearing"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// toGearResult converts a gear to its presentation. prev is the gear listed before it, if any.
func toGearResult(g gearing.Gear, prev *gearing.Gear, cfg *contract.Config) schema.GearResult {
	speeds := make([]schema.SpeedAtCadence, len(cfg.RPMs))
	for i, rpm := range cfg.RPMs {
		speeds[i] = schema.SpeedAtCadence{
			RPM:   rpm,
			Speed: schema.ConvertSpeed(g.PerHourSpeedAtRPM(rpm), cfg.Units),
		}
	}

	var step float64
	if prev != nil {
		step = g.PercentHarderThan(*prev)
	}

	return schema.GearResult{
		Label:            g.Label(),
		Front:            g.Front,
		Rear:             g.Rear,
		HubRatio:         g.HubRatio,
		FrontPos:         g.FrontPos,
		HubRatioPos:      g.HubRatioPos,
		RearPos:          g.RearPos,
		GearRatio:        g.GearRatio,
		GainRatio:        g.GainRatio,
		GearInches:       g.GearInches,
		Development:      schema.ConvertDistance(g.TravelPerRevolution, cfg.Units),
		Speeds:           speeds,
		StepFromPrevious: step,
		InBestPath:       g.InBestPath,
	}
}

// toPathResults converts an ordered path, computing each step from the previous path gear.
func toPathResults(path []gearing.Gear, cfg *contract.Config) []schema.GearResult {
	results := make([]schema.GearResult, len(path))
	for i, g := range path {
		var prev *gearing.Gear
		if i > 0 {
			prev = &path[i-1]
		}
		results[i] = toGearResult(g, prev, cfg)
	}
	return results
}

// drivetrainInfo describes d and the selection settings it was built with.
func drivetrainInfo(d *gearing.Drivetrain, cfg *contract.Config) schema.DrivetrainInfo {
	return schema.DrivetrainInfo{
		ID:          d.ID,
		Title:       d.Title(),
		Fronts:      d.Fronts,
		Rears:       d.Rears,
		HubRatios:   d.HubRatios,
		WheelRadius: d.WheelRadius,
		CrankLength: d.CrankLength,
		Size:        d.Size(),
		Strategy:    cfg.Strategy,
		Objective:   cfg.Objective,
		Threshold:   cfg.Threshold,
	}
}

// summarizePath computes the step statistics of a path and its objective score.
func summarizePath(path []gearing.Gear, objective gearing.Objective) schema.PathSummary {
	stats := gearing.SummarizeSteps(path)
	summary := schema.PathSummary{
		Gears:      len(path),
		Score:      objective(path),
		MeanStep:   stats.Mean,
		MinStep:    stats.Min,
		MaxStep:    stats.Max,
		StdDevStep: stats.StdDev,
	}
	if len(path) > 0 {
		summary.RangeMultiple = path[len(path)-1].MultipleHarderThan(path[0])
	}
	return summary
}

// logDrivetrainHeader prints a concise, 2-line header before text output.
func logDrivetrainHeader(cfg *contract.Config) {
	// Line 1: What is being computed
	fmt.Printf("🔧 Drivetrains: %d (Strategy: %s, Objective: %s)\n", len(cfg.Drivetrains), cfg.Strategy, cfg.Objective)

	// Line 2: The selection and presentation settings
	fmt.Printf("📏 Threshold: %.1f%%, Units: %s, Cadence: %v rpm\n", cfg.Threshold*100, cfg.Units, cfg.RPMs)
}
