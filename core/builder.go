package core

import (
	"fmt"

	"github.com/huangsam/gearpath/core/gearing"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// objectiveFor maps an objective name to its scoring function. Unknown names use StepStdDev.
func objectiveFor(name schema.ObjectiveName) gearing.Objective {
	switch name {
	case schema.SumObjective:
		return gearing.StepSum
	case schema.MaxObjective:
		return gearing.StepMax
	default:
		return gearing.StepStdDev
	}
}

// selectionOptions turns the selection settings of cfg into drivetrain options.
func selectionOptions(cfg *contract.Config) []gearing.Option {
	opts := []gearing.Option{
		gearing.WithObjective(objectiveFor(cfg.Objective)),
		gearing.WithThreshold(cfg.Threshold),
	}
	if cfg.Strategy == schema.ExhaustiveStrategy {
		opts = append(opts, gearing.WithExhaustiveSearch(cfg.MaxPaths))
	}
	return opts
}

// paramsFor converts a validated drivetrain config into gearing parameters.
func paramsFor(dc contract.DrivetrainConfig) gearing.Params {
	return gearing.Params{
		ID:               dc.ID,
		Label:            dc.Label,
		Fronts:           dc.Fronts,
		Rears:            dc.Rears,
		HubRatios:        dc.HubRatios,
		WheelRadius:      dc.WheelRadius,
		BeadSeatDiameter: dc.BeadSeatDiameter,
		TireWidth:        dc.TireWidth,
		CrankLength:      dc.CrankLength,
	}
}

// DrivetrainResultBuilder builds the results of one drivetrain.
// Methods chain; the first failure sticks and is reported by Err.
type DrivetrainResultBuilder struct {
	cfg        *contract.Config
	dc         contract.DrivetrainConfig
	drivetrain *gearing.Drivetrain
	err        error
}

// NewDrivetrainResultBuilder is the starting point for building drivetrain results.
func NewDrivetrainResultBuilder(cfg *contract.Config, dc contract.DrivetrainConfig) *DrivetrainResultBuilder {
	return &DrivetrainResultBuilder{cfg: cfg, dc: dc}
}

// SelectPath builds the gear matrix and runs path selection with the configured strategy.
func (b *DrivetrainResultBuilder) SelectPath() *DrivetrainResultBuilder {
	if b.err != nil {
		return b
	}
	d, err := gearing.NewDrivetrain(paramsFor(b.dc), selectionOptions(b.cfg)...)
	if err != nil {
		b.err = fmt.Errorf("drivetrain %s: %w", b.dc.Name(), err)
		return b
	}
	b.drivetrain = d
	return b
}

// Err returns the first error met while building.
func (b *DrivetrainResultBuilder) Err() error {
	return b.err
}

// Drivetrain returns the built drivetrain, or nil when SelectPath failed or was not called.
func (b *DrivetrainResultBuilder) Drivetrain() *gearing.Drivetrain {
	return b.drivetrain
}

// GearsResult returns the full matrix view of the drivetrain.
func (b *DrivetrainResultBuilder) GearsResult() schema.GearsResult {
	d := b.drivetrain
	rows := make([]schema.ChainringRow, 0, len(d.Fronts)*len(d.HubRatios))
	for _, hubs := range d.ByChainring {
		for _, gears := range hubs {
			row := schema.ChainringRow{
				Front:    gears[0].Front,
				HubRatio: gears[0].HubRatio,
				Gears:    make([]schema.GearResult, len(gears)),
			}
			for i, g := range gears {
				var prev *gearing.Gear
				if i > 0 {
					prev = &gears[i-1]
				}
				row.Gears[i] = toGearResult(g, prev, b.cfg)
			}
			rows = append(rows, row)
		}
	}
	return schema.GearsResult{
		Drivetrain: drivetrainInfo(d, b.cfg),
		Units:      b.cfg.Units,
		RPMs:       b.cfg.RPMs,
		Rows:       rows,
	}
}

// PathResult returns the best path view of the drivetrain. The remaining gears are added when
// the config asks for every gear.
func (b *DrivetrainResultBuilder) PathResult() schema.PathResult {
	d := b.drivetrain
	path := d.BestPath()
	result := schema.PathResult{
		Drivetrain: drivetrainInfo(d, b.cfg),
		Units:      b.cfg.Units,
		RPMs:       b.cfg.RPMs,
		Path:       toPathResults(path, b.cfg),
		Summary:    summarizePath(path, objectiveFor(b.cfg.Objective)),
	}
	if b.cfg.ShowAll {
		for _, g := range d.RemainingGears() {
			result.Remaining = append(result.Remaining, toGearResult(g, nil, b.cfg))
		}
	}
	return result
}
