// Package core has the use-cases that turn a validated config into gear results.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// ErrNoDrivetrains is returned when the config holds no drivetrain to work on.
var ErrNoDrivetrains = errors.New("no drivetrains configured")

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, writer contract.ResultWriter) error

// buildDrivetrains runs path selection for every configured drivetrain, in config order.
func buildDrivetrains(ctx context.Context, cfg *contract.Config) ([]*DrivetrainResultBuilder, error) {
	if len(cfg.Drivetrains) == 0 {
		return nil, ErrNoDrivetrains
	}
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		logDrivetrainHeader(cfg)
	}

	builders := make([]*DrivetrainResultBuilder, 0, len(cfg.Drivetrains))
	for _, dc := range cfg.Drivetrains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := NewDrivetrainResultBuilder(cfg, dc).SelectPath()
		if err := b.Err(); err != nil {
			return nil, err
		}
		builders = append(builders, b)
	}
	return builders, nil
}

// GetGearsResults computes the full gear matrix of every drivetrain.
func GetGearsResults(ctx context.Context, cfg *contract.Config) ([]schema.GearsResult, time.Duration, error) {
	start := time.Now()
	builders, err := buildDrivetrains(ctx, cfg)
	if err != nil {
		return nil, 0, err
	}
	results := make([]schema.GearsResult, len(builders))
	for i, b := range builders {
		results[i] = b.GearsResult()
	}
	return results, time.Since(start), nil
}

// ExecuteGears computes and writes the gear matrices.
// It serves as the main entry point for the 'gears' command.
func ExecuteGears(ctx context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	results, duration, err := GetGearsResults(ctx, cfg)
	if err != nil {
		return err
	}
	return writer.WriteGears(results, cfg, duration)
}

// GetPathResults computes the best path of every drivetrain.
func GetPathResults(ctx context.Context, cfg *contract.Config) ([]schema.PathResult, time.Duration, error) {
	start := time.Now()
	builders, err := buildDrivetrains(ctx, cfg)
	if err != nil {
		return nil, 0, err
	}
	results := make([]schema.PathResult, len(builders))
	for i, b := range builders {
		results[i] = b.PathResult()
	}
	return results, time.Since(start), nil
}

// ExecutePath computes and writes the best paths.
// It serves as the main entry point for the 'path' command.
func ExecutePath(ctx context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	results, duration, err := GetPathResults(ctx, cfg)
	if err != nil {
		return err
	}
	return writer.WritePaths(results, cfg, duration)
}
