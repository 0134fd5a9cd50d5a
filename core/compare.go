package core

import (
	"context"
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// compareDetail computes the figures of one drivetrain path. Deltas are filled in by the caller.
func compareDetail(path schema.PathResult, low, high float64) schema.ComparisonDetail {
	detail := schema.ComparisonDetail{
		Drivetrain:    path.Drivetrain,
		RangeMultiple: path.Summary.RangeMultiple,
		PathSize:      path.Summary.Gears,
		MeanStep:      path.Summary.MeanStep,
		MaxStep:       path.Summary.MaxStep,
		StdDevStep:    path.Summary.StdDevStep,
		InRange:       []string{},
	}
	if n := len(path.Path); n > 0 {
		detail.Easiest = path.Path[0].GainRatio
		detail.Hardest = path.Path[n-1].GainRatio
	}
	for _, g := range path.Path {
		if g.GainRatio >= low && g.GainRatio <= high {
			detail.InRange = append(detail.InRange, g.Label)
		}
	}
	return detail
}

// summarizeComparison picks the standout drivetrains. Ties keep the earliest drivetrain.
func summarizeComparison(details []schema.ComparisonDetail) schema.ComparisonSummary {
	if len(details) == 0 {
		return schema.ComparisonSummary{}
	}
	widest, smoothest, most := 0, 0, 0
	for i, d := range details {
		if d.RangeMultiple > details[widest].RangeMultiple {
			widest = i
		}
		if d.StdDevStep < details[smoothest].StdDevStep {
			smoothest = i
		}
		if d.PathSize > details[most].PathSize {
			most = i
		}
	}
	return schema.ComparisonSummary{
		Baseline:  details[0].Drivetrain.Title,
		Widest:    details[widest].Drivetrain.Title,
		Smoothest: details[smoothest].Drivetrain.Title,
		MostGears: details[most].Drivetrain.Title,
	}
}

// GetCompareResults compares the best paths of every drivetrain against the first one.
func GetCompareResults(ctx context.Context, cfg *contract.Config) (schema.ComparisonResult, time.Duration, error) {
	start := time.Now()
	paths, _, err := GetPathResults(ctx, cfg)
	if err != nil {
		return schema.ComparisonResult{}, 0, err
	}

	details := make([]schema.ComparisonDetail, len(paths))
	for i, p := range paths {
		details[i] = compareDetail(p, cfg.RangeLow, cfg.RangeHigh)
		details[i].DeltaEasiest = details[i].Easiest - details[0].Easiest
		details[i].DeltaHardest = details[i].Hardest - details[0].Hardest
	}

	result := schema.ComparisonResult{
		RangeLow:  cfg.RangeLow,
		RangeHigh: cfg.RangeHigh,
		Details:   details,
		Summary:   summarizeComparison(details),
	}
	return result, time.Since(start), nil
}

// ExecuteCompare computes and writes the drivetrain comparison.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	result, duration, err := GetCompareResults(ctx, cfg)
	if err != nil {
		return err
	}
	return writer.WriteComparison(result, cfg, duration)
}
