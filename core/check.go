package core

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// ErrCheckFailed is returned by ExecuteCheck after writing a result with violations.
var ErrCheckFailed = errors.New("step policy check failed")

// worstStep finds the largest step of a path. A path with fewer than two gears has no step.
func worstStep(p schema.PathResult) schema.CheckStep {
	worst := schema.CheckStep{Drivetrain: p.Drivetrain.Title, PathSize: len(p.Path)}
	for i := 1; i < len(p.Path); i++ {
		if step := p.Path[i].StepFromPrevious; worst.From == "" || step > worst.Step {
			worst.From = p.Path[i-1].Label
			worst.To = p.Path[i].Label
			worst.Step = step
		}
	}
	return worst
}

// checkPath returns the policy violations of one best path.
func checkPath(p schema.PathResult, maxStep float64, minGears int) []schema.CheckFailure {
	var failures []schema.CheckFailure
	if p.Summary.MaxStep > maxStep {
		failures = append(failures, schema.CheckFailure{
			Drivetrain: p.Drivetrain.Title,
			Reason:     schema.MaxStepReason,
			Value:      p.Summary.MaxStep,
			Limit:      maxStep,
		})
	}
	if minGears > 0 && len(p.Path) < minGears {
		failures = append(failures, schema.CheckFailure{
			Drivetrain: p.Drivetrain.Title,
			Reason:     schema.MinGearsReason,
			Value:      float64(len(p.Path)),
			Limit:      float64(minGears),
		})
	}
	return failures
}

// GetCheckResults checks every best path against the max step and min gears policy.
func GetCheckResults(ctx context.Context, cfg *contract.Config) (schema.CheckResult, time.Duration, error) {
	start := time.Now()
	paths, _, err := GetPathResults(ctx, cfg)
	if err != nil {
		return schema.CheckResult{}, 0, err
	}

	result := schema.CheckResult{
		Checked:    len(paths),
		MaxStep:    cfg.MaxStep,
		MinGears:   cfg.MinGears,
		Failures:   []schema.CheckFailure{},
		WorstSteps: make([]schema.CheckStep, len(paths)),
	}
	for i, p := range paths {
		result.Failures = append(result.Failures, checkPath(p, cfg.MaxStep, cfg.MinGears)...)
		result.WorstSteps[i] = worstStep(p)
	}
	result.Passed = len(result.Failures) == 0
	return result, time.Since(start), nil
}

// ExecuteCheck runs the step policy check and writes its result.
// It serves as the main entry point for the 'check' command and returns
// ErrCheckFailed when any drivetrain violates the policy.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, writer contract.ResultWriter) error {
	result, duration, err := GetCheckResults(ctx, cfg)
	if err != nil {
		return err
	}
	if err := writer.WriteCheck(result, cfg, duration); err != nil {
		return err
	}
	if !result.Passed {
		return ErrCheckFailed
	}
	return nil
}
