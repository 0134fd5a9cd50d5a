package gearing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Objective scores a complete candidate path. Lower is better.
type Objective func(path []Gear) float64

// PercentSteps returns the relative step between each pair of consecutive gears in path.
func PercentSteps(path []Gear) []float64 {
	if len(path) < 2 {
		return nil
	}
	steps := make([]float64, len(path)-1)
	for i := 1; i < len(path); i++ {
		steps[i-1] = path[i].PercentHarderThan(path[i-1])
	}
	return steps
}

// StepStdDev is the population standard deviation of the percent steps.
// It is the default objective: low values mean evenly spaced gears.
func StepStdDev(path []Gear) float64 {
	steps := PercentSteps(path)
	if len(steps) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(steps, nil)
	return math.Sqrt(variance)
}

// StepSum is the sum of the percent steps.
func StepSum(path []Gear) float64 {
	steps := PercentSteps(path)
	if len(steps) == 0 {
		return 0
	}
	return floats.Sum(steps)
}

// StepMax is the largest percent step, i.e. the worst jump in the path.
func StepMax(path []Gear) float64 {
	steps := PercentSteps(path)
	if len(steps) == 0 {
		return 0
	}
	return floats.Max(steps)
}

// StepStats summarizes the percent steps of a path.
type StepStats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// SummarizeSteps computes StepStats for path. An empty or single-gear path yields zero stats.
func SummarizeSteps(path []Gear) StepStats {
	steps := PercentSteps(path)
	if len(steps) == 0 {
		return StepStats{}
	}
	mean, variance := stat.PopMeanVariance(steps, nil)
	return StepStats{
		Count:  len(steps),
		Mean:   mean,
		Min:    floats.Min(steps),
		Max:    floats.Max(steps),
		StdDev: math.Sqrt(variance),
	}
}
