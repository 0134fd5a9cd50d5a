// Package main provides a performance benchmarking tool for the gearpath path search.
// It runs the greedy and exhaustive strategies on reference drivetrains, running each
// test multiple times, treating the first run as cold and averaging the rest as warm,
// and generates CSV output for performance analysis and documentation.
//
// Usage: go run benchmark/main.go [runs]
//
//	runs: Number of runs per drivetrain and strategy (default 5)
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/gearpath/core/gearing"
)

// BenchmarkResult holds the result of one drivetrain and strategy.
type BenchmarkResult struct {
	Drivetrain string
	Strategy   string
	Gears      int
	PathSize   int
	Score      string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Runs        int
	MaxPaths    int
	Drivetrains []gearing.Params
}

// referenceDrivetrains are common setups, from a 1x to a hub gear triple.
var referenceDrivetrains = []gearing.Params{
	{ID: "1x12", Fronts: []int{32}, Rears: []int{10, 12, 14, 16, 18, 21, 24, 28, 32, 36, 42, 50}, BeadSeatDiameter: 0.622, TireWidth: 0.045, CrankLength: 0.175},
	{ID: "road-2x11", Fronts: []int{34, 50}, Rears: []int{11, 12, 13, 14, 15, 17, 19, 21, 24, 28}, BeadSeatDiameter: 0.622, TireWidth: 0.028, CrankLength: 0.172},
	{ID: "gravel-2x10", Fronts: []int{30, 46}, Rears: []int{11, 13, 15, 17, 19, 22, 25, 28, 32, 36}, BeadSeatDiameter: 0.584, TireWidth: 0.048, CrankLength: 0.170},
	{ID: "touring-3x9", Fronts: []int{22, 32, 44}, Rears: []int{11, 13, 15, 17, 20, 23, 26, 30, 34}, BeadSeatDiameter: 0.559, TireWidth: 0.050, CrankLength: 0.170},
	{ID: "hub-3x8x3", Fronts: []int{24, 34, 46}, Rears: []int{11, 13, 15, 18, 21, 24, 28, 32}, HubRatios: []float64{0.73, 1, 1.36}, BeadSeatDiameter: 0.406, TireWidth: 0.047, CrankLength: 0.165},
}

func main() {
	config := BenchmarkConfig{
		Runs:        5,
		MaxPaths:    gearing.DefaultMaxSearchPaths,
		Drivetrains: referenceDrivetrains,
	}
	if len(os.Args) == 2 {
		runs, err := strconv.Atoi(os.Args[1])
		if err != nil || runs < 1 {
			fmt.Printf("Usage: %s [runs]\n", os.Args[0])
			os.Exit(1)
		}
		config.Runs = runs
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes both strategies across the configured drivetrains.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d drivetrains, %d runs, max paths %d\n",
		len(config.Drivetrains), config.Runs, config.MaxPaths)

	for _, params := range config.Drivetrains {
		fmt.Printf("Benchmarking %s\n", params.ID)
		results = append(results, runBenchmarkSuite(config, params, "greedy"))
		results = append(results, runBenchmarkSuite(config, params, "exhaustive", gearing.WithExhaustiveSearch(config.MaxPaths)))
	}

	return results
}

// runBenchmarkSuite times path selection for one drivetrain and strategy.
func runBenchmarkSuite(config BenchmarkConfig, params gearing.Params, strategy string, opts ...gearing.Option) BenchmarkResult {
	result := BenchmarkResult{Drivetrain: params.ID, Strategy: strategy, Score: "-", ColdTime: "FAILED", WarmTime: "FAILED"}

	var times []float64
	var d *gearing.Drivetrain
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()
		built, err := gearing.NewDrivetrain(params, opts...)
		if err != nil {
			if errors.Is(err, gearing.ErrSearchSpaceTooLarge) {
				result.ColdTime, result.WarmTime = "TOO_LARGE", "TOO_LARGE"
			}
			fmt.Printf("  %s: %v\n", strategy, err)
			return result
		}
		times = append(times, time.Since(start).Seconds())
		d = built
	}

	path := d.BestPath()
	result.Gears = d.Size()
	result.PathSize = len(path)
	result.Score = fmt.Sprintf("%.6f", gearing.StepStdDev(path))
	result.ColdTime = fmt.Sprintf("%.6fs", times[0])
	result.WarmTime = result.ColdTime
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		result.WarmTime = fmt.Sprintf("%.6fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  %s: %d of %d gears, cold %s, warm %s\n", strategy, result.PathSize, result.Gears, result.ColdTime, result.WarmTime)
	return result
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/gearpath_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"drivetrain", "strategy", "gears", "path_size", "stddev", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		record := []string{r.Drivetrain, r.Strategy, strconv.Itoa(r.Gears), strconv.Itoa(r.PathSize), r.Score, r.ColdTime, r.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printStrategySummary(results, "greedy", "Greedy Search:")
	printStrategySummary(results, "exhaustive", "Exhaustive Search:")
}

// printStrategySummary displays results for a specific strategy
func printStrategySummary(results []BenchmarkResult, strategy, title string) {
	fmt.Printf("%s\n", title)
	for _, r := range results {
		if r.Strategy == strategy {
			fmt.Printf("  %-12s: Path: %d/%d, StdDev: %s, Cold: %s, Warm: %s\n", r.Drivetrain, r.PathSize, r.Gears, r.Score, r.ColdTime, r.WarmTime)
		}
	}
}
