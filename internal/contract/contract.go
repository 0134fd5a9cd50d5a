// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/gearpath/schema"
)

// ResultWriter defines the output operations used by the core use-cases.
// This allows the core logic to be tested without rendering anything.
type ResultWriter interface {
	// WriteGears renders the full gear matrix of each drivetrain.
	WriteGears(results []schema.GearsResult, cfg *Config, duration time.Duration) error

	// WritePaths renders the best path of each drivetrain.
	WritePaths(results []schema.PathResult, cfg *Config, duration time.Duration) error

	// WriteComparison renders a multi-drivetrain comparison.
	WriteComparison(result schema.ComparisonResult, cfg *Config, duration time.Duration) error

	// WriteCheck renders the outcome of a step policy check.
	WriteCheck(result schema.CheckResult, cfg *Config, duration time.Duration) error

	// WriteMetrics renders the metric and objective definitions.
	WriteMetrics(model schema.MetricsRenderModel, cfg *Config) error
}
