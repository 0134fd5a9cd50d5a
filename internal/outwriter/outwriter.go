// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGears prints gear matrices using the configured output format.
func (ow *OutWriter) WriteGears(results []schema.GearsResult, cfg *contract.Config, duration time.Duration) error {
	return PrintGearsResults(results, cfg, duration)
}

// WritePaths prints best paths using the configured output format.
func (ow *OutWriter) WritePaths(results []schema.PathResult, cfg *contract.Config, duration time.Duration) error {
	return PrintPathResults(results, cfg, duration)
}

// WriteComparison prints drivetrain comparisons using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(result, cfg, duration)
}

// WriteCheck prints step check results using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCheckResults(result, cfg, duration)
}

// WriteMetrics prints metric definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(model schema.MetricsRenderModel, cfg *contract.Config) error {
	return PrintMetricsDefinitions(model, cfg)
}

var _ contract.ResultWriter = (*OutWriter)(nil)
