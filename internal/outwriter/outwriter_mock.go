package outwriter

import (
	"time"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ contract.ResultWriter = &MockResultWriter{} // Compile-time check

// WriteGears implements the ResultWriter interface.
func (m *MockResultWriter) WriteGears(results []schema.GearsResult, cfg *contract.Config, duration time.Duration) error {
	args := m.Called(results, cfg, duration)
	return args.Error(0)
}

// WritePaths implements the ResultWriter interface.
func (m *MockResultWriter) WritePaths(results []schema.PathResult, cfg *contract.Config, duration time.Duration) error {
	args := m.Called(results, cfg, duration)
	return args.Error(0)
}

// WriteComparison implements the ResultWriter interface.
func (m *MockResultWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	args := m.Called(result, cfg, duration)
	return args.Error(0)
}

// WriteCheck implements the ResultWriter interface.
func (m *MockResultWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	args := m.Called(result, cfg, duration)
	return args.Error(0)
}

// WriteMetrics implements the ResultWriter interface.
func (m *MockResultWriter) WriteMetrics(model schema.MetricsRenderModel, cfg *contract.Config) error {
	args := m.Called(model, cfg)
	return args.Error(0)
}
