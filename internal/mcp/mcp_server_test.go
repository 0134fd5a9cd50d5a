package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/gearpath/internal/contract"
	mcp_internal "github.com/huangsam/gearpath/internal/mcp"
	"github.com/huangsam/gearpath/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gravel = contract.DrivetrainConfig{
	ID:          "gravel",
	Fronts:      []int{30, 46},
	Rears:       []int{11, 13, 15, 17, 19, 22, 25, 28, 32, 36},
	WheelRadius: 0.34,
	CrankLength: 0.17,
}

func newTestServer(drivetrains ...contract.DrivetrainConfig) *server.MCPServer {
	baseCfg := &contract.Config{
		Drivetrains: drivetrains,
		Strategy:    schema.GreedyStrategy,
		Objective:   schema.StdDevObjective,
		Threshold:   0.05,
		MaxPaths:    contract.DefaultMaxPaths,
		RPMs:        []float64{85, 95},
		Units:       schema.MetricUnits,
		Precision:   2,
		Output:      schema.TextOut,
		RangeLow:    1,
		RangeHigh:   4,
		MaxStep:     0.2,
	}
	defaults := contract.ConfigRawInput{BSD: 584, Tire: 48, Crank: 170}
	return mcp_internal.NewMCPServer(baseCfg, defaults)
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		expected string
	}{
		{
			name:     "get_gears without drivetrain",
			tool:     "get_gears",
			args:     map[string]any{},
			expected: "fronts and rears are required",
		},
		{
			name:     "get_best_path missing rears",
			tool:     "get_best_path",
			args:     map[string]any{"fronts": "30,46"},
			expected: "invalid --rears value",
		},
		{
			name:     "get_gears invalid strategy",
			tool:     "get_gears",
			args:     map[string]any{"fronts": "34", "rears": "11,13", "strategy": "random"},
			expected: "invalid strategy",
		},
		{
			name:     "get_best_path invalid threshold",
			tool:     "get_best_path",
			args:     map[string]any{"fronts": "34", "rears": "11,13", "threshold": 150.0},
			expected: "threshold must be between 0 and 100 percent",
		},
		{
			name:     "compare_drivetrains invalid range",
			tool:     "compare_drivetrains",
			args:     map[string]any{"fronts": "34", "rears": "11,13", "range": "4,1"},
			expected: "invalid range",
		},
		{
			name:     "check_steps invalid max step",
			tool:     "check_steps",
			args:     map[string]any{"fronts": "34", "rears": "11,13", "max_step": 120.0},
			expected: "max_step must be between 0 and 100 percent",
		},
		{
			name:     "check_steps negative min gears",
			tool:     "check_steps",
			args:     map[string]any{"fronts": "34", "rears": "11,13", "min_gears": -2.0},
			expected: "min_gears cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, s, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.expected)
		})
	}
}

func TestMCPServerHandlers_GetBestPath(t *testing.T) {
	s := newTestServer()
	res := callTool(t, s, "get_best_path", map[string]any{
		"fronts": "30,46",
		"rears":  "11,13,15,17,19,22,25,28,32,36",
		"all":    true,
	})
	require.False(t, res.IsError, resultText(t, res))

	var results []schema.PathResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &results))
	require.Len(t, results, 1)
	assert.Len(t, results[0].Path, 13)
	assert.Len(t, results[0].Remaining, 7)
	assert.Equal(t, "30/36", results[0].Path[0].Label)
	assert.Equal(t, "46/11", results[0].Path[12].Label)
}

func TestMCPServerHandlers_GetGearsUsesConfiguredDrivetrain(t *testing.T) {
	s := newTestServer(gravel)
	res := callTool(t, s, "get_gears", map[string]any{"objective": "max"})
	require.False(t, res.IsError, resultText(t, res))

	var results []schema.GearsResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "gravel", results[0].Drivetrain.Title)
	assert.Equal(t, schema.MaxObjective, results[0].Drivetrain.Objective)
	assert.Len(t, results[0].Rows, 2)
}

func TestMCPServerHandlers_CompareDrivetrains(t *testing.T) {
	s := newTestServer(gravel)
	res := callTool(t, s, "compare_drivetrains", map[string]any{
		"fronts": "34,50",
		"rears":  "11,12,13,14,15,17,19,21,24,28",
		"label":  "compact",
		"range":  "2,5",
	})
	require.False(t, res.IsError, resultText(t, res))

	var result schema.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
	require.Len(t, result.Details, 2)
	assert.Equal(t, 2.0, result.RangeLow)
	assert.Equal(t, 5.0, result.RangeHigh)
	assert.Equal(t, "gravel", result.Summary.Baseline)
	assert.Equal(t, "compact", result.Details[1].Drivetrain.Title)
}

func TestMCPServerHandlers_CheckSteps(t *testing.T) {
	s := newTestServer(gravel)

	res := callTool(t, s, "check_steps", map[string]any{})
	require.False(t, res.IsError, resultText(t, res))
	var passed schema.CheckResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &passed))
	assert.True(t, passed.Passed)

	// A failed policy is still a successful tool call.
	res = callTool(t, s, "check_steps", map[string]any{"max_step": 10.0, "min_gears": 14.0})
	require.False(t, res.IsError, resultText(t, res))
	var failed schema.CheckResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &failed))
	assert.False(t, failed.Passed)
	assert.Len(t, failed.Failures, 2)
	assert.Equal(t, 14, failed.MinGears)
}
