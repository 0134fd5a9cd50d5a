// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gearpath/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// drivetrainParams are the tool arguments that describe a drivetrain.
// Lengths are in millimetres and fall back to the server defaults.
func drivetrainParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("fronts", mcp.Description("Chainring teeth, e.g. '30,46'. Uses the configured drivetrains when omitted.")),
		mcp.WithString("rears", mcp.Description("Cog teeth, e.g. '11,13,15,17,19,22,25,28,32,36'.")),
		mcp.WithString("hubs", mcp.Description("Internal hub ratios, e.g. '0.75,1,1.33'.")),
		mcp.WithString("label", mcp.Description("Display name of the drivetrain.")),
		mcp.WithNumber("bsd", mcp.Description("Rim bead seat diameter in mm.")),
		mcp.WithNumber("tire", mcp.Description("Tire width in mm.")),
		mcp.WithNumber("wheel_radius", mcp.Description("Wheel radius in mm. Overrides bsd and tire.")),
		mcp.WithNumber("crank", mcp.Description("Crank length in mm.")),
	}
}

// selectionParams are the tool arguments of the path selection policy.
func selectionParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("strategy", mcp.Description("Search strategy. Defaults to 'greedy'."), mcp.Enum("greedy", "exhaustive")),
		mcp.WithString("objective", mcp.Description("Objective minimized by the best path. Defaults to 'stddev'."), mcp.Enum("stddev", "sum", "max")),
		mcp.WithNumber("threshold", mcp.Description("Minimum step between path gears in percent. Defaults to 5.")),
	}
}

// newTool builds a tool from its name, description and argument groups.
func newTool(name, description string, groups ...[]mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(description)}
	for _, g := range groups {
		opts = append(opts, g...)
	}
	return mcp.NewTool(name, opts...)
}

// NewMCPServer initializes and configures the Gearpath MCP server without starting it.
// The defaults hold the millimetre geometry used when a tool call omits it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, defaults contract.ConfigRawInput) *server.MCPServer {
	s := server.NewMCPServer(
		"Gearpath Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		defaults: defaults,
	}

	// --- 1. Tool: get_gears ---
	s.AddTool(newTool("get_gears",
		"Compute every gear of a drivetrain with its gain ratio, step and speeds, marking the best path.",
		drivetrainParams(), selectionParams(),
	), h.handleGetGears)

	// --- 2. Tool: get_best_path ---
	s.AddTool(newTool("get_best_path",
		"Find the ordered, non-redundant shifting path through a drivetrain with the most even steps.",
		drivetrainParams(), selectionParams(),
		[]mcp.ToolOption{mcp.WithBoolean("all", mcp.Description("Also return the gears left out of the path."))},
	), h.handleGetBestPath)

	// --- 3. Tool: compare_drivetrains ---
	s.AddTool(newTool("compare_drivetrains",
		"Compare the best paths of the configured drivetrains, plus the one given by arguments, against the first one.",
		drivetrainParams(), selectionParams(),
		[]mcp.ToolOption{mcp.WithString("range", mcp.Description("Gain ratio window as 'low,high', e.g. '1,4'."))},
	), h.handleCompareDrivetrains)

	// --- 4. Tool: check_steps ---
	s.AddTool(newTool("check_steps",
		"Check that no best path step exceeds a limit and that each path has enough gears.",
		drivetrainParams(), selectionParams(),
		[]mcp.ToolOption{
			mcp.WithNumber("max_step", mcp.Description("Largest allowed step in percent. Defaults to 20.")),
			mcp.WithNumber("min_gears", mcp.Description("Smallest allowed path size. 0 disables the check.")),
		},
	), h.handleCheckSteps)

	return s
}

// StartMCPServer starts the Gearpath MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, defaults contract.ConfigRawInput) error {
	s := NewMCPServer(baseCfg, defaults)
	return server.ServeStdio(s)
}
