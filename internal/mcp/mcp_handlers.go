package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/gearpath/core"
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	defaults contract.ConfigRawInput
}

// geometry returns the millimetre defaults overridden by the request arguments.
func (h *toolHandler) geometry(request mcp.CallToolRequest) *contract.ConfigRawInput {
	g := h.defaults
	if l := request.GetString("label", ""); l != "" {
		g.Label = l
	}
	if v := request.GetFloat("bsd", 0); v > 0 {
		g.BSD = v
	}
	if v := request.GetFloat("tire", 0); v > 0 {
		g.Tire = v
	}
	if v := request.GetFloat("wheel_radius", 0); v > 0 {
		g.WheelRadius = v
	}
	if v := request.GetFloat("crank", 0); v > 0 {
		g.Crank = v
	}
	return &g
}

// hasDrivetrainArgs reports whether the request describes its own drivetrain.
func hasDrivetrainArgs(request mcp.CallToolRequest) bool {
	return strings.TrimSpace(request.GetString("fronts", "")) != "" ||
		strings.TrimSpace(request.GetString("rears", "")) != ""
}

// prepareConfig clones the base config and applies the drivetrain and selection arguments.
// When replace is false the drivetrain of the request is appended to the configured ones.
func (h *toolHandler) prepareConfig(request mcp.CallToolRequest, replace bool) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = ""

	if hasDrivetrainArgs(request) {
		fronts := request.GetString("fronts", "")
		rears := request.GetString("rears", "")
		hubs := request.GetString("hubs", "")
		if replace {
			if err := contract.RevalidateDrivetrain(cfg, fronts, rears, hubs, h.geometry(request)); err != nil {
				return nil, err
			}
		} else {
			g := h.geometry(request)
			g.Fronts, g.Rears, g.Hubs = fronts, rears, hubs
			d, err := contract.ProcessDrivetrainFlags(g)
			if err != nil {
				return nil, err
			}
			cfg.Drivetrains = append(cfg.Drivetrains, d)
		}
	}
	if len(cfg.Drivetrains) == 0 {
		return nil, fmt.Errorf("fronts and rears are required when no drivetrain is configured")
	}

	err := contract.RevalidateSelection(cfg,
		request.GetString("strategy", ""),
		request.GetString("objective", ""),
		request.GetFloat("threshold", 0),
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// jsonResult marshals v into a text tool result.
func jsonResult(v any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetGears(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.prepareConfig(request, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid drivetrain parameters: %v", err)), nil
	}

	results, _, err := core.GetGearsResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gear computation failed: %v", err)), nil
	}
	return jsonResult(results), nil
}

func (h *toolHandler) handleGetBestPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.prepareConfig(request, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid drivetrain parameters: %v", err)), nil
	}
	cfg.ShowAll = request.GetBool("all", cfg.ShowAll)

	results, _, err := core.GetPathResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("path selection failed: %v", err)), nil
	}
	return jsonResult(results), nil
}

func (h *toolHandler) handleCompareDrivetrains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.prepareConfig(request, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid drivetrain parameters: %v", err)), nil
	}
	if r := request.GetString("range", ""); r != "" {
		low, high, err := contract.ParseRange(r)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid range: %v", err)), nil
		}
		cfg.RangeLow, cfg.RangeHigh = low, high
	}

	result, _, err := core.GetCompareResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleCheckSteps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.prepareConfig(request, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid drivetrain parameters: %v", err)), nil
	}
	if v := request.GetFloat("max_step", 0); v != 0 {
		if v < 0 || v >= 100 {
			return mcp.NewToolResultError(fmt.Sprintf("max_step must be between 0 and 100 percent (received %v)", v)), nil
		}
		cfg.MaxStep = v / 100
	}
	if n := request.GetInt("min_gears", 0); n != 0 {
		if n < 0 {
			return mcp.NewToolResultError(fmt.Sprintf("min_gears cannot be negative (received %d)", n)), nil
		}
		cfg.MinGears = n
	}

	result, _, err := core.GetCheckResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("step check failed: %v", err)), nil
	}
	return jsonResult(result), nil
}
