package cmd

import (
	"github.com/huangsam/gearpath/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Gearpath MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute gears, best paths, comparisons and step checks via standard tools.`,
	// Drivetrains are optional since every tool call can describe its own.
	PreRunE: optionalDrivetrainSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, *input)
	},
}
