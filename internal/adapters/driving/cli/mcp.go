package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/metamap-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can run
concept extraction against the local MetaMap installation.

The server communicates over stdio using JSON-RPC. Client configuration:
  {
    "mcpServers": {
      "metamap": {
        "command": "/path/to/metamap-cli",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireToolPath(); err != nil {
		return err
	}

	ports := &mcp.Ports{
		Extract: extractionService,
		History: historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
