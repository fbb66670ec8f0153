package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/desigit/internal/alias"
	desigitmcp "github.com/gorewood/desigit/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run desigit as a Model Context Protocol (MCP) server over stdio.

The tools are read-only lookups over the alias table. They never run git.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "desigit": {
        "command": "desigit",
        "args": ["serve"]
      }
    }
  }

Available tools: list_aliases, resolve_alias, suggest_aliases`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := desigitmcp.NewServer(buildVersion(), alias.Default())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
