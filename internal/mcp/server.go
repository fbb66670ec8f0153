// Package mcp provides a Model Context Protocol server for desigit.
// It exposes the alias table as read-only tools so an agent can look up,
// expand and spell-check aliases. It never runs git.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/desigit/internal/alias"
)

// NewServer creates an MCP server with all desigit tools registered.
func NewServer(version string, table *alias.Table) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "desigit",
		Version: version,
	}, nil)
	registerTools(server, table)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all desigit tools to the server.
func registerTools(server *mcp.Server, table *alias.Table) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_aliases",
		Description: "List Hinglish aliases and the git command each runs, in table order. Optionally filter by category tag (setup, create, snapshot, branch, remote, inspect, patch, debug, admin, plumbing, other).",
		Annotations: readOnlyAnnotations(),
	}, handleListAliases(table))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_alias",
		Description: "Resolve an alias to its git command and the exact argument vector desigit would run with the given args. Unknown aliases return valid=false with close matches.",
		Annotations: readOnlyAnnotations(),
	}, handleResolveAlias(table))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_aliases",
		Description: "Find aliases close to a possibly misspelt name. Matches both alias names and git command names, so 'stauts' finds the alias for git status.",
		Annotations: readOnlyAnnotations(),
	}, handleSuggestAliases(table))
}
