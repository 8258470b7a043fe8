package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDevtoolMCPServer creates an MCP server exposing devtool's check and
// config surface for the project rooted at projectPath.
func NewDevtoolMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"devtool",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
