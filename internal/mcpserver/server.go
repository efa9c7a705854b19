// Package mcpserver exposes route lookups as an MCP tool so editors and
// agents can jump to url declarations over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolName is the name of the lookup tool.
const ToolName = "goto_url"

// New creates an MCP server without tools; call Register to add them.
func New(version string) *server.MCPServer {
	return server.NewMCPServer(
		"routejump",
		version,
		server.WithToolCapabilities(true),
	)
}

// Register adds the goto_url tool backed by handler and returns a function
// that removes it again. Call the returned function on shutdown.
func Register(s *server.MCPServer, handler *Handler) (dispose func()) {
	tool := mcp.NewTool(ToolName,
		mcp.WithDescription("Find the urls.py line declaring the route referenced by a Django {% url %} tag. Pass either line_text, or file and line."),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Absolute path of the Django project root"),
		),
		mcp.WithString("line_text",
			mcp.Description("Text of the template line containing the url tag"),
		),
		mcp.WithString("file",
			mcp.Description("Template file, absolute or relative to project_path"),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line number in file"),
		),
	)
	s.AddTool(tool, handler.Handle)

	return func() {
		s.DeleteTools(ToolName)
	}
}
