package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/ytgap/internal/trends"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes content-gap tools.
type Server struct {
	svc *trends.Service
	now func() string
	mcp *server.MCPServer
}

// NewServer creates a new MCP server backed by svc.
func NewServer(svc *trends.Service) *Server {
	s := &Server{
		svc: svc,
		now: today,
	}

	s.mcp = server.NewMCPServer(
		"ytgap",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(fetchTrendsTool, s.handleFetchTrends)
	s.mcp.AddTool(generateIdeasTool, s.handleGenerateIdeas)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
