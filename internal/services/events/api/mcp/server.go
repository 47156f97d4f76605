package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hardluck-games/streetlife/internal/services/events/app"
)

const serverName = "streetlife-events"

// Server hosts the event tools on an MCP transport.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer registers the event tools against the application service.
func NewServer(service *app.Service, version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(mcpServer, EventTickTool(), EventTickHandler(service))
	mcp.AddTool(mcpServer, EventResolveChoiceTool(), EventResolveChoiceHandler(service))
	mcp.AddTool(mcpServer, EventListActiveTool(), EventListActiveHandler(service))
	mcp.AddTool(mcpServer, EventListHistoryTool(), EventListHistoryHandler(service))

	return &Server{mcpServer: mcpServer}
}

// Run serves the tools over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("mcp server is not initialized")
	}
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
