// ABOUTME: MCP server setup for the keto tracker.
// ABOUTME: Wraps MCP server with storage Repository and config.
package mcp

import (
	"context"

	"github.com/harperreed/keto/internal/config"
	"github.com/harperreed/keto/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	cfg       *config.Config
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, cfg *config.Config) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "keto",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		cfg:       cfg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
