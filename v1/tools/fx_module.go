package tools

import (
	"go.uber.org/fx"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mindkeep-ai/mindkeep/v1/memory"
)

// FXModule wires the MCP tool surface into Fx.
//
// It provides:
//   - *server.MCPServer  (NewMCPServer)
//   - *Tools             (NewTools, backed by the memory service)
//
// and registers the memory_* tools on startup.
var FXModule = fx.Module(
	"tools",

	fx.Provide(
		NewMCPServer,
		func(svc *memory.Service) MemoryService { return svc },
		NewTools,
	),

	fx.Invoke(RegisterTools),
)

// NewMCPServer builds the MCP server the tools attach to.
func NewMCPServer() *server.MCPServer {
	return server.NewMCPServer(
		"mindkeep",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
}

// RegisterTools attaches the memory tools to the server.
func RegisterTools(srv *server.MCPServer, t *Tools) {
	t.Register(srv)
}
