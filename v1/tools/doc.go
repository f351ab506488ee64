// Package tools exposes the memory service to AI agents as MCP tools.
//
// Four tools are registered: memory_save, memory_recall, memory_forget,
// and memory_count. Filters arrive in the same wire format the filter
// package serializes to, either as a JSON object argument or as a
// JSON-encoded string; they are parsed with filter.Decode and handed to
// the memory service unchanged.
//
//	srv := server.NewMCPServer("mindkeep", "1.0.0")
//	tools.NewTools(memoryService, log).Register(srv)
//	server.ServeStdio(srv)
package tools
