package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yctsai/chamber/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"group_run": {
		def:     groupRunToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGroupRun },
	},
	"group_move": {
		def:     groupMoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGroupMove },
	},
	"group_stats": {
		def:     groupStatsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGroupStats },
	},
	"group_report": {
		def:     groupReportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGroupReport },
	},
	"roster_parse": {
		def:     rosterParseToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRosterParse },
	},
	"roster_import": {
		def:     rosterImportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRosterImport },
	},
	"category_table": {
		def:     categoryTableToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategoryTable },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Chamber tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"chamber",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(cfg *config.Config, version string) error {
	s := NewServer(cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
