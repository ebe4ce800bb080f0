package mcp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers. The most recent
// grouping result is kept in memory so follow-up tools (move, stats,
// report) can refer to it without the client echoing the document back.
type Handlers struct {
	cfg *config.Config

	mu   sync.Mutex
	last *ops.ResultDoc
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// lastDoc returns the session's current result document.
func (h *Handlers) lastDoc() (*ops.ResultDoc, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil, errors.NewInvalidRequest("no grouping result in this session; run group_run first")
	}
	return h.last, nil
}

func (h *Handlers) setLastDoc(doc *ops.ResultDoc) {
	h.mu.Lock()
	h.last = doc
	h.mu.Unlock()
}

// Request types for each tool

// GroupRunRequest represents the arguments for group_run.
type GroupRunRequest struct {
	HostsText     string  `json:"hosts_text"`
	MembersText   string  `json:"members_text,omitempty"`
	GuestsText    string  `json:"guests_text,omitempty"`
	TableText     *string `json:"table_text,omitempty"`
	AllowOverlap  *bool   `json:"allow_overlap,omitempty"`
	TargetPerRoom *int    `json:"target_per_room,omitempty"`
	Seed          *int64  `json:"seed,omitempty"`
}

// GroupMoveRequest represents the arguments for group_move.
type GroupMoveRequest struct {
	PersonID   string `json:"person_id"`
	FromRoomID string `json:"from_room_id"`
	ToRoomID   string `json:"to_room_id"`
}

// RosterParseRequest represents the arguments for roster_parse.
type RosterParseRequest struct {
	Text string `json:"text"`
	Role string `json:"role,omitempty"`
}

// RosterImportRequest represents the arguments for roster_import.
type RosterImportRequest struct {
	Path    string `json:"path,omitempty"`
	CSVText string `json:"csv_text,omitempty"`
}

// CategoryTableRequest represents the arguments for category_table.
type CategoryTableRequest struct {
	TableText *string `json:"table_text,omitempty"`
}

// Handler implementations

// HandleGroupRun handles the group_run tool call.
func (h *Handlers) HandleGroupRun(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GroupRunRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	doc, err := ops.Group(h.cfg, ops.GroupInput{
		HostsText:     input.HostsText,
		MembersText:   input.MembersText,
		GuestsText:    input.GuestsText,
		TableText:     input.TableText,
		AllowOverlap:  input.AllowOverlap,
		TargetPerRoom: input.TargetPerRoom,
		Seed:          input.Seed,
	})
	if err != nil {
		return errorResult(err), nil
	}

	h.setLastDoc(doc)
	return successResult(doc)
}

// HandleGroupMove handles the group_move tool call. It mutates the
// session's last grouping result.
func (h *Handlers) HandleGroupMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GroupMoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	doc, err := h.lastDoc()
	if err != nil {
		return errorResult(err), nil
	}

	moved, err := ops.Move(ops.MoveInput{
		Doc:        doc,
		PersonID:   input.PersonID,
		FromRoomID: input.FromRoomID,
		ToRoomID:   input.ToRoomID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	h.setLastDoc(moved)
	return successResult(moved)
}

// HandleGroupStats handles the group_stats tool call.
func (h *Handlers) HandleGroupStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := h.lastDoc()
	if err != nil {
		return errorResult(err), nil
	}

	stats, err := ops.Stats(ops.StatsInput{Doc: doc})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(stats)
}

// HandleGroupReport handles the group_report tool call.
func (h *Handlers) HandleGroupReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := h.lastDoc()
	if err != nil {
		return errorResult(err), nil
	}

	report, err := ops.Report(ops.ReportInput{Doc: doc})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(report)
}

// HandleRosterParse handles the roster_parse tool call.
func (h *Handlers) HandleRosterParse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RosterParseRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Parse(ops.ParseInput{Text: input.Text, Role: input.Role})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRosterImport handles the roster_import tool call.
func (h *Handlers) HandleRosterImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RosterImportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Import(ops.ImportInput{Path: input.Path, CSVText: input.CSVText})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategoryTable handles the category_table tool call.
func (h *Handlers) HandleCategoryTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryTableRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Categories(h.cfg, ops.CategoriesInput{TableText: input.TableText})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed to the client.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if cerr, ok := err.(*errors.ChamberError); ok {
		errorObj := map[string]any{
			"code":    cerr.Code,
			"message": cerr.Message,
			"status":  cerr.Status,
		}
		if cerr.Code != errors.ErrInternal && cerr.Details != nil {
			errorObj["details"] = cerr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
