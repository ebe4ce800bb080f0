// Package ops is the operation layer shared by the CLI, the MCP server,
// and the web UI. Each operation takes a typed input, validates it at the
// boundary, and returns a JSON-serializable output or a coded error.
package ops

import (
	"github.com/yctsai/chamber/internal/group"
	"github.com/yctsai/chamber/internal/synergy"
)

// ResultDoc is a self-contained grouping snapshot: the room partition plus
// the settings and synergy table that produced it, so follow-up operations
// (move, stats, report, export) need nothing else.
type ResultDoc struct {
	RunID         string           `json:"run_id"`
	AllowOverlap  bool             `json:"allow_overlap"`
	TargetPerRoom int              `json:"target_per_room"`
	Table         string           `json:"table,omitempty"`
	Rooms         []group.Room     `json:"rooms"`
	Stats         group.Statistics `json:"stats"`
}

// result wraps the rooms as an engine result for mutation.
func (d *ResultDoc) result() *group.Result {
	return &group.Result{RunID: d.RunID, Rooms: d.Rooms}
}

// index rebuilds the synergy index from the embedded table text.
func (d *ResultDoc) index() *synergy.Index {
	return synergy.ParseTable(d.Table)
}
