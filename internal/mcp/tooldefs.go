package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var groupRunToolDef = mcp.NewTool("group_run",
	mcp.WithDescription("Assign guests and members to host rooms using the synergy heuristic. Returns the full result document and keeps it as the session's current result."),
	mcp.WithString("hosts_text",
		mcp.Required(),
		mcp.Description("Host roster, one person per line: name, industry[, role]"),
	),
	mcp.WithString("members_text",
		mcp.Description("Member roster, one person per line"),
	),
	mcp.WithString("guests_text",
		mcp.Description("Guest roster, one person per line"),
	),
	mcp.WithString("table_text",
		mcp.Description("Synergy table override, one category per line: category | keywords | opportunities | targets"),
	),
	mcp.WithBoolean("allow_overlap",
		mcp.Description("Allow people from the same industry in one room, with a scoring penalty"),
	),
	mcp.WithNumber("target_per_room",
		mcp.Description("Preferred number of assignees per room"),
	),
	mcp.WithNumber("seed",
		mcp.Description("Random seed for reproducible shuffles"),
	),
)

var groupMoveToolDef = mcp.NewTool("group_move",
	mcp.WithDescription("Move a guest or member between rooms in the session's current result. Conflict and synergy tags of both rooms are recomputed."),
	mcp.WithString("person_id",
		mcp.Required(),
		mcp.Description("ID of the person to move"),
	),
	mcp.WithString("from_room_id",
		mcp.Required(),
		mcp.Description("Room the person currently occupies"),
	),
	mcp.WithString("to_room_id",
		mcp.Required(),
		mcp.Description("Destination room"),
	),
)

var groupStatsToolDef = mcp.NewTool("group_stats",
	mcp.WithDescription("Summary statistics (people, rooms, conflicts, synergies) for the session's current result."),
)

var groupReportToolDef = mcp.NewTool("group_report",
	mcp.WithDescription("Markdown report of the session's current result, with per-person conflict and synergy annotations."),
)

var rosterParseToolDef = mcp.NewTool("roster_parse",
	mcp.WithDescription("Parse free-form roster text into structured people without running an assignment."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Roster text, one person per line: name, industry[, role]"),
	),
	mcp.WithString("role",
		mcp.Description("Default role for lines without one: host, member, or guest (default guest)"),
	),
)

var rosterImportToolDef = mcp.NewTool("roster_import",
	mcp.WithDescription("Import a CSV roster and split it into host, member, and guest texts ready for group_run. Provide exactly one of path or csv_text."),
	mcp.WithString("path",
		mcp.Description("Path to a CSV file"),
	),
	mcp.WithString("csv_text",
		mcp.Description("Inline CSV content"),
	),
)

var categoryTableToolDef = mcp.NewTool("category_table",
	mcp.WithDescription("List the synergy categories in effect: keywords, opportunities, and target categories."),
	mcp.WithString("table_text",
		mcp.Description("Synergy table to inspect; defaults to the configured table"),
	),
)
