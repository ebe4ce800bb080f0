package ops

import (
	"fmt"
	"strings"

	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/group"
	"github.com/yctsai/chamber/internal/roster"
	"github.com/yctsai/chamber/internal/synergy"
)

// ReportInput contains parameters for the Report operation.
type ReportInput struct {
	Doc *ResultDoc // required
}

// ReportOutput contains the rendered markdown report.
type ReportOutput struct {
	Markdown string `json:"markdown"`
}

// MatchDetail explains one synergy pairing for a person: who they match,
// why, and the suggested opportunities from the matched category.
type MatchDetail struct {
	Target        roster.Person `json:"target"`
	Reason        string        `json:"reason"`
	Opportunities []string      `json:"opportunities,omitempty"`
}

// Report renders a result document as a markdown room report: one section
// per room with conflict and synergy marks and the match reasons behind
// each synergy tag.
func Report(input ReportInput) (*ReportOutput, error) {
	if input.Doc == nil {
		return nil, errors.NewInvalidRequest("result document is required")
	}

	doc := input.Doc
	ix := doc.index()

	var b strings.Builder
	fmt.Fprintf(&b, "# Room assignments\n\n")
	fmt.Fprintf(&b, "Run `%s` — %d rooms, %d people, %d conflicts, %d synergies\n",
		doc.RunID, doc.Stats.TotalRooms, doc.Stats.TotalPeople,
		doc.Stats.ConflictCount, doc.Stats.SynergyCount)

	for i, room := range doc.Rooms {
		title := fmt.Sprintf("Room %d", i+1)
		if room.IsLobby() {
			title = "Lobby"
		}
		fmt.Fprintf(&b, "\n## %s (%d people)\n\n", title, 1+room.AssigneeCount())

		writePerson(&b, room, room.Leader, "host", ix)
		for _, g := range room.Guests {
			writePerson(&b, room, g, "guest", ix)
		}
		for _, m := range room.Members {
			writePerson(&b, room, m, "member", ix)
		}
	}

	return &ReportOutput{Markdown: b.String()}, nil
}

// writePerson emits one occupant line plus any synergy match details.
func writePerson(b *strings.Builder, room group.Room, p roster.Person, kind string, ix *synergy.Index) {
	marks := ""
	if idInList(room.ConflictIDs, p.ID) {
		marks += " ⚠️"
	}
	if idInList(room.SynergyIDs, p.ID) {
		marks += " 🤝"
	}
	fmt.Fprintf(b, "- **%s** (%s, %s)%s\n", p.Name, p.Industry, kind, marks)

	for _, m := range MatchDetails(p, room, ix) {
		line := fmt.Sprintf("  - with %s (%s): %s", m.Target.Name, m.Target.Industry, m.Reason)
		if len(m.Opportunities) > 0 {
			line += " — " + strings.Join(m.Opportunities, ", ")
		}
		fmt.Fprintln(b, line)
	}
}

// MatchDetails lists the synergy pairings for one occupant: every other
// occupant that either shares the person's category entry or belongs to a
// category the person's entry targets.
func MatchDetails(p roster.Person, room group.Room, ix *synergy.Index) []MatchDetail {
	if ix == nil {
		return nil
	}
	entry := ix.Match(p.Industry)
	if entry == nil {
		return nil
	}

	var details []MatchDetail
	for _, other := range room.Occupants() {
		if other.ID == p.ID {
			continue
		}
		if entry.MatchesIndustry(other.Industry) {
			details = append(details, MatchDetail{
				Target:        other,
				Reason:        fmt.Sprintf("both in %s", entry.Category),
				Opportunities: entry.Opportunities,
			})
			continue
		}
		otherEntry := ix.Match(other.Industry)
		if otherEntry == nil {
			continue
		}
		for _, t := range entry.Targets {
			if t == otherEntry.Category {
				details = append(details, MatchDetail{
					Target:        other,
					Reason:        fmt.Sprintf("%s x %s", entry.Category, otherEntry.Category),
					Opportunities: entry.Opportunities,
				})
				break
			}
		}
	}
	return details
}

func idInList(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
