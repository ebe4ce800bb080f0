// Package group implements the room-assignment engine: greedy placement of
// guests and members into host-led rooms, conflict/synergy tag
// recomputation, and post-hoc manual moves.
package group

import (
	"github.com/yctsai/chamber/internal/roster"
)

// LobbyID is the reserved room ID for the synthetic overflow room.
const LobbyID = "lobby"

// Room holds one host and the assignees placed with them. ConflictIDs and
// SynergyIDs are derived sets: they are recomputed in full by Retag after
// every membership change, never maintained incrementally.
type Room struct {
	ID          string          `json:"id"`
	Leader      roster.Person   `json:"leader"`
	Members     []roster.Person `json:"members"`
	Guests      []roster.Person `json:"guests"`
	ConflictIDs []string        `json:"conflict_ids"`
	SynergyIDs  []string        `json:"synergy_ids"`
}

// IsLobby reports whether this is the synthetic overflow room.
func (r Room) IsLobby() bool {
	return r.ID == LobbyID
}

// AssigneeCount returns the number of assignees (host excluded).
func (r Room) AssigneeCount() int {
	return len(r.Members) + len(r.Guests)
}

// Occupants returns leader, members, and guests in that combined order.
func (r Room) Occupants() []roster.Person {
	occ := make([]roster.Person, 0, 1+r.AssigneeCount())
	occ = append(occ, r.Leader)
	occ = append(occ, r.Members...)
	occ = append(occ, r.Guests...)
	return occ
}

// Contains reports whether the person with the given ID occupies the room,
// host included.
func (r Room) Contains(personID string) bool {
	for _, p := range r.Occupants() {
		if p.ID == personID {
			return true
		}
	}
	return false
}
