package group

import (
	"github.com/yctsai/chamber/internal/roster"
	"github.com/yctsai/chamber/internal/synergy"
)

// Retag recomputes the conflict and synergy tag sets for a single room and
// returns a new Room value; the input is not mutated. For every occupant
// (leader, members, guests, in that order):
//
//   - Conflict: another occupant has an identical industry string after
//     trimming and case folding.
//   - Synergy: the occupant's industry maps to a category entry, and some
//     other occupant either direct-matches that entry or belongs to an
//     entry named in its target list. Directional per occupant.
//
// Always a full recomputation; calling Retag twice without a membership
// change yields identical sets.
func Retag(r Room, ix *synergy.Index) Room {
	occupants := r.Occupants()

	conflicts := make([]string, 0)
	synergies := make([]string, 0)

	for _, p := range occupants {
		if hasConflict(p, occupants) {
			conflicts = append(conflicts, p.ID)
		}
		if ix != nil && hasSynergy(p, occupants, ix) {
			synergies = append(synergies, p.ID)
		}
	}

	out := r
	out.Members = append([]roster.Person(nil), r.Members...)
	out.Guests = append([]roster.Person(nil), r.Guests...)
	out.ConflictIDs = conflicts
	out.SynergyIDs = synergies
	return out
}

// RetagAll applies Retag to every room.
func RetagAll(rooms []Room, ix *synergy.Index) []Room {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = Retag(r, ix)
	}
	return out
}

func hasConflict(p roster.Person, occupants []roster.Person) bool {
	ind := roster.Normalize(p.Industry)
	for _, q := range occupants {
		if q.ID == p.ID {
			continue
		}
		if roster.Normalize(q.Industry) == ind {
			return true
		}
	}
	return false
}

func hasSynergy(p roster.Person, occupants []roster.Person, ix *synergy.Index) bool {
	for _, q := range occupants {
		if q.ID == p.ID {
			continue
		}
		if ix.Synergy(p.Industry, q.Industry) {
			return true
		}
	}
	return false
}
