package group

import (
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/roster"
	"github.com/yctsai/chamber/internal/synergy"
)

// Move reassigns one person from the source room to the target room,
// mutating the result in place. The person leaves the source's guest or
// member list (chosen by role) and is appended to the target's
// corresponding list. No-op when source equals target or the person is not
// in the source room. Hosts are never movable. Only the two affected rooms
// are retagged; every other room keeps its tags untouched.
func Move(res *Result, personID, fromID, toID string, ix *synergy.Index) error {
	if fromID == toID {
		return nil
	}

	from := findRoom(res, fromID)
	if from == nil {
		return errors.NewNotFound("room", fromID)
	}
	to := findRoom(res, toID)
	if to == nil {
		return errors.NewNotFound("room", toID)
	}

	if from.Leader.ID == personID {
		return errors.NewHostImmovable(personID)
	}

	person, removed := removePerson(from, personID)
	if !removed {
		return nil
	}

	if person.Role == roster.RoleGuest {
		to.Guests = append(to.Guests, person)
	} else {
		to.Members = append(to.Members, person)
	}

	*from = Retag(*from, ix)
	*to = Retag(*to, ix)
	return nil
}

// findRoom returns a pointer into the result's room slice, or nil.
func findRoom(res *Result, id string) *Room {
	for i := range res.Rooms {
		if res.Rooms[i].ID == id {
			return &res.Rooms[i]
		}
	}
	return nil
}

// removePerson takes the person out of the room's guest or member list.
func removePerson(r *Room, personID string) (roster.Person, bool) {
	for i, p := range r.Guests {
		if p.ID == personID {
			r.Guests = append(r.Guests[:i], r.Guests[i+1:]...)
			return p, true
		}
	}
	for i, p := range r.Members {
		if p.ID == personID {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			return p, true
		}
	}
	return roster.Person{}, false
}
