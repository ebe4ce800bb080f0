package group

// Statistics summarizes a grouping result for display. All counts are
// derived from final room membership and the recomputed tag sets.
type Statistics struct {
	TotalPeople   int `json:"total_people"`
	TotalRooms    int `json:"total_rooms"`
	TotalGuests   int `json:"total_guests"`
	TotalMembers  int `json:"total_members"`
	ConflictCount int `json:"conflict_count"`
	SynergyCount  int `json:"synergy_count"`
}

// Statistics derives summary counts from the result's rooms.
func (res *Result) Statistics() Statistics {
	var st Statistics
	st.TotalRooms = len(res.Rooms)
	for _, r := range res.Rooms {
		st.TotalGuests += len(r.Guests)
		st.TotalMembers += len(r.Members)
		st.ConflictCount += len(r.ConflictIDs)
		st.SynergyCount += len(r.SynergyIDs)
	}
	st.TotalPeople = st.TotalRooms + st.TotalGuests + st.TotalMembers
	return st
}

// Find returns the room with the given ID, or nil.
func (res *Result) Find(id string) *Room {
	return findRoom(res, id)
}
