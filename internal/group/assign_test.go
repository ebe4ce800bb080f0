package group

import (
	"math/rand"
	"testing"

	"github.com/yctsai/chamber/internal/roster"
)

func testSettings() Settings {
	return Settings{
		AllowOverlap:  false,
		TargetPerRoom: 3,
		Index:         testIndex(),
	}
}

func rng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestAssign_MatchedPairsScenario(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Finance", roster.RoleHost),
		person("h2", "Host2", "Design", roster.RoleHost),
	}
	guests := []roster.Person{
		person("g1", "Guest1", "Accounting", roster.RoleGuest),
		person("g2", "Guest2", "Interior Design", roster.RoleGuest),
	}

	// The synergy bias must dominate regardless of shuffle order.
	for seed := int64(0); seed < 10; seed++ {
		res, err := Assign(hosts, guests, testSettings(), rng(seed))
		if err != nil {
			t.Fatalf("Assign failed: %v", err)
		}

		if len(res.Rooms) != 2 {
			t.Fatalf("seed %d: rooms = %d, want 2", seed, len(res.Rooms))
		}
		if res.RunID == "" {
			t.Fatal("RunID is empty")
		}

		finance := res.Rooms[0]
		design := res.Rooms[1]

		if !finance.Contains("g1") {
			t.Errorf("seed %d: Accounting guest not with Finance host", seed)
		}
		if !design.Contains("g2") {
			t.Errorf("seed %d: Interior Design guest not with Design host", seed)
		}

		for _, r := range res.Rooms {
			if len(r.ConflictIDs) != 0 {
				t.Errorf("seed %d: room %s conflicts = %v, want none", seed, r.ID, r.ConflictIDs)
			}
		}
		if len(finance.SynergyIDs) < 2 {
			t.Errorf("seed %d: finance room synergies = %v, want the matched pair", seed, finance.SynergyIDs)
		}
	}
}

func TestAssign_StrictModeNeverPlacesIntoConflict(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
		person("h2", "Host2", "Retail", roster.RoleHost),
	}
	members := []roster.Person{
		person("m1", "M1", "legal", roster.RoleMember),
	}

	// A conflict-free room exists, so strict mode must use it.
	for seed := int64(0); seed < 10; seed++ {
		res, err := Assign(hosts, members, testSettings(), rng(seed))
		if err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
		if !res.Rooms[1].Contains("m1") {
			t.Errorf("seed %d: m1 placed into the conflicting room", seed)
		}
	}
}

func TestAssign_StrictFallbackScenario(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
	}
	members := []roster.Person{
		person("m1", "M1", "Legal", roster.RoleMember),
		person("m2", "M2", "Legal", roster.RoleMember),
		person("m3", "M3", "Legal", roster.RoleMember),
	}

	res, err := Assign(hosts, members, testSettings(), rng(1))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	// Only one room: the strict rule rejects it for every member, and the
	// fewest-assignees fallback puts everyone there anyway.
	room := res.Rooms[0]
	if room.AssigneeCount() != 3 {
		t.Fatalf("assignees = %d, want 3", room.AssigneeCount())
	}
	for _, id := range []string{"h1", "m1", "m2", "m3"} {
		if !contains(room.ConflictIDs, id) {
			t.Errorf("conflict set missing %s: %v", id, room.ConflictIDs)
		}
	}
}

func TestAssign_OverlapAllowedPrefersCleanRoom(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
		person("h2", "Host2", "Retail", roster.RoleHost),
	}
	members := []roster.Person{
		person("m1", "M1", "Legal", roster.RoleMember),
	}

	st := testSettings()
	st.AllowOverlap = true

	res, err := Assign(hosts, members, st, rng(3))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	// +500 for the clean room beats -100 in the conflicting one.
	if !res.Rooms[1].Contains("m1") {
		t.Error("m1 should prefer the conflict-free room even when overlap is allowed")
	}
}

func TestAssign_RoomSizeBalancing(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
		person("h2", "Host2", "Retail", roster.RoleHost),
	}
	var members []roster.Person
	industries := []string{"Food", "Travel", "Media", "Sports", "Music", "Gaming"}
	for i, ind := range industries {
		members = append(members, person(
			string(rune('a'+i)), "M", ind, roster.RoleMember,
		))
	}

	res, err := Assign(hosts, members, testSettings(), rng(7))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	// Six unrelated members over two rooms with target 3: the size term
	// keeps the split even.
	if a, b := res.Rooms[0].AssigneeCount(), res.Rooms[1].AssigneeCount(); a != 3 || b != 3 {
		t.Errorf("room sizes = %d/%d, want 3/3", a, b)
	}
}

func TestAssign_GuestsBeforeMembers(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Retail", roster.RoleHost),
	}
	assignees := []roster.Person{
		person("m1", "M1", "accounting", roster.RoleMember),
		person("g1", "G1", "accounting", roster.RoleGuest),
	}

	// Strict mode, one room: the guest is placed first and takes the
	// conflict-free slot; the member lands via fallback.
	res, err := Assign(hosts, assignees, testSettings(), rng(2))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	room := res.Rooms[0]
	if len(room.Guests) != 1 || len(room.Members) != 1 {
		t.Fatalf("guests/members = %d/%d, want 1/1", len(room.Guests), len(room.Members))
	}
	if !contains(room.ConflictIDs, "g1") || !contains(room.ConflictIDs, "m1") {
		t.Errorf("conflicts = %v, want both duplicated industries", room.ConflictIDs)
	}
}

func TestAssign_ZeroHostsYieldsLobby(t *testing.T) {
	assignees := []roster.Person{
		person("g1", "G1", "accounting", roster.RoleGuest),
		person("m1", "M1", "realtor", roster.RoleMember),
	}

	res, err := Assign(nil, assignees, testSettings(), rng(4))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	if len(res.Rooms) != 1 {
		t.Fatalf("rooms = %d, want 1 lobby", len(res.Rooms))
	}
	lobby := res.Rooms[0]
	if !lobby.IsLobby() {
		t.Errorf("room ID = %q, want %q", lobby.ID, LobbyID)
	}
	if lobby.Leader.ID != "lobby-host" {
		t.Errorf("lobby leader = %+v, want synthetic placeholder", lobby.Leader)
	}
	if len(lobby.Guests) != 1 || len(lobby.Members) != 1 {
		t.Errorf("lobby guests/members = %d/%d, want 1/1", len(lobby.Guests), len(lobby.Members))
	}
}

func TestAssign_ZeroAssignees(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
	}

	res, err := Assign(hosts, nil, testSettings(), rng(5))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if len(res.Rooms) != 1 || res.Rooms[0].AssigneeCount() != 0 {
		t.Errorf("want one empty room, got %+v", res.Rooms)
	}
}

func TestAssign_InvalidSettings(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
	}

	st := testSettings()
	st.TargetPerRoom = 0

	if _, err := Assign(hosts, nil, st, rng(6)); err == nil {
		t.Fatal("expected error for non-positive target_per_room")
	}
}

func TestAssign_ShuffleDoesNotMutateInput(t *testing.T) {
	hosts := []roster.Person{
		person("h1", "Host1", "Legal", roster.RoleHost),
	}
	assignees := []roster.Person{
		person("a", "A", "Food", roster.RoleMember),
		person("b", "B", "Travel", roster.RoleMember),
		person("c", "C", "Media", roster.RoleMember),
	}
	want := append([]roster.Person(nil), assignees...)

	if _, err := Assign(hosts, assignees, testSettings(), rng(8)); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for i := range want {
		if assignees[i].ID != want[i].ID {
			t.Fatalf("input slice reordered at %d", i)
		}
	}
}
