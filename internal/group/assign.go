package group

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yctsai/chamber/internal/roster"
)

// Score components for greedy placement. Placement scoring uses the cheap
// symmetric synergy estimate; the authoritative conflict/synergy tags come
// from Retag after all placements and may differ.
const (
	scoreNoConflict      = 500
	scoreOverlapPenalty  = 100
	scoreSynergy         = 200
	scoreUnderTargetStep = 50
	scoreOverTargetStep  = 100
)

// Result is one grouping run: an ordered room partition plus a run ID
// identifying the snapshot. Discarded and rebuilt on the next run.
type Result struct {
	RunID string `json:"run_id"`
	Rooms []Room `json:"rooms"`
}

// Assign partitions hosts and assignees into rooms: one room per host, in
// host order. Guests and members are shuffled independently and placed one
// at a time (guests first) into the highest-scoring room; ties break toward
// the first room in iteration order. When strict overlap rejects every
// room, the candidate falls back to the room with the fewest assignees.
//
// Zero hosts yields a single lobby room led by a synthetic placeholder
// host holding everyone. Callers that want this rejected must validate
// before invoking.
//
// rng isolates all randomness to the shuffle step; nil means time-seeded.
// After placement every room is passed through Retag.
func Assign(hosts, assignees []roster.Person, st Settings, rng *rand.Rand) (*Result, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if len(hosts) == 0 {
		lobby := lobbyRoom()
		for _, p := range assignees {
			if p.Role == roster.RoleGuest {
				lobby.Guests = append(lobby.Guests, p)
			} else {
				lobby.Members = append(lobby.Members, p)
			}
		}
		return &Result{
			RunID: newRunID(),
			Rooms: RetagAll([]Room{lobby}, st.Index),
		}, nil
	}

	rooms := make([]Room, len(hosts))
	for i, h := range hosts {
		rooms[i] = Room{
			ID:          fmt.Sprintf("room-%d", i+1),
			Leader:      h,
			Members:     []roster.Person{},
			Guests:      []roster.Person{},
			ConflictIDs: []string{},
			SynergyIDs:  []string{},
		}
	}

	var guests, members []roster.Person
	for _, p := range assignees {
		if p.Role == roster.RoleGuest {
			guests = append(guests, p)
		} else {
			members = append(members, p)
		}
	}
	guests = shuffled(guests, rng)
	members = shuffled(members, rng)

	for _, p := range guests {
		place(rooms, p, st)
	}
	for _, p := range members {
		place(rooms, p, st)
	}

	return &Result{
		RunID: newRunID(),
		Rooms: RetagAll(rooms, st.Index),
	}, nil
}

// place puts one candidate into the best-scoring room, mutating rooms.
func place(rooms []Room, p roster.Person, st Settings) {
	best := -1
	bestScore := math.MinInt

	for i := range rooms {
		score, ok := scoreRoom(rooms[i], p, st)
		if !ok {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best == -1 {
		// Every room was rejected by the strict overlap rule: fall back
		// to the room with the fewest assignees, first on ties.
		fewest := math.MaxInt
		for i := range rooms {
			if c := rooms[i].AssigneeCount(); c < fewest {
				fewest = c
				best = i
			}
		}
	}

	if p.Role == roster.RoleGuest {
		rooms[best].Guests = append(rooms[best].Guests, p)
	} else {
		rooms[best].Members = append(rooms[best].Members, p)
	}
}

// scoreRoom computes the additive placement score for putting p into r.
// ok is false when the room is rejected outright (strict overlap conflict).
func scoreRoom(r Room, p roster.Person, st Settings) (score int, ok bool) {
	occupants := r.Occupants()
	conflict := hasConflict(p, occupants)
	if conflict && !st.AllowOverlap {
		return 0, false
	}

	if !conflict {
		score += scoreNoConflict
	} else {
		score -= scoreOverlapPenalty
	}

	if st.Index != nil {
		for _, q := range occupants {
			if st.Index.PlacementSynergy(p.Industry, q.Industry) {
				score += scoreSynergy
				break
			}
		}
	}

	count := r.AssigneeCount()
	if count < st.TargetPerRoom {
		score += (st.TargetPerRoom - count) * scoreUnderTargetStep
	} else {
		score -= (count - st.TargetPerRoom + 1) * scoreOverTargetStep
	}

	return score, true
}

// lobbyRoom builds the synthetic overflow room with a placeholder leader.
func lobbyRoom() Room {
	return Room{
		ID: LobbyID,
		Leader: roster.Person{
			ID:       "lobby-host",
			Name:     "Lobby",
			Industry: "",
			Role:     roster.RoleHost,
		},
		Members:     []roster.Person{},
		Guests:      []roster.Person{},
		ConflictIDs: []string{},
		SynergyIDs:  []string{},
	}
}

// shuffled returns a uniformly permuted copy; the input is untouched.
func shuffled(people []roster.Person, rng *rand.Rand) []roster.Person {
	out := append([]roster.Person(nil), people...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// newRunID generates a ULID identifying a result snapshot.
func newRunID() string {
	entropy := ulid.Monotonic(crand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
