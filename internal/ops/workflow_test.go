package ops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
)

func testCfg() *config.Config {
	return config.DefaultConfig()
}

// TestFullWorkflow exercises the complete grouping lifecycle:
// import → group → stats → move → report → export.
func TestFullWorkflow(t *testing.T) {
	cfg := testCfg()

	// 1. Import a CSV roster.
	imported, err := Import(ImportInput{
		CSVText: "Name,Industry,Role\n" +
			"Alice,Finance,host\n" +
			"Beth,Design,host\n" +
			"Carl,Accounting,guest\n" +
			"Dina,Interior Design,guest\n" +
			"Evan,Consulting,member\n" +
			"Fay,Realtor,member",
	})
	require.NoError(t, err)
	require.Equal(t, 2, imported.Hosts)
	require.Equal(t, 2, imported.Guests)
	require.Equal(t, 2, imported.Members)

	// 2. Run grouping with a fixed seed.
	doc, err := Group(cfg, GroupInput{
		HostsText:   imported.HostsText,
		MembersText: imported.MembersText,
		GuestsText:  imported.GuestsText,
		TableText:   stringPtr(testTable),
		Seed:        int64Ptr(99),
	})
	require.NoError(t, err)
	require.Len(t, doc.Rooms, 2)
	require.NotEmpty(t, doc.RunID)

	// 3. Stats re-derivation matches the embedded stats.
	st, err := Stats(StatsInput{Doc: doc})
	require.NoError(t, err)
	require.Equal(t, doc.Stats, *st)
	require.Equal(t, 6, st.TotalPeople)

	// 4. Move a guest between rooms and verify conservation.
	var guestID string
	from, to := doc.Rooms[0].ID, doc.Rooms[1].ID
	if len(doc.Rooms[0].Guests) > 0 {
		guestID = doc.Rooms[0].Guests[0].ID
	} else {
		from, to = to, from
		guestID = doc.Rooms[1].Guests[0].ID
	}

	moved, err := Move(MoveInput{Doc: doc, PersonID: guestID, FromRoomID: from, ToRoomID: to})
	require.NoError(t, err)
	require.Equal(t, 6, moved.Stats.TotalPeople)

	// 5. Report mentions every person.
	report, err := Report(ReportInput{Doc: moved})
	require.NoError(t, err)
	for _, name := range []string{"Alice", "Beth", "Carl", "Dina", "Evan", "Fay"} {
		require.Contains(t, report.Markdown, name)
	}
	require.Contains(t, report.Markdown, "## Room 1")

	// 6. Export has one row per occupant plus a header.
	exported, err := Export(ExportInput{Doc: moved})
	require.NoError(t, err)
	require.Equal(t, 6, exported.Rows)
	require.Equal(t, 7, strings.Count(exported.CSV, "\n"))
}

func TestMoveOp_Validation(t *testing.T) {
	_, err := Move(MoveInput{PersonID: "p", FromRoomID: "a", ToRoomID: "b"})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	doc, err := Group(testCfg(), testGroupInput())
	require.NoError(t, err)

	_, err = Move(MoveInput{Doc: doc, PersonID: "", FromRoomID: "room-1", ToRoomID: "room-2"})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	_, err = Move(MoveInput{Doc: doc, PersonID: "nope", FromRoomID: "room-9", ToRoomID: "room-2"})
	require.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestStatsOp_RequiresDoc(t *testing.T) {
	_, err := Stats(StatsInput{})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))
}
