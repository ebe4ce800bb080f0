package ops

import (
	"math/rand"

	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/group"
	"github.com/yctsai/chamber/internal/roster"
	"github.com/yctsai/chamber/internal/synergy"
)

// GroupInput contains parameters for the Group operation. Unset optional
// fields fall back to config values.
type GroupInput struct {
	HostsText   string // required: at least one parsable host line
	MembersText string
	GuestsText  string

	TableText     *string // synergy table; nil → config default
	AllowOverlap  *bool
	TargetPerRoom *int

	// Seed fixes the shuffle for reproducible runs; nil means a fresh
	// non-deterministic shuffle per invocation.
	Seed *int64
}

// Group parses the three rosters and the synergy table, runs the
// assignment engine, and returns a self-contained result document.
// Zero hosts is rejected here, before the engine runs.
func Group(cfg *config.Config, input GroupInput) (*ResultDoc, error) {
	hosts := roster.Parse(input.HostsText, roster.RoleHost)
	if len(hosts) == 0 {
		return nil, errors.NewNoHosts()
	}

	members := roster.Parse(input.MembersText, roster.RoleMember)
	guests := roster.Parse(input.GuestsText, roster.RoleGuest)

	table := ""
	if input.TableText != nil {
		table = *input.TableText
	} else {
		var err error
		table, err = cfg.SynergyTable()
		if err != nil {
			return nil, errors.NewInvalidRequest("synergy table: " + err.Error())
		}
	}

	settings := group.Settings{
		AllowOverlap:  cfg.AllowOverlap,
		TargetPerRoom: cfg.TargetPerRoom,
		Index:         synergy.ParseTable(table),
	}
	if input.AllowOverlap != nil {
		settings.AllowOverlap = *input.AllowOverlap
	}
	if input.TargetPerRoom != nil {
		settings.TargetPerRoom = *input.TargetPerRoom
	}

	var rng *rand.Rand
	if input.Seed != nil {
		rng = rand.New(rand.NewSource(*input.Seed))
	}

	assignees := append(append([]roster.Person{}, members...), guests...)
	res, err := group.Assign(hosts, assignees, settings, rng)
	if err != nil {
		return nil, err
	}

	return &ResultDoc{
		RunID:         res.RunID,
		AllowOverlap:  settings.AllowOverlap,
		TargetPerRoom: settings.TargetPerRoom,
		Table:         table,
		Rooms:         res.Rooms,
		Stats:         res.Statistics(),
	}, nil
}
