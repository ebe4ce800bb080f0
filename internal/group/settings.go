package group

import (
	"fmt"

	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/synergy"
)

// Settings configures one grouping run. The synergy index is threaded here
// explicitly; there is no ambient category state.
type Settings struct {
	// AllowOverlap tolerates duplicate industries in a room at a score
	// penalty. When false (strict), a room holding the candidate's exact
	// industry is skipped outright.
	AllowOverlap bool

	// TargetPerRoom is the target assignee count per room, host excluded.
	// Must be positive.
	TargetPerRoom int

	// Index is the active category index. Nil means no synergy detection:
	// placement still balances conflicts and room size.
	Index *synergy.Index
}

// Validate fails fast on programmer-error settings values.
func (s Settings) Validate() error {
	if s.TargetPerRoom <= 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("target_per_room must be positive, got %d", s.TargetPerRoom))
	}
	return nil
}
