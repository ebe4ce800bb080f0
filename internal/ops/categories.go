package ops

import (
	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/synergy"
)

// CategoriesInput contains parameters for the Categories operation.
type CategoriesInput struct {
	TableText *string // optional; defaults to the configured table
}

// CategoriesOutput lists the parsed synergy categories.
type CategoriesOutput struct {
	Categories []*synergy.Entry `json:"categories"`
	Count      int              `json:"count"`
}

// Categories parses a synergy table and returns its entries, so callers
// can inspect which keywords and targets are in effect.
func Categories(cfg *config.Config, input CategoriesInput) (*CategoriesOutput, error) {
	var text string
	if input.TableText != nil {
		text = *input.TableText
	} else {
		t, err := cfg.SynergyTable()
		if err != nil {
			return nil, err
		}
		text = t
	}

	ix := synergy.ParseTable(text)
	if ix.Len() == 0 {
		return nil, errors.NewInvalidRequest("synergy table has no valid categories")
	}

	return &CategoriesOutput{Categories: ix.Entries(), Count: ix.Len()}, nil
}
