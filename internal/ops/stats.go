package ops

import (
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/group"
)

// StatsInput contains parameters for the Stats operation.
type StatsInput struct {
	Doc *ResultDoc // required
}

// Stats re-derives the summary statistics from a result document's final
// room membership.
func Stats(input StatsInput) (*group.Statistics, error) {
	if input.Doc == nil {
		return nil, errors.NewInvalidRequest("result document is required")
	}
	st := input.Doc.result().Statistics()
	return &st, nil
}
