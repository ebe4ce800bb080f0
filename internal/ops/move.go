package ops

import (
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/group"
)

// MoveInput contains parameters for the Move operation.
type MoveInput struct {
	Doc        *ResultDoc // required: a prior Group result
	PersonID   string     // required
	FromRoomID string     // required
	ToRoomID   string     // required
}

// Move applies a single person-move between two rooms of an existing
// result and recomputes the tags of exactly those two rooms. The document
// is updated in place and returned with refreshed statistics.
func Move(input MoveInput) (*ResultDoc, error) {
	if input.Doc == nil {
		return nil, errors.NewInvalidRequest("result document is required")
	}
	if input.PersonID == "" || input.FromRoomID == "" || input.ToRoomID == "" {
		return nil, errors.NewInvalidRequest("person_id, from_room_id, and to_room_id are required")
	}

	res := input.Doc.result()
	if err := group.Move(res, input.PersonID, input.FromRoomID, input.ToRoomID, input.Doc.index()); err != nil {
		return nil, err
	}

	input.Doc.Rooms = res.Rooms
	input.Doc.Stats = res.Statistics()
	return input.Doc, nil
}
