package ops

import (
	"fmt"

	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/roster"
)

// ParseInput contains parameters for the Parse operation.
type ParseInput struct {
	Text string // required
	Role string // default role for lines without an override; default "guest"
}

// ParseOutput contains the result of the Parse operation.
type ParseOutput struct {
	People []roster.Person `json:"people"`
	Count  int             `json:"count"`
}

// Parse previews how roster text will be interpreted: useful for checking
// names, industries, role overrides, and the stable IDs before a run.
func Parse(input ParseInput) (*ParseOutput, error) {
	role := input.Role
	if role == "" {
		role = string(roster.RoleGuest)
	}
	if !roster.ValidRole(role) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("role must be one of: host, member, guest (got %q)", input.Role))
	}

	people := roster.Parse(input.Text, roster.Role(role))
	return &ParseOutput{People: people, Count: len(people)}, nil
}
