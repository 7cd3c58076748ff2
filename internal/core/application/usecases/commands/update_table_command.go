package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/guard"
)

var (
	ErrUpdateTableCommandIsNotConstructed = errors.New(
		"UpdateTableCommand must be created via NewUpdateTableCommand constructor",
	)
)

// UpdateTableCommand represents a partial update of a table's fields.
// Nil fields are left unchanged, mirroring the wire contract of the PUT
// endpoint.
type UpdateTableCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	name     *string
	seats    *int
	category *string
	status   *table.Status

	guard guard.ConstructorGuard
}

// NewUpdateTableCommand creates a partial-update command for a table.
// At least the identifier must be valid; nil field pointers mean "unchanged".
func NewUpdateTableCommand(id kernel.ID, name *string, seats *int, category *string, status *table.Status) (UpdateTableCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateTableCommand{}, err
	}

	return UpdateTableCommand{
		id:       id,
		name:     name,
		seats:    seats,
		category: category,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTableCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableCommandIsNotConstructed)
}

// ID returns the identifier of the table to update.
func (c UpdateTableCommand) ID() kernel.ID {
	return c.id
}

// Name returns the new display name, or nil to leave it unchanged.
func (c UpdateTableCommand) Name() *string {
	return c.name
}

// Seats returns the new seat count, or nil to leave it unchanged.
func (c UpdateTableCommand) Seats() *int {
	return c.seats
}

// Category returns the new grouping, or nil to leave it unchanged.
func (c UpdateTableCommand) Category() *string {
	return c.category
}

// Status returns the new status, or nil to leave it unchanged.
func (c UpdateTableCommand) Status() *table.Status {
	return c.status
}
