package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrDeleteTableCommandIsNotConstructed = errors.New(
		"DeleteTableCommand must be created via NewDeleteTableCommand constructor",
	)

	// ErrTableHasActiveOrder is returned when deletion is attempted while an
	// active order still references the table. Deleting the table would
	// orphan the order, so the delete is rejected instead.
	ErrTableHasActiveOrder = errors.New("table has an active order")
)

// DeleteTableCommand represents a request to remove a table from the registry.
type DeleteTableCommand struct { //nolint:recvcheck //using for validation
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteTableCommand creates a command to remove a table.
func NewDeleteTableCommand(id kernel.ID) (DeleteTableCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteTableCommand{}, err
	}

	return DeleteTableCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTableCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTableCommandIsNotConstructed)
}

// ID returns the identifier of the table to delete.
func (c DeleteTableCommand) ID() kernel.ID {
	return c.id
}
