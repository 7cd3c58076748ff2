package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand closes out a table: its active order is removed and
// the table returns to the available pool.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a table's order.
func NewCompleteOrderCommand(tableID kernel.ID) (CompleteOrderCommand, error) {
	if err := tableID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// TableID returns the identifier of the table being completed.
func (c CompleteOrderCommand) TableID() kernel.ID {
	return c.tableID
}
