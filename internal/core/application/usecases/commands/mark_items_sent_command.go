package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrMarkItemsSentCommandIsNotConstructed = errors.New(
		"MarkItemsSentCommand must be created via NewMarkItemsSentCommand constructor",
	)
)

// MarkItemsSentCommand flags every item on a table's order as sent to the
// kitchen, typically right after a kitchen ticket is printed.
type MarkItemsSentCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.ID

	guard guard.ConstructorGuard
}

// NewMarkItemsSentCommand creates a command to mark a table's items as sent.
func NewMarkItemsSentCommand(tableID kernel.ID) (MarkItemsSentCommand, error) {
	if err := tableID.Validate(); err != nil {
		return MarkItemsSentCommand{}, err
	}

	return MarkItemsSentCommand{
		tableID: tableID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemsSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemsSentCommandIsNotConstructed)
}

// TableID returns the identifier of the table whose order is affected.
func (c MarkItemsSentCommand) TableID() kernel.ID {
	return c.tableID
}
