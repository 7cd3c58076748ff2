package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/guard"
)

var (
	ErrCreateTableCommandIsNotConstructed = errors.New(
		"CreateTableCommand must be created via NewCreateTableCommand constructor",
	)
)

// CreateTableCommand represents a request to register a new physical table.
// The identifier may be caller-supplied or generated by the caller via
// kernel.NewID; status defaults to available when the zero value is passed.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	id       kernel.ID
	name     string
	seats    int
	category string
	status   table.Status

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a new table.
// Field validation happens in the Table constructor when the command is
// handled; only the identifier is checked here.
func NewCreateTableCommand(id kernel.ID, name string, seats int, category string, status table.Status) (CreateTableCommand, error) {
	if err := id.Validate(); err != nil {
		return CreateTableCommand{}, err
	}

	return CreateTableCommand{
		id:       id,
		name:     name,
		seats:    seats,
		category: category,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// ID returns the identifier for the new table.
func (c CreateTableCommand) ID() kernel.ID {
	return c.id
}

// Name returns the display name for the new table.
func (c CreateTableCommand) Name() string {
	return c.name
}

// Seats returns the seat count for the new table.
func (c CreateTableCommand) Seats() int {
	return c.seats
}

// Category returns the free-text grouping for the new table.
func (c CreateTableCommand) Category() string {
	return c.category
}

// Status returns the requested initial status, or the zero value for the default.
func (c CreateTableCommand) Status() table.Status {
	return c.status
}
