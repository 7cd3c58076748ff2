package commands

import (
	"errors"

	"dinepos/internal/pkg/guard"
)

var (
	ErrUpdateKOTConfigCommandIsNotConstructed = errors.New(
		"UpdateKOTConfigCommand must be created via NewUpdateKOTConfigCommand constructor",
	)
)

// UpdateKOTConfigCommand partially updates the Kitchen Order Ticket printing
// preferences. Nil fields leave the stored value unchanged.
type UpdateKOTConfigCommand struct { //nolint:recvcheck //using for validation
	printByDepartment *bool
	numberOfCopies    *int

	guard guard.ConstructorGuard
}

// NewUpdateKOTConfigCommand creates a command to patch the KOT configuration.
// An all-nil command is valid and leaves the configuration untouched.
func NewUpdateKOTConfigCommand(printByDepartment *bool, numberOfCopies *int) (UpdateKOTConfigCommand, error) {
	return UpdateKOTConfigCommand{
		printByDepartment: printByDepartment,
		numberOfCopies:    numberOfCopies,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateKOTConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKOTConfigCommandIsNotConstructed)
}

// PrintByDepartment returns the new department-split flag, nil for unchanged.
func (c UpdateKOTConfigCommand) PrintByDepartment() *bool {
	return c.printByDepartment
}

// NumberOfCopies returns the new copy count, nil for unchanged.
func (c UpdateKOTConfigCommand) NumberOfCopies() *int {
	return c.numberOfCopies
}
