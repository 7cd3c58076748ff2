package commands

import (
	"errors"

	"dinepos/internal/pkg/guard"
)

var (
	ErrUpdateBillConfigCommandIsNotConstructed = errors.New(
		"UpdateBillConfigCommand must be created via NewUpdateBillConfigCommand constructor",
	)
)

// UpdateBillConfigCommand partially updates the bill auto-print preferences.
// Nil fields leave the stored value unchanged.
type UpdateBillConfigCommand struct { //nolint:recvcheck //using for validation
	autoPrintDineIn   *bool
	autoPrintTakeAway *bool

	guard guard.ConstructorGuard
}

// NewUpdateBillConfigCommand creates a command to patch the bill configuration.
func NewUpdateBillConfigCommand(autoPrintDineIn, autoPrintTakeAway *bool) (UpdateBillConfigCommand, error) {
	return UpdateBillConfigCommand{
		autoPrintDineIn:   autoPrintDineIn,
		autoPrintTakeAway: autoPrintTakeAway,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBillConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBillConfigCommandIsNotConstructed)
}

// AutoPrintDineIn returns the new dine-in auto-print flag, nil for unchanged.
func (c UpdateBillConfigCommand) AutoPrintDineIn() *bool {
	return c.autoPrintDineIn
}

// AutoPrintTakeAway returns the new take-away auto-print flag, nil for unchanged.
func (c UpdateBillConfigCommand) AutoPrintTakeAway() *bool {
	return c.autoPrintTakeAway
}
