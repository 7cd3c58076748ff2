package invoice

import (
	"fmt"

	"dinepos/internal/pkg/errs"
)

// OrderType distinguishes dine-in invoices, which snapshot a table name,
// from take-away invoices, which are not bound to any table.
type OrderType int

const (
	// UnknownOrderType represents an invalid or undefined order type.
	UnknownOrderType OrderType = iota

	// DineIn marks an invoice produced by completing a table order.
	DineIn

	// TakeAway marks an invoice produced from a take-away cart.
	TakeAway
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownOrderType: "unknown",
		DineIn:           "dine-in",
		TakeAway:         "takeaway",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // UnknownOrderType is intentionally excluded as it's invalid
	return map[OrderType]string{
		DineIn:   "dine-in",
		TakeAway: "takeaway",
	}
}

// OrderTypeFromString parses a wire representation into an OrderType.
// Returns an error for anything other than "dine-in" or "takeaway".
func OrderTypeFromString(s string) (OrderType, error) {
	for ot, str := range getValidOrderTypeStrings() {
		if str == s {
			return ot, nil
		}
	}
	return UnknownOrderType, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the OrderType value is valid.
func (ot OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[ot]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", ot))
	}
	return nil
}

// String returns the wire representation of the order type.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (ot OrderType) String() string {
	if str, ok := getOrderTypeStrings()[ot]; ok {
		return str
	}
	return "unknown"
}
