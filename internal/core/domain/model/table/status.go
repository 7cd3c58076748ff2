package table

import (
	"fmt"

	"dinepos/internal/pkg/errs"
)

// Status represents the occupancy state of a table.
//
// Unlike a full reservation workflow there are only two states, and both
// transitions are unconditional: submitting items to a table (re)asserts
// Occupied, completing its order always returns it to Available. The invariant
// the rest of the system maintains is that a table is Occupied if and only if
// an active order currently references it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means no active order references the table.
	Available

	// Occupied means an active order currently references the table.
	Occupied
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Occupied:  "occupied",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Occupied:  "occupied",
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for anything other than "available" or "occupied".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid table status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Available and Occupied; Unknown and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
