package kernel

import (
	"strconv"
	"strings"
	"time"

	"dinepos/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that represents an entity identifier.
//
// Identifiers are externally assignable: clients may supply their own id when
// creating a table or an invoice, and the system generates a millisecond-epoch
// identifier when none is given. Both forms are opaque strings once inside the
// domain.
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString. ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a new time-based identifier
//	id := kernel.NewID()
//
//	// Adopt a caller-supplied identifier
//	id, err := kernel.IDFromString("1700000000000")
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value string
}

// NewID generates a new identifier from the current time in milliseconds
// since the Unix epoch. This mirrors how clients generate identifiers, so
// server-generated and client-generated ids are indistinguishable.
func NewID() ID {
	return ID{value: strconv.FormatInt(time.Now().UnixMilli(), 10)}
}

// IDFromString adopts an externally supplied identifier.
// Returns an error if the string is empty or blank.
func IDFromString(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier as a string.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
