package settings

import (
	"fmt"

	"dinepos/internal/pkg/errs"
)

// KOTConfigKey is the exclusion key used to serialize read-modify-write
// access to the KOT configuration singleton.
const KOTConfigKey = "config/kot"

// KOTConfig holds the Kitchen Order Ticket printing preferences.
// It is a process-wide singleton row, created with defaults on first read.
type KOTConfig struct {
	printByDepartment bool
	numberOfCopies    int
}

// DefaultKOTConfig returns the configuration created on first read:
// tickets are not split by department and a single copy is printed.
func DefaultKOTConfig() *KOTConfig {
	return &KOTConfig{printByDepartment: false, numberOfCopies: 1}
}

// NewKOTConfig creates a KOT configuration with validation.
func NewKOTConfig(printByDepartment bool, numberOfCopies int) (*KOTConfig, error) {
	if numberOfCopies < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("numberOfCopies",
			fmt.Errorf("%d is not greater than 0", numberOfCopies))
	}
	return &KOTConfig{printByDepartment: printByDepartment, numberOfCopies: numberOfCopies}, nil
}

// PrintByDepartment reports whether tickets are split per kitchen department.
func (c *KOTConfig) PrintByDepartment() bool {
	return c.printByDepartment
}

// NumberOfCopies returns how many ticket copies are printed.
func (c *KOTConfig) NumberOfCopies() int {
	return c.numberOfCopies
}

// Patch applies partial-update semantics: nil fields leave the current value
// unchanged, mirroring the wire contract of the config PUT endpoints.
func (c *KOTConfig) Patch(printByDepartment *bool, numberOfCopies *int) error {
	if printByDepartment != nil {
		c.printByDepartment = *printByDepartment
	}
	if numberOfCopies != nil {
		if *numberOfCopies < 1 {
			return errs.NewValueIsInvalidErrorWithCause("numberOfCopies",
				fmt.Errorf("%d is not greater than 0", *numberOfCopies))
		}
		c.numberOfCopies = *numberOfCopies
	}
	return nil
}
