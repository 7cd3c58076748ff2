package table

import (
	"errors"
	"fmt"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/errs"
)

var (
	// ErrTableIsNotConstructed is returned when a Table instance was not created
	// through the NewTable or RestoreTable factory functions.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable constructor")
)

// Table represents a physical dining table in the restaurant.
// It is the aggregate root of the table registry.
//
// Table follows these invariants:
//   - Must have a valid identifier and a non-empty display name
//   - Seat count must be positive
//   - Status is Available or Occupied, and reflects whether an active order
//     currently references the table
//   - Can only be created through NewTable or RestoreTable
//
// Occupancy is never set directly by external callers in the normal flow: the
// order aggregator occupies a table as a side effect of item submission, and
// releases it when the order completes.
type Table struct {
	// id is the unique identifier for the table, externally assignable
	id kernel.ID

	// name is the display name shown on floor plans and tickets
	name string

	// seats is the number of seats at the table
	seats int

	// category is a free-text grouping such as "Family" or "VIP"
	category string

	// status is the current occupancy state
	status Status

	// isConstructed ensures the table was created via a constructor
	isConstructed bool
}

// NewTable creates a new Table with validation. Status defaults to Available
// when the zero Status value is passed; an explicit Available or Occupied is
// accepted so staff can register a table that is already seated.
//
// Returns a validation error if the id is invalid, the name is empty, the
// seat count is not positive, or an explicit status is invalid.
func NewTable(id kernel.ID, name string, seats int, category string, status Status) (*Table, error) {
	if status == Unknown {
		status = Available
	}

	t := &Table{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSeats(seats),
		t.setCategory(category),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTable reconstructs a Table from persistence.
// The same validation as NewTable applies, but no status defaulting occurs.
func RestoreTable(id kernel.ID, name string, seats int, category string, status Status) (*Table, error) {
	t := &Table{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSeats(seats),
		t.setCategory(category),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Table instance was properly constructed.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// IsEqual compares two tables by their identifiers.
func (t *Table) IsEqual(other *Table) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.ID {
	return t.id
}

// Name returns the table's display name.
func (t *Table) Name() string {
	return t.name
}

// Seats returns the number of seats at the table.
func (t *Table) Seats() int {
	return t.seats
}

// Category returns the free-text grouping of the table.
func (t *Table) Category() string {
	return t.category
}

// Status returns the current occupancy state.
func (t *Table) Status() Status {
	return t.status
}

// Rename changes the table's display name.
func (t *Table) Rename(name string) error {
	return t.setName(name)
}

// ChangeSeats changes the table's seat count.
func (t *Table) ChangeSeats(seats int) error {
	return t.setSeats(seats)
}

// ChangeCategory changes the table's free-text grouping.
func (t *Table) ChangeCategory(category string) error {
	return t.setCategory(category)
}

// ChangeStatus sets the occupancy state explicitly.
// Used by the partial-update operation; the order lifecycle uses Occupy and Release.
func (t *Table) ChangeStatus(status Status) error {
	return t.setStatus(status)
}

// Occupy marks the table as occupied. The transition is unconditional and
// idempotent: every item submission re-asserts occupancy.
func (t *Table) Occupy() {
	t.status = Occupied
}

// Release marks the table as available. The transition is unconditional:
// completing an order always frees the table, even if no order was present.
func (t *Table) Release() {
	t.status = Available
}

func (t *Table) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Table) setSeats(seats int) error {
	if seats <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("seats",
			fmt.Errorf("%d is not greater than 0", seats))
	}
	t.seats = seats
	return nil
}

func (t *Table) setCategory(category string) error {
	// Category is free text and may be empty.
	t.category = category
	return nil
}

func (t *Table) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
