// Package table provides the domain model for the restaurant's table registry.
//
// The package includes:
//   - Table: The aggregate root holding identity, seating, and occupancy
//   - Status: The two-state occupancy value object (available/occupied)
//
// Key business rules:
//   - A table is occupied if and only if an active order references it
//   - Occupancy transitions are driven by order lifecycle events, not by
//     external callers
//   - Occupy and Release are unconditional and idempotent
package table
