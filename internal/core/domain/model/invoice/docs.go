// Package invoice provides the domain model for finalized bills.
//
// The package includes:
//   - Invoice: The append-only aggregate recording a finished order
//   - OrderType: The dine-in/take-away value object
//   - ParseTimestamp: ISO-8601 parsing with Z-suffix normalization
//
// Invoices never recompute monetary figures; subtotal, tax, and total arrive
// caller-computed and are stored verbatim, as is the item snapshot. Once
// created an invoice is immutable, and it is the sole durable trace of the
// order it came from.
package invoice
