// Package order provides the domain model for live dine-in order aggregation.
// It implements the TableOrder aggregate root and the line-item merge rules
// that govern how new submissions fold into an existing order.
//
// The package includes:
//   - TableOrder: The aggregate root bound to exactly one table
//   - LineItem: A value object with the required merge fields plus an open
//     passthrough attributes map
//
// Key business rules:
//   - At most one order exists per table at any time
//   - Pending duplicate items coalesce by quantity; items already sent to the
//     kitchen are immutable by merge and repeats become separate lines
//   - Marking sent is coarse: it flags every line, relying on the merge rule
//     to keep previously fired lines distinct
//   - Orders are deleted on completion; the invoice is the durable record
package order
