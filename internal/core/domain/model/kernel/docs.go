// Package kernel contains shared value objects used across the domain model.
//
// It currently provides ID, the identifier value object shared by tables,
// orders, and invoices. Keeping it here avoids dependencies between the
// aggregate packages: an order references its table by ID, never the reverse.
package kernel
