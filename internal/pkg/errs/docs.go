// Package errs provides standardized error types for the point-of-sale backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For id-keyed lookups of absent tables, orders, or invoices
//   - ObjectAlreadyExistsError: For creation conflicts such as duplicate table identifiers
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels are what the HTTP adapter matches on with errors.Is to map
// failures to status codes: not-found to 404, already-exists to 409, the
// value errors to 400, and everything else to 500.
package errs
