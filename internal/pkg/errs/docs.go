// Package errs provides standardized error types for the pharmacy delivery
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be located by its identifier
//   - ObjectModifiedError: a conditional write lost an optimistic-concurrency race
//   - VersionIsInvalidError: a persisted version token cannot be interpreted
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method mapping the typed error to its sentinel for errors.Is
//
// Domain-specific delivery failures (illegal status transitions, terminal-state
// mutations, actor mismatches) live next to the Order aggregate in the order
// package; this package carries only the application-wide kinds.
package errs
