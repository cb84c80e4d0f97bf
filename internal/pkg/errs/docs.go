// Package errs provides standardized error types for the logistics backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the application taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: a referenced entity does not exist
//   - AlreadyExistsError: a write-once record was submitted twice
//   - ResourceUnavailableError: a carrier or vehicle could not be reserved
//   - PreconditionNotMetError: a lifecycle gate (checklist, signature) is unsatisfied
//   - ForbiddenError: role or ownership mismatch
//   - InvalidStateError: a transition attempted from the wrong state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// The HTTP adapter maps sentinels to status codes in one place; everything
// below the adapter works purely in terms of this taxonomy.
package errs
