// Package errs provides standardized error types for the catalog application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the system:
//   - ValueIsRequiredError / ValueIsInvalidError: local validation failures
//   - ObjectNotFoundError: a target entity is absent on the backend
//   - RemoteCallFailedError: transport failure or non-success backend status
//   - AuthRequiredError: no resolvable user identity in the local session
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// No error in this taxonomy is fatal to the process; every failure is scoped
// to the operation that triggered it.
package errs
