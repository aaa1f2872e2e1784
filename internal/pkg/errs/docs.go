// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced object does not exist
//   - ValueIsInvalidError: a value failed a business validation rule
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a value fell outside its allowed bounds
//   - VersionIsInvalidError: a malformed or unusable version value
//   - ConcurrentModificationError: an optimistic-version conflict on update
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// The HTTP boundary relies on the sentinels to translate failures into
// response statuses without inspecting message strings.
package errs
