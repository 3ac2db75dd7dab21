// Package errs provides standardized error types for the order lifecycle service.
// Domain constructors return these errors; component boundaries turn them into
// result.Result failures carrying an error code.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a value falls outside its permitted bounds
//   - ObjectNotFoundError: a referenced object cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
