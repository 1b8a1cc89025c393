// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: For when an order or user cannot be found
//   - UnauthorizedError: For requests that carry no caller identity
//   - ForbiddenError: For callers that lack rights on an order
//   - InvalidStatusError: For rejected order status transitions
//   - UpstreamError: For failed calls to the identity service
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Classify folds every error into the closed Kind taxonomy together with the
// response code, message and HTTP status that transports report to callers.
package errs
