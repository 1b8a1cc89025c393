// Package kernel provides shared domain primitives for the orders service.
//
// The package includes:
//   - UUID: A value object for order and event identifiers with validation and comparison
//
// Primitives are immutable and safe for concurrent use.
package kernel
