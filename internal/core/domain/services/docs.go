// Package services provides domain services for order access and order listings.
//
// The package includes:
//   - AccessPolicy: casbin-backed rules deciding who may read, cancel or advance an order
//   - OrderSelector: filtering, stable sorting and pagination over order listings
package services
