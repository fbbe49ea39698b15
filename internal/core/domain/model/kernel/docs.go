// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - ID: opaque backend-assigned string identifier
//   - Price: non-negative decimal money amount
//
// Both types are immutable, compare by value, and must be created through
// their factory functions; zero values fail validation where a constructed
// value is required.
package kernel
